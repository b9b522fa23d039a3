package services

import (
	goCtx "context"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/services/repositories"
	"github.com/ascend-app/ascend_api/shared"
)

// ProgressionService owns the player profile: XP, levels, ranks, skill
// points and the mission and focus streaks.
type ProgressionService struct {
	context.DefaultService

	sqlSvc   *SqlService
	redisSvc *RedisService
}

const PROGRESSION_SVC = "progression_svc"

const statsCacheKey = "ascend:stats"
const statsCacheTTL = 60 * time.Second

func (svc ProgressionService) Id() string {
	return PROGRESSION_SVC
}

func (svc *ProgressionService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressionService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// XPNeededForLevel returns the XP required to advance past the given level.
func XPNeededForLevel(level int) int {
	return int(40 + float64(level)*0.3)
}

type rankThreshold struct {
	minLevel int
	name     string
}

var rankTable = []rankThreshold{
	{350, "X"},
	{200, "SSS"},
	{100, "SS"},
	{50, "S"},
	{40, "A"},
	{30, "B"},
	{20, "C"},
	{10, "D"},
}

// RankForLevel maps a level onto the rank ladder. Levels below 10 are rank E.
func RankForLevel(level int) string {
	for _, t := range rankTable {
		if level >= t.minLevel {
			return t.name
		}
	}
	return "E"
}

// NextRank returns the next rank above the given level and how many levels
// away it is. At the top of the ladder it returns ("", 0).
func NextRank(level int) (string, int) {
	for i := len(rankTable) - 1; i >= 0; i-- {
		if level < rankTable[i].minLevel {
			return rankTable[i].name, rankTable[i].minLevel - level
		}
	}
	return "", 0
}

// applyXP adds XP to the profile, consuming level thresholds as they are
// crossed. Each level gained awards one skill point. Returns levels gained.
func applyXP(profile *model.Profile, amount int) int {
	levelsUp := 0
	profile.XP += amount

	for profile.XP >= XPNeededForLevel(profile.Level) {
		profile.XP -= XPNeededForLevel(profile.Level)
		profile.Level++
		profile.SkillPoints++
		levelsUp++
	}

	return levelsUp
}

// touchStreak records activity for the given instant: same day keeps the
// streak, the next day extends it, any gap resets it to 1. The profile
// carries one streak per activity kind, so the counter and its last-active
// marker are passed in.
func touchStreak(streak *int, lastActive **time.Time, now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if *lastActive == nil {
		*streak = 1
	} else {
		last := *lastActive
		lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())

		daysDiff := int(today.Sub(lastDay).Hours() / 24)

		switch daysDiff {
		case 0:
			// Same day, no change to streak
		case 1:
			*streak++
		default:
			*streak = 1
		}
	}

	at := now
	*lastActive = &at
}

// GrantXP awards XP to the player and records the activity for streak
// purposes. Returns the refreshed profile and the number of levels gained.
func (svc *ProgressionService) GrantXP(amount int) (*dto.ProfileResponse, int, error) {
	profile, err := svc.sqlSvc.Profiles().GetProfile()
	if err != nil {
		return nil, 0, svc.sqlSvc.HandleError(err)
	}

	touchStreak(&profile.MissionStreak, &profile.LastMissionDate, time.Now())
	levelsUp := applyXP(profile, amount)

	if err := svc.sqlSvc.Profiles().UpdateProfile(profile); err != nil {
		return nil, 0, svc.sqlSvc.HandleError(err)
	}

	if levelsUp > 0 {
		log.WithFields(log.Fields{
			"levels_up": levelsUp,
			"level":     profile.Level,
		}).Info("Player leveled up")
	}

	svc.invalidateStats()
	return svc.toProfileResponse(profile), levelsUp, nil
}

func (svc *ProgressionService) GetProfile() (*dto.ProfileResponse, error) {
	profile, err := svc.sqlSvc.Profiles().GetProfile()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return svc.toProfileResponse(profile), nil
}

// TouchFocusStreak records a finished or abandoned focus run for streak
// purposes.
func (svc *ProgressionService) TouchFocusStreak(now time.Time) error {
	profile, err := svc.sqlSvc.Profiles().GetProfile()
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	touchStreak(&profile.FocusStreak, &profile.LastFocusDate, now)

	if err := svc.sqlSvc.Profiles().UpdateProfile(profile); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	svc.invalidateStats()
	return nil
}

// UpdateName sets the player name once, during onboarding. A profile that
// already carries a name cannot be renamed.
func (svc *ProgressionService) UpdateName(req dto.UpdateNameRequest) (*dto.ProfileResponse, error) {
	profile, err := svc.sqlSvc.Profiles().GetProfile()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if profile.Name != "" {
		return nil, shared.NewBadRequestError(nil, "Name is already set")
	}

	profile.Name = req.Name
	if err := svc.sqlSvc.Profiles().UpdateProfile(profile); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return svc.toProfileResponse(profile), nil
}

// SpendAttribute converts one unspent skill point into a permanent attribute
// increase.
func (svc *ProgressionService) SpendAttribute(req dto.SpendAttributeRequest) (*dto.ProfileResponse, error) {
	if !shared.IsValidAttribute(req.Attribute) {
		return nil, shared.NewValidationError(nil, "Unknown attribute")
	}

	profile, err := svc.sqlSvc.Profiles().GetProfile()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if profile.SkillPoints <= 0 {
		return nil, shared.NewInsufficientPointsError("No skill points available")
	}

	attrs := repositories.DecodeAttributes(profile.Attributes)
	attrs[req.Attribute]++
	profile.SkillPoints--
	profile.Attributes = repositories.EncodeAttributes(attrs)

	if err := svc.sqlSvc.Profiles().UpdateProfile(profile); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.invalidateStats()
	return svc.toProfileResponse(profile), nil
}

// GetStats aggregates the progression overview. Results are cached briefly
// since the home screen polls this endpoint.
func (svc *ProgressionService) GetStats() (*dto.StatsResponse, error) {
	ctx := goCtx.Background()

	var cached dto.StatsResponse
	if hit, err := svc.redisSvc.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	profile, err := svc.sqlSvc.Profiles().GetProfile()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	completed, err := svc.sqlSvc.Missions().CountCompleted()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	now := time.Now()
	pending, late, err := svc.openMissionCounts(now)
	if err != nil {
		return nil, err
	}

	totalFocus, err := svc.sqlSvc.Focus().TotalSeconds()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	weekStart := shared.DateOnly(now).AddDate(0, 0, -shared.MondayIndex(now.Weekday()))
	series, err := weeklyFocusSeries(svc.sqlSvc.Focus(), weekStart)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	today := shared.MondayIndex(now.Weekday())

	nextRank, levelsToNext := NextRank(profile.Level)
	stats := &dto.StatsResponse{
		Level:              profile.Level,
		XP:                 profile.XP,
		XPToNextLevel:      XPNeededForLevel(profile.Level) - profile.XP,
		Rank:               RankForLevel(profile.Level),
		NextRank:           nextRank,
		LevelsToNextRank:   levelsToNext,
		SkillPoints:        profile.SkillPoints,
		Attributes:         repositories.DecodeAttributes(profile.Attributes),
		MissionStreak:      profile.MissionStreak,
		FocusStreak:        profile.FocusStreak,
		MissionsPending:    pending,
		MissionsLate:       late,
		MissionsCompleted:  int(completed),
		TodayFocusSeconds:  series[today],
		WeeklyFocusSeconds: series,
		TotalFocusSeconds:  totalFocus,
	}

	if err := svc.redisSvc.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache stats")
	}

	return stats, nil
}

func (svc *ProgressionService) openMissionCounts(now time.Time) (pending, late int, err error) {
	missions, err := svc.sqlSvc.Missions().GetAllMissions()
	if err != nil {
		return 0, 0, svc.sqlSvc.HandleError(err)
	}

	for i := range missions {
		switch missionStatus(&missions[i], now) {
		case shared.StatusPending:
			pending++
		case shared.StatusLate:
			late++
		}
	}
	return pending, late, nil
}

// weeklyFocusSeries sums focus seconds per day from weekStart (a Monday),
// zero-filling days without sessions.
func weeklyFocusSeries(repo *repositories.FocusRepository, weekStart time.Time) ([]int, error) {
	totals, err := repo.DayTotals(
		weekStart.Format("2006-01-02"),
		weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	series := make([]int, 7)
	for i := 0; i < 7; i++ {
		series[i] = totals[weekStart.AddDate(0, 0, i).Format("2006-01-02")]
	}
	return series, nil
}

func (svc *ProgressionService) invalidateStats() {
	if err := svc.redisSvc.Delete(goCtx.Background(), statsCacheKey); err != nil {
		log.WithError(err).Warn("Failed to invalidate stats cache")
	}
}

func (svc *ProgressionService) toProfileResponse(profile *model.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:            profile.ID,
		Name:          profile.Name,
		XP:            profile.XP,
		Level:         profile.Level,
		XPToNextLevel: XPNeededForLevel(profile.Level) - profile.XP,
		Rank:          RankForLevel(profile.Level),
		SkillPoints:   profile.SkillPoints,
		Attributes:    repositories.DecodeAttributes(profile.Attributes),
		MissionStreak: profile.MissionStreak,
		FocusStreak:   profile.FocusStreak,
	}
}
