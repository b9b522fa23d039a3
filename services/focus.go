package services

import (
	goCtx "context"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/shared"
)

// FocusService runs the in-memory focus clock and persists finished runs as
// sessions. A single clock exists at a time; that mirrors a desk timer, not
// a multi-tenant scheduler.
type FocusService struct {
	context.DefaultService

	sqlSvc   *SqlService
	redisSvc *RedisService
	progSvc  *ProgressionService

	mu             sync.Mutex
	mode           string
	phase          string
	plannedSeconds int
	elapsedSeconds int
	missionID      *int
	startedAt      time.Time

	stopCh chan struct{}
}

const FOCUS_SVC = "focus_svc"

const DefaultTimerSeconds = 25 * 60

const historyCachePrefix = "ascend:history:"
const historyCacheTTL = 60 * time.Second

const recentSessionLimit = 10

func (svc FocusService) Id() string {
	return FOCUS_SVC
}

func (svc *FocusService) Configure(ctx *context.Context) error {
	svc.mode = shared.ModeTimer
	svc.phase = shared.PhaseIdle
	svc.plannedSeconds = DefaultTimerSeconds
	return svc.DefaultService.Configure(ctx)
}

func (svc *FocusService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.progSvc = svc.Service(PROGRESSION_SVC).(*ProgressionService)

	svc.stopCh = make(chan struct{})
	go svc.runClock()

	return nil
}

func (svc *FocusService) Shutdown() {
	if svc.stopCh != nil {
		close(svc.stopCh)
	}
}

func (svc *FocusService) runClock() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.Tick()
		case <-svc.stopCh:
			return
		}
	}
}

// Tick advances the clock by one second when running. In timer mode hitting
// the planned duration finishes the run automatically.
func (svc *FocusService) Tick() {
	svc.mu.Lock()

	if svc.phase != shared.PhaseRunning {
		svc.mu.Unlock()
		return
	}

	svc.elapsedSeconds++

	if svc.mode == shared.ModeTimer && svc.elapsedSeconds >= svc.plannedSeconds {
		session := svc.commitLocked(true)
		svc.mu.Unlock()
		svc.persistSession(session)
		return
	}

	svc.mu.Unlock()
}

// SetMode switches between timer and stopwatch. Only allowed while idle.
func (svc *FocusService) SetMode(req dto.SetModeRequest) (*dto.FocusStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.phase != shared.PhaseIdle {
		return nil, shared.NewValidationError(nil, "Cannot change mode while a session is active")
	}

	svc.mode = req.Mode
	svc.elapsedSeconds = 0
	return svc.stateLocked(), nil
}

// SetDuration adjusts the timer target. Only allowed while idle and in
// timer mode.
func (svc *FocusService) SetDuration(req dto.SetDurationRequest) (*dto.FocusStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.phase != shared.PhaseIdle {
		return nil, shared.NewValidationError(nil, "Cannot change duration while a session is active")
	}
	if svc.mode != shared.ModeTimer {
		return nil, shared.NewValidationError(nil, "Duration only applies to timer mode")
	}

	svc.plannedSeconds = req.Seconds
	return svc.stateLocked(), nil
}

// AttachMission links the clock to a mission, or detaches with a nil ID.
func (svc *FocusService) AttachMission(req dto.AttachMissionRequest) (*dto.FocusStateResponse, error) {
	if req.MissionID != nil {
		if _, err := svc.sqlSvc.Missions().GetMission(*req.MissionID); err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.missionID = req.MissionID
	return svc.stateLocked(), nil
}

// StartFocus begins a run from idle or resumes a paused one.
func (svc *FocusService) StartFocus() (*dto.FocusStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	switch svc.phase {
	case shared.PhaseRunning:
		return nil, shared.NewValidationError(nil, "Session already running")
	case shared.PhaseIdle:
		svc.elapsedSeconds = 0
		svc.startedAt = time.Now()
	}

	svc.phase = shared.PhaseRunning
	return svc.stateLocked(), nil
}

func (svc *FocusService) PauseFocus() (*dto.FocusStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.phase != shared.PhaseRunning {
		return nil, shared.NewValidationError(nil, "No running session to pause")
	}

	svc.phase = shared.PhasePaused
	return svc.stateLocked(), nil
}

// FinishFocus commits the run as completed. Finishing from idle is a no-op.
func (svc *FocusService) FinishFocus() (*dto.FinishFocusResponse, error) {
	svc.mu.Lock()

	if svc.phase == shared.PhaseIdle {
		state := svc.stateLocked()
		svc.mu.Unlock()
		return &dto.FinishFocusResponse{State: *state}, nil
	}

	session := svc.commitLocked(true)
	state := svc.stateLocked()
	svc.mu.Unlock()

	resp := svc.persistSession(session)
	return &dto.FinishFocusResponse{State: *state, Session: resp}, nil
}

// ResetFocus abandons the run. Elapsed time is still recorded, flagged as
// not completed.
func (svc *FocusService) ResetFocus() (*dto.FinishFocusResponse, error) {
	svc.mu.Lock()

	if svc.phase == shared.PhaseIdle {
		state := svc.stateLocked()
		svc.mu.Unlock()
		return &dto.FinishFocusResponse{State: *state}, nil
	}

	session := svc.commitLocked(false)
	state := svc.stateLocked()
	svc.mu.Unlock()

	resp := svc.persistSession(session)
	return &dto.FinishFocusResponse{State: *state, Session: resp}, nil
}

func (svc *FocusService) State() *dto.FocusStateResponse {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.stateLocked()
}

// commitLocked captures the run into a session record and resets the clock.
// Zero-length runs produce no session.
func (svc *FocusService) commitLocked(completed bool) *model.FocusSession {
	var session *model.FocusSession
	if svc.elapsedSeconds > 0 {
		session = &model.FocusSession{
			Day:            svc.startedAt.Format("2006-01-02"),
			StartedAt:      svc.startedAt,
			Mode:           svc.mode,
			MissionID:      svc.missionID,
			PlannedSeconds: svc.plannedSeconds,
			ElapsedSeconds: svc.elapsedSeconds,
			Completed:      completed,
		}
		if svc.mode == shared.ModeStopwatch {
			session.PlannedSeconds = 0
		}
	}

	svc.phase = shared.PhaseIdle
	svc.elapsedSeconds = 0
	return session
}

func (svc *FocusService) persistSession(session *model.FocusSession) *dto.FocusSessionResponse {
	if session == nil {
		return nil
	}

	if err := svc.sqlSvc.Focus().CreateSession(session); err != nil {
		log.WithError(err).Error("Failed to persist focus session")
		return nil
	}

	if err := svc.redisSvc.DeletePattern(goCtx.Background(), historyCachePrefix+"*"); err != nil {
		log.WithError(err).Warn("Failed to invalidate history cache")
	}

	if err := svc.progSvc.TouchFocusStreak(time.Now()); err != nil {
		log.WithError(err).Warn("Failed to update focus streak")
	}

	recordFocusSession(session.Mode, session.Completed, session.ElapsedSeconds)

	resp := toSessionResponse(session)
	return &resp
}

// GetHistory returns the sessions and total for a day together with the
// Monday-to-Sunday series of the week containing it. Days without sessions
// report zero.
func (svc *FocusService) GetHistory(date string) (*dto.FocusHistoryResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, shared.NewValidationError(err, "Invalid date, expected YYYY-MM-DD")
	}

	ctx := goCtx.Background()
	cacheKey := historyCachePrefix + date

	var cached dto.FocusHistoryResponse
	if hit, err := svc.redisSvc.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	sessions, err := svc.sqlSvc.Focus().GetSessionsByDay(date)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	dayResp := dto.DayHistoryResponse{
		Date:     date,
		Sessions: make([]dto.FocusSessionResponse, 0, len(sessions)),
	}
	for i := range sessions {
		dayResp.TotalSeconds += sessions[i].ElapsedSeconds
		dayResp.Sessions = append(dayResp.Sessions, toSessionResponse(&sessions[i]))
	}

	weekStart := day.AddDate(0, 0, -shared.MondayIndex(day.Weekday()))

	series, err := weeklyFocusSeries(svc.sqlSvc.Focus(), weekStart)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	recent, err := svc.sqlSvc.Focus().RecentSessions(recentSessionLimit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.FocusHistoryResponse{
		Day:          dayResp,
		WeekStart:    weekStart.Format("2006-01-02"),
		WeeklySeries: series,
		Recent:       make([]dto.FocusSessionResponse, 0, len(recent)),
	}
	for i := range recent {
		resp.Recent = append(resp.Recent, toSessionResponse(&recent[i]))
	}

	if err := svc.redisSvc.Set(ctx, cacheKey, resp, historyCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache history")
	}

	return resp, nil
}

func toSessionResponse(s *model.FocusSession) dto.FocusSessionResponse {
	return dto.FocusSessionResponse{
		ID:             s.ID,
		Day:            s.Day,
		StartedAt:      s.StartedAt,
		EndedAt:        s.CreatedAt,
		Mode:           s.Mode,
		MissionID:      s.MissionID,
		PlannedSeconds: s.PlannedSeconds,
		ElapsedSeconds: s.ElapsedSeconds,
		Completed:      s.Completed,
	}
}

func (svc *FocusService) stateLocked() *dto.FocusStateResponse {
	remaining := 0
	if svc.mode == shared.ModeTimer {
		remaining = svc.plannedSeconds - svc.elapsedSeconds
		if remaining < 0 {
			remaining = 0
		}
	}

	return &dto.FocusStateResponse{
		Mode:             svc.mode,
		Phase:            svc.phase,
		PlannedSeconds:   svc.plannedSeconds,
		ElapsedSeconds:   svc.elapsedSeconds,
		RemainingSeconds: remaining,
		MissionID:        svc.missionID,
	}
}
