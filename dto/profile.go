package dto

// ==================== PROFILE REQUEST DTOs ====================

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60" example:"Hunter"`
}

func (r UpdateNameRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SpendAttributeRequest struct {
	Attribute string `json:"attribute" validate:"required,oneof=intelligence strength vitality creativity social" example:"intelligence"`
}

func (r SpendAttributeRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== PROFILE RESPONSE DTOs ====================

type ProfileResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	XP            int            `json:"xp"`
	Level         int            `json:"level"`
	XPToNextLevel int            `json:"xp_to_next_level"`
	Rank          string         `json:"rank"`
	SkillPoints   int            `json:"skill_points"`
	Attributes    map[string]int `json:"attributes"`
	MissionStreak int            `json:"mission_streak"`
	FocusStreak   int            `json:"focus_streak"`
}

type StatsResponse struct {
	Level              int            `json:"level"`
	XP                 int            `json:"xp"`
	XPToNextLevel      int            `json:"xp_to_next_level"`
	Rank               string         `json:"rank"`
	NextRank           string         `json:"next_rank,omitempty"`
	LevelsToNextRank   int            `json:"levels_to_next_rank,omitempty"`
	SkillPoints        int            `json:"skill_points"`
	Attributes         map[string]int `json:"attributes"`
	MissionStreak      int            `json:"mission_streak"`
	FocusStreak        int            `json:"focus_streak"`
	MissionsPending    int            `json:"missions_pending"`
	MissionsLate       int            `json:"missions_late"`
	MissionsCompleted  int            `json:"missions_completed"`
	TodayFocusSeconds  int            `json:"today_focus_seconds"`
	WeeklyFocusSeconds []int          `json:"weekly_focus_seconds"`
	TotalFocusSeconds  int            `json:"total_focus_seconds"`
}
