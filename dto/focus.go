package dto

import "time"

// ==================== FOCUS REQUEST DTOs ====================

type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=timer stopwatch" example:"timer"`
}

func (r SetModeRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SetDurationRequest struct {
	Seconds int `json:"seconds" validate:"required,gt=0,lte=86400" example:"1500"`
}

func (r SetDurationRequest) Validate() error {
	return GetValidator().Struct(r)
}

type AttachMissionRequest struct {
	MissionID *int `json:"mission_id" example:"3"`
}

// ==================== FOCUS RESPONSE DTOs ====================

type FocusStateResponse struct {
	Mode             string `json:"mode"`
	Phase            string `json:"phase"`
	PlannedSeconds   int    `json:"planned_seconds"`
	ElapsedSeconds   int    `json:"elapsed_seconds"`
	RemainingSeconds int    `json:"remaining_seconds"`
	MissionID        *int   `json:"mission_id,omitempty"`
}

type FocusSessionResponse struct {
	ID             string    `json:"id"`
	Day            string    `json:"day"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
	Mode           string    `json:"mode"`
	MissionID      *int      `json:"mission_id,omitempty"`
	PlannedSeconds int       `json:"planned_seconds"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	Completed      bool      `json:"completed"`
}

type FinishFocusResponse struct {
	State   FocusStateResponse    `json:"state"`
	Session *FocusSessionResponse `json:"session,omitempty"`
}

type DayHistoryResponse struct {
	Date         string                 `json:"date"`
	TotalSeconds int                    `json:"total_seconds"`
	Sessions     []FocusSessionResponse `json:"sessions"`
}

type FocusHistoryResponse struct {
	Day          DayHistoryResponse     `json:"day"`
	WeekStart    string                 `json:"week_start"`
	WeeklySeries []int                  `json:"weekly_series"`
	Recent       []FocusSessionResponse `json:"recent"`
}
