package dto

import "time"

// ==================== MISSION REQUEST DTOs ====================

type CreateMissionRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200" example:"Read 20 pages"`
	Description string `json:"description" validate:"omitempty,max=1000" example:"Any non-fiction counts"`
	Category    string `json:"category" validate:"required,oneof=INTELLIGENCE STRENGTH VITALITY CREATIVITY SOCIAL" example:"INTELLIGENCE"`
	Bucket      string `json:"bucket" validate:"required,oneof=daily weekly monthly" example:"daily"`
	XPReward    int    `json:"xp_reward" validate:"omitempty,gte=1,lte=1000" example:"10"`
}

func (r CreateMissionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateMissionRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    *string `json:"category,omitempty" validate:"omitempty,oneof=INTELLIGENCE STRENGTH VITALITY CREATIVITY SOCIAL"`
	XPReward    *int    `json:"xp_reward,omitempty" validate:"omitempty,gte=1,lte=1000"`
}

func (r UpdateMissionRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== MISSION RESPONSE DTOs ====================

type MissionResponse struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Bucket      string     `json:"bucket"`
	XPReward    int        `json:"xp_reward"`
	Deadline    string     `json:"deadline"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type MissionListResponse struct {
	Bucket   string            `json:"bucket"`
	Missions []MissionResponse `json:"missions"`
}

type ToggleMissionResponse struct {
	Mission   MissionResponse `json:"mission"`
	AwardedXP int             `json:"awarded_xp"`
	LevelsUp  int             `json:"levels_up"`
	Profile   ProfileResponse `json:"profile"`
}
