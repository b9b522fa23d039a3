package model

import (
	"encoding/json"
	"time"
)

// Profile is the single player record. Attributes holds the five trainable
// stats as a JSON object keyed by attribute name.
type Profile struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"not null"`
	XP              int             `json:"xp" gorm:"not null"`
	Level           int             `json:"level" gorm:"not null"`
	SkillPoints     int             `json:"skill_points" gorm:"not null"`
	Attributes      json.RawMessage `json:"attributes" gorm:"type:text;not null"`
	MissionStreak   int             `json:"mission_streak" gorm:"not null"`
	LastMissionDate *time.Time      `json:"last_mission_date"`
	FocusStreak     int             `json:"focus_streak" gorm:"not null"`
	LastFocusDate   *time.Time      `json:"last_focus_date"`
	CreatedAt       time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"not null"`
}
