package model

import "time"

// Mission is a scheduled objective within a time bucket. IDs are sequential
// per table, assigned by the repository.
type Mission struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Category    string     `json:"category" gorm:"not null;size:50"`
	Bucket      string     `json:"bucket" gorm:"not null;index;size:20"`
	XPReward    int        `json:"xp_reward" gorm:"not null;default:10"`
	Deadline    time.Time  `json:"deadline" gorm:"not null"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	Late        bool       `json:"late" gorm:"not null;default:false"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"not null"`
}
