package model

import "time"

// FocusSession is a committed focus run. Day is the local calendar date of
// StartedAt, stored as YYYY-MM-DD so history can group by it. CreatedAt
// doubles as the end of the run; elapsed spans pauses, so the start instant
// is stored rather than derived.
type FocusSession struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Day            string    `json:"day" gorm:"not null;index;size:10"`
	StartedAt      time.Time `json:"started_at" gorm:"not null"`
	Mode           string    `json:"mode" gorm:"not null;size:20"`
	MissionID      *int      `json:"mission_id,omitempty" gorm:"index"`
	PlannedSeconds int       `json:"planned_seconds" gorm:"not null"`
	ElapsedSeconds int       `json:"elapsed_seconds" gorm:"not null"`
	Completed      bool      `json:"completed" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null"`
}
