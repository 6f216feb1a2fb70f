package models

import (
	"time"
)

// Visit represents a single clinic visit record.
// A visit is open until ExitTime is set; it is never edited afterwards.
type Visit struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string     `gorm:"not null" json:"name"`
	StudentID string     `gorm:"not null;index" json:"student_id"`
	Symptoms  string     `json:"symptoms"`
	EntryTime time.Time  `gorm:"not null" json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time"`
	LoggedBy  string     `json:"logged_by"`
}

// Open reports whether the student is still inside.
func (v *Visit) Open() bool {
	return v.ExitTime == nil
}
