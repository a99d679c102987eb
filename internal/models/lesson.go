package models

import "time"

const (
	LessonScheduled = "scheduled"
	LessonCompleted = "completed"
	LessonCancelled = "cancelled"
)

// OnlineLesson is a one-on-one video lesson booked between a student
// and their coach.
type OnlineLesson struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	CoachID     uint      `gorm:"not null;index" json:"coach_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`

	DurationMinutes int    `gorm:"default:40" json:"duration_minutes"`
	MeetingURL      string `json:"meeting_url,omitempty"`
	Status          string `gorm:"size:10;not null;default:scheduled" json:"status"`
	Notes           string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
