package models

import "time"

const (
	AssignmentPending   = "pending"
	AssignmentCompleted = "completed"
	AssignmentLate      = "late"
)

type Assignment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	StudentID   uint       `gorm:"not null;index" json:"student_id"`
	CoachID     *uint      `json:"coach_id,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `gorm:"type:date;not null" json:"due_date"`
	Status      string     `gorm:"size:10;not null;default:pending" json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
