package models

import "time"

const (
	CategoryTYT = "TYT"
	CategoryAYT = "AYT"

	// At most this many plan tasks per weekday per student.
	MaxTasksPerDay = 3
)

// WeeklyPlanTask is one slot of a student's recurring weekly plan.
// DayOfWeek is Monday-first: 0=Monday .. 6=Sunday.
type WeeklyPlanTask struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"not null;index" json:"student_id"`
	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	Subject   string `gorm:"not null" json:"subject"`
	Topic     string `json:"topic,omitempty"`
	Category  string `gorm:"size:3;not null;default:TYT" json:"category"`

	DurationTarget int `gorm:"default:0" json:"duration_target"`
	QuestionTarget int `gorm:"default:0" json:"question_target"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
)

// DailyTask is today's materialized copy of a plan task. The snapshot
// fields are copied at materialization so later plan edits do not
// rewrite a day that already happened.
type DailyTask struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"not null;index:idx_daily_student_date" json:"student_id"`
	PlanTaskID uint      `gorm:"not null" json:"plan_task_id"`
	Date       time.Time `gorm:"type:date;index:idx_daily_student_date" json:"date"`

	Subject        string `gorm:"not null" json:"subject"`
	Topic          string `json:"topic,omitempty"`
	Category       string `gorm:"size:3" json:"category"`
	DurationTarget int    `json:"duration_target"`
	QuestionTarget int    `json:"question_target"`

	Status         string     `gorm:"size:10;not null;default:pending" json:"status"`
	CompletionNote string     `json:"completion_note,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
