package models

import "time"

// TopicProgress marks one syllabus topic as finished by a student.
// The topic catalog itself is static (see api.TopicCatalog); only the
// completion marks are stored.
type TopicProgress struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_topic_student" json:"student_id"`
	Category  string `gorm:"size:3;not null;uniqueIndex:idx_topic_student" json:"category"`
	Subject   string `gorm:"not null;uniqueIndex:idx_topic_student" json:"subject"`
	TopicName string `gorm:"not null;uniqueIndex:idx_topic_student" json:"topic_name"`

	CreatedAt time.Time `json:"created_at"`
}

// ScheduleEntry is one block on the fixed weekly schedule grid.
type ScheduleEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"not null;index" json:"student_id"`
	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Title     string `gorm:"not null" json:"title"`

	CreatedAt time.Time `json:"created_at"`
}
