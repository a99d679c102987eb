package models

import "time"

const (
	RoleStudent = "student"
	RoleCoach   = "coach"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `gorm:"not null" json:"name"`
	Role         string `gorm:"size:10;not null;default:student" json:"role"`
	Phone        string `json:"phone,omitempty"`

	// Students are attached to one coach; coaches have CoachID nil.
	CoachID *uint `gorm:"index" json:"coach_id,omitempty"`

	// Floor in minutes for a day to count as worked, editable per student.
	MinimumDayMinutes int `gorm:"default:60" json:"minimum_day_minutes"`

	EmailVerified bool `gorm:"default:false" json:"email_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
