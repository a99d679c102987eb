package models

import "time"

// Exam types supported by the result log and the rank heuristic.
var ExamTypes = []string{"TYT", "AYT_SAY", "AYT_EA", "AYT_SOZ"}

type Exam struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;index" json:"student_id"`
	ExamType  string    `gorm:"size:10;not null" json:"exam_type"`
	Name      string    `json:"name,omitempty"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`

	// Sum of per-subject nets, each floored at 0 before summation.
	NetScore float64 `json:"net_score"`

	SubjectResults []SubjectResult `gorm:"foreignKey:ExamID" json:"subject_results,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type SubjectResult struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ExamID       uint   `gorm:"not null;index" json:"exam_id"`
	Subject      string `gorm:"not null" json:"subject"`
	MaxQuestions int    `gorm:"not null" json:"max_questions"`
	Correct      int    `gorm:"not null" json:"correct"`
	Wrong        int    `gorm:"not null" json:"wrong"`
	Blank        int    `json:"blank"`

	Net float64 `json:"net"`
}

func ValidExamType(v string) bool { return containsString(ExamTypes, v) }
