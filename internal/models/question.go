package models

import "time"

const (
	QuestionOpen   = "open"
	QuestionSolved = "solved"
)

var SourceTypes = []string{"exam", "homework", "lesson", "book"}

// Question is an entry in the student's personal question bank, the
// pool the wheel spin draws from.
type Question struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"not null;index" json:"student_id"`
	Subject   string `gorm:"not null" json:"subject"`
	Topic     string `json:"topic,omitempty"`
	Note      string `json:"note,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Status    string `gorm:"size:10;not null;default:open" json:"status"`

	SpinCount int        `gorm:"default:0" json:"spin_count"`
	SolvedAt  *time.Time `json:"solved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// StuckQuestion is a question the student could not solve, posted for
// the coach with 1-5 photos and an optional written solution back.
type StuckQuestion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	StudentID  uint   `gorm:"not null;index" json:"student_id"`
	Subject    string `gorm:"not null" json:"subject"`
	Topic      string `json:"topic,omitempty"`
	SourceType string `gorm:"size:10;not null" json:"source_type"`
	ExamInfo   string `json:"exam_info,omitempty"`
	Note       string `json:"note,omitempty"`
	Status     string `gorm:"size:10;not null;default:open" json:"status"`

	SolutionText string `json:"solution_text,omitempty"`

	Images []StuckImage `gorm:"foreignKey:StuckQuestionID" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StuckImageQuestion = "question"
	StuckImageSolution = "solution"
)

type StuckImage struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	StuckQuestionID uint   `gorm:"not null;index" json:"stuck_question_id"`
	URL             string `gorm:"not null" json:"url"`
	Kind            string `gorm:"size:10;not null;default:question" json:"kind"`
}

func ValidSourceType(v string) bool { return containsString(SourceTypes, v) }
