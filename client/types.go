package client

import "time"

// Typed response schemas per endpoint, parsed at the boundary instead
// of passing dynamic JSON into views.

type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	User   string `json:"user"`
	Role   string `json:"role"`
}

type Dashboard struct {
	UnreadMessages     int64 `json:"unread_messages"`
	PendingAssignments int64 `json:"pending_assignments"`
	OpenStuckQuestions int64 `json:"open_stuck_questions"`
	UpcomingLessons    int64 `json:"upcoming_lessons"`
	CheckinDone        bool  `json:"checkin_done"`
	Streak             int   `json:"streak"`
}

type PlanTask struct {
	ID             uint   `json:"id"`
	DayOfWeek      int    `json:"day_of_week"`
	Subject        string `json:"subject"`
	Topic          string `json:"topic,omitempty"`
	Category       string `json:"category"`
	DurationTarget int    `json:"duration_target"`
	QuestionTarget int    `json:"question_target"`
}

type PlanDay struct {
	DayOfWeek int        `json:"day_of_week"`
	Tasks     []PlanTask `json:"tasks"`
	CanAdd    bool       `json:"can_add"`
}

type Plan struct {
	Days              []PlanDay `json:"days"`
	MinimumDayMinutes int       `json:"minimum_day_minutes"`
	Summary           struct {
		TaskCount      int `json:"task_count"`
		TotalMinutes   int `json:"total_minutes"`
		TotalQuestions int `json:"total_questions"`
	} `json:"summary"`
}

type DailyTask struct {
	ID             uint       `json:"id"`
	Subject        string     `json:"subject"`
	Topic          string     `json:"topic,omitempty"`
	Category       string     `json:"category"`
	DurationTarget int        `json:"duration_target"`
	QuestionTarget int        `json:"question_target"`
	Status         string     `json:"status"`
	CompletionNote string     `json:"completion_note,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type Today struct {
	Date  string      `json:"date"`
	Tasks []DailyTask `json:"tasks"`

	CheckinDone             bool   `json:"checkin_done"`
	CheckinOpen             bool   `json:"checkin_open"`
	CheckinRemainingSeconds int    `json:"checkin_remaining_seconds"`
	CheckinCountdown        string `json:"checkin_countdown,omitempty"`

	Streak         int `json:"streak"`
	WeekCompliance int `json:"week_compliance"`
}

// CheckInPayload is exactly the three wizard fields, nothing else.
type CheckInPayload struct {
	CompletionPct int    `json:"completion_pct"`
	DifficultyTag string `json:"difficulty_tag"`
	CorrectionTag string `json:"correction_tag"`
}

type Assignment struct {
	ID          uint       `json:"id"`
	StudentID   uint       `json:"student_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Exam struct {
	ID       uint      `json:"id"`
	ExamType string    `json:"exam_type"`
	Name     string    `json:"name,omitempty"`
	Date     time.Time `json:"date"`
	NetScore float64   `json:"net_score"`

	EstimatedRank  int             `json:"estimated_rank"`
	SubjectResults []SubjectResult `json:"subject_results,omitempty"`
}

type SubjectResult struct {
	Subject      string  `json:"subject"`
	MaxQuestions int     `json:"max_questions"`
	Correct      int     `json:"correct"`
	Wrong        int     `json:"wrong"`
	Blank        int     `json:"blank"`
	Net          float64 `json:"net"`
}

type Message struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Text       string    `json:"text,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type Conversation struct {
	PartnerID   uint      `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	UnreadCount int64     `json:"unread_count"`
}

type Question struct {
	ID       uint   `json:"id"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic,omitempty"`
	Note     string `json:"note,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Status   string `json:"status"`
}

type WheelCard struct {
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
	Topic   string `json:"topic,omitempty"`
}

type SpinResult struct {
	Chosen Question    `json:"chosen"`
	Decoys []Question  `json:"decoys"`
	Strip  []WheelCard `json:"strip"`

	SpinDurationMS int    `json:"spin_duration_ms"`
	RevealDelayMS  int    `json:"reveal_delay_ms"`
	ChosenIndex    int    `json:"chosen_index"`
	Easing         string `json:"easing"`
}

type StuckQuestion struct {
	ID           uint   `json:"id"`
	Subject      string `json:"subject"`
	Topic        string `json:"topic,omitempty"`
	SourceType   string `json:"source_type"`
	Note         string `json:"note,omitempty"`
	Status       string `json:"status"`
	SolutionText string `json:"solution_text,omitempty"`
	Images       []struct {
		URL  string `json:"url"`
		Kind string `json:"kind"`
	} `json:"images,omitempty"`
}

type Lesson struct {
	ID              uint      `json:"id"`
	StudentID       uint      `json:"student_id"`
	CoachID         uint      `json:"coach_id"`
	Title           string    `json:"title"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingURL      string    `json:"meeting_url,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
}
