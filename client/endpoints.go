package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/disiplinli/kocumnet-back/internal/wheel"
)

// MaxChatImageBytes is the client-side cap on chat attachments; larger
// files are rejected before any network call.
const MaxChatImageBytes = 5 << 20

var (
	// ErrImageTooLarge blocks a chat send whose image exceeds 5MB.
	ErrImageTooLarge = errors.New("fotoğraf 5MB'den büyük olamaz")
	// ErrNoImages blocks a stuck-question upload with zero photos.
	ErrNoImages = errors.New("en az bir fotoğraf gerekli")
	// ErrTooManyImages blocks a stuck-question upload past 5 photos.
	ErrTooManyImages = errors.New("en fazla 5 fotoğraf eklenebilir")
)

// Login authenticates and persists token, name, role and user id in
// the session, the same keys the web client writes.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login/", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.sess.Set(KeyToken, resp.Token)
	c.sess.Set(KeyUser, resp.User)
	c.sess.Set(KeyRole, resp.Role)
	c.sess.Set(KeyUserID, strconv.FormatUint(uint64(resp.UserID), 10))
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout/", nil, nil)
	c.sess.Clear()
	return err
}

func (c *Client) SendOTP(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/send-otp/", map[string]string{"email": email}, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/verify-otp/", map[string]string{
		"email": email,
		"code":  code,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.sess.Set(KeyToken, resp.Token)
	c.sess.Set(KeyUser, resp.User)
	c.sess.Set(KeyRole, resp.Role)
	c.sess.Set(KeyUserID, strconv.FormatUint(uint64(resp.UserID), 10))
	return &resp, nil
}

func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) GetPlan(ctx context.Context) (*Plan, error) {
	var p Plan
	if err := c.do(ctx, http.MethodGet, "/api/student/plan/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AddPlanTaskInput mirrors the add-task form; Category defaults to TYT
// server-side when empty.
type AddPlanTaskInput struct {
	DayOfWeek      int    `json:"day_of_week"`
	Subject        string `json:"subject"`
	Topic          string `json:"topic,omitempty"`
	Category       string `json:"category,omitempty"`
	DurationTarget int    `json:"duration_target"`
	QuestionTarget int    `json:"question_target"`
}

func (c *Client) AddPlanTask(ctx context.Context, in AddPlanTaskInput) (*PlanTask, error) {
	var t PlanTask
	if err := c.do(ctx, http.MethodPost, "/api/student/plan/add/", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdatePlanTask(ctx context.Context, id uint, in AddPlanTaskInput) (*PlanTask, error) {
	var t PlanTask
	path := fmt.Sprintf("/api/student/plan/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeletePlanTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/student/plan/%d/delete/", id), nil, nil)
}

func (c *Client) SetMinimumDayMinutes(ctx context.Context, minutes int) error {
	return c.do(ctx, http.MethodPut, "/api/student/plan/minimum/",
		map[string]int{"minimum_day_minutes": minutes}, nil)
}

func (c *Client) GetToday(ctx context.Context) (*Today, error) {
	var t Today
	if err := c.do(ctx, http.MethodGet, "/api/student/today/", nil, &t); err != nil {
		return nil, err
	}
	c.sess.Set(KeyCheckinDone, strconv.FormatBool(t.CheckinDone))
	return &t, nil
}

func (c *Client) CompleteTask(ctx context.Context, taskID uint, note string) (*DailyTask, error) {
	var t DailyTask
	err := c.do(ctx, http.MethodPost, "/api/student/today/complete/", map[string]interface{}{
		"task_id":         taskID,
		"completed":       true,
		"completion_note": note,
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SubmitCheckIn posts the three wizard fields. The server enforces the
// time window and the once-per-day rule; callers should consult
// Today.CheckinOpen and CheckinDone first and keep the control
// disabled otherwise.
func (c *Client) SubmitCheckIn(ctx context.Context, p CheckInPayload) error {
	return c.do(ctx, http.MethodPost, "/api/student/checkin/", p, nil)
}

func (c *Client) GetAssignments(ctx context.Context) ([]Assignment, error) {
	var list []Assignment
	if err := c.do(ctx, http.MethodGet, "/api/assignments/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAssignment(ctx context.Context, studentID, title, dueDate string) (*Assignment, error) {
	var a Assignment
	err := c.do(ctx, http.MethodPost, "/api/assignments/create/", map[string]string{
		"student_id": studentID,
		"title":      title,
		"due_date":   dueDate,
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CompleteAssignment(ctx context.Context, id uint) (*Assignment, error) {
	var a Assignment
	path := fmt.Sprintf("/api/assignments/%d/complete/", id)
	if err := c.do(ctx, http.MethodPost, path, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GetExams(ctx context.Context) ([]Exam, error) {
	var list []Exam
	if err := c.do(ctx, http.MethodGet, "/api/exams/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetConversations(ctx context.Context) ([]Conversation, error) {
	var list []Conversation
	if err := c.do(ctx, http.MethodGet, "/api/chat/conversations/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetMessages(ctx context.Context, partnerID uint) ([]Message, error) {
	var list []Message
	path := fmt.Sprintf("/api/chat/messages/%d/", partnerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SendMessage sends text and/or one image. Images above 5MB are
// rejected here, before any request goes out.
func (c *Client) SendMessage(ctx context.Context, receiverID uint, text string, image []byte, filename string) (*Message, error) {
	if len(image) > MaxChatImageBytes {
		return nil, ErrImageTooLarge
	}

	fields := map[string]string{
		"receiver_id": strconv.FormatUint(uint64(receiverID), 10),
		"text":        text,
	}
	var files []filePart
	if len(image) > 0 {
		files = append(files, filePart{Field: "image", Filename: filename, Data: image})
	}

	var m Message
	if err := c.doMultipart(ctx, "/api/chat/send/", fields, files, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) GetQuestions(ctx context.Context) ([]Question, error) {
	var list []Question
	if err := c.do(ctx, http.MethodGet, "/api/questions/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Spin asks the server for its random pick. The strip arrives
// prebuilt; SpinPlan rebuilds it locally when only chosen+decoys are
// at hand.
func (c *Client) Spin(ctx context.Context) (*SpinResult, error) {
	var r SpinResult
	if err := c.do(ctx, http.MethodGet, "/api/questions/spin/", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SpinPlan rebuilds the 25-card strip from a spin response, for
// callers that kept only the chosen question and decoys. Same layout
// as the server's prebuilt strip: the decoy pool is cycled to fill
// the strip (repeating the chosen card when there are no decoys) and
// the chosen card sits at ChosenIndex.
func SpinPlan(r SpinResult) []WheelCard {
	chosen := wheel.Card{ID: r.Chosen.ID, Subject: r.Chosen.Subject, Topic: r.Chosen.Topic}
	decoys := make([]wheel.Card, 0, len(r.Decoys))
	for _, q := range r.Decoys {
		decoys = append(decoys, wheel.Card{ID: q.ID, Subject: q.Subject, Topic: q.Topic})
	}

	strip := wheel.BuildStrip(chosen, decoys)
	out := make([]WheelCard, len(strip))
	for i, card := range strip {
		out[i] = WheelCard(card)
	}
	return out
}

func (c *Client) QuestionFeedback(ctx context.Context, id uint, solved bool) error {
	path := fmt.Sprintf("/api/questions/%d/feedback/", id)
	return c.do(ctx, http.MethodPost, path, map[string]bool{"solved": solved}, nil)
}

// StuckQuestionInput is the stuck-question upload form.
type StuckQuestionInput struct {
	Subject    string
	Topic      string
	SourceType string
	ExamInfo   string
	Note       string
	Images     []ImageFile
}

type ImageFile struct {
	Filename string
	Data     []byte
}

// CreateStuckQuestion uploads a stuck question. Zero images is a
// client-side precondition failure: no request is issued.
func (c *Client) CreateStuckQuestion(ctx context.Context, in StuckQuestionInput) (*StuckQuestion, error) {
	if len(in.Images) == 0 {
		return nil, ErrNoImages
	}
	if len(in.Images) > 5 {
		return nil, ErrTooManyImages
	}

	fields := map[string]string{
		"subject":     in.Subject,
		"topic":       in.Topic,
		"source_type": in.SourceType,
		"exam_info":   in.ExamInfo,
		"note":        in.Note,
	}
	files := make([]filePart, 0, len(in.Images))
	for _, img := range in.Images {
		files = append(files, filePart{Field: "images", Filename: img.Filename, Data: img.Data})
	}

	var s StuckQuestion
	if err := c.doMultipart(ctx, "/api/stuck/", fields, files, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) GetLessons(ctx context.Context) ([]Lesson, error) {
	var list []Lesson
	if err := c.do(ctx, http.MethodGet, "/api/lessons/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
