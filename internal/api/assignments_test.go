package api

import (
	"net/http"
	"strconv"
	"testing"
	"time"
)

func TestAssignmentLifecycle(t *testing.T) {
	r, cfg := setupServer(t)
	coach := createUser(t, "koc@example.com", "coach")
	student := createUser(t, "ali@example.com", "student")
	coachTok := tokenFor(t, cfg, coach)
	studentTok := tokenFor(t, cfg, student)

	w := doJSON(t, r, http.MethodPost, "/api/assignments/create/", coachTok, map[string]string{
		"student_id":  strconv.Itoa(int(student.ID)),
		"title":       "Paragraf denemesi",
		"description": "40 soru",
		"due_date":    "2026-03-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		ID          uint       `json:"id"`
		Status      string     `json:"status"`
		CoachID     *uint      `json:"coach_id"`
		CompletedAt *time.Time `json:"completed_at"`
	}
	decodeBody(t, w, &created)
	if created.Status != "pending" {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.CompletedAt != nil {
		t.Error("completed_at set on a fresh assignment")
	}
	if created.CoachID == nil || *created.CoachID != coach.ID {
		t.Errorf("coach_id = %v, want %d", created.CoachID, coach.ID)
	}

	now := utc3(2026, 3, 5, 14, 0, 0)
	freezeClock(t, now)

	path := "/api/assignments/" + strconv.Itoa(int(created.ID)) + "/complete/"
	w = doJSON(t, r, http.MethodPost, path, studentTok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete: status = %d, body %s", w.Code, w.Body.String())
	}

	var completed struct {
		Status      string     `json:"status"`
		CompletedAt *time.Time `json:"completed_at"`
	}
	decodeBody(t, w, &completed)
	if completed.Status != "completed" {
		t.Errorf("status = %q, want completed", completed.Status)
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want the completion instant", completed.CompletedAt)
	}

	// Completing again keeps the original timestamp.
	freezeClock(t, now.Add(2*time.Hour))
	w = doJSON(t, r, http.MethodPost, path, studentTok, nil)
	decodeBody(t, w, &completed)
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(now) {
		t.Errorf("completed_at moved to %v on repeat complete", completed.CompletedAt)
	}
}

func TestCompleteAssignmentForbiddenForOtherStudent(t *testing.T) {
	r, cfg := setupServer(t)
	coach := createUser(t, "koc@example.com", "coach")
	ali := createUser(t, "ali@example.com", "student")
	veli := createUser(t, "veli@example.com", "student")

	w := doJSON(t, r, http.MethodPost, "/api/assignments/create/", tokenFor(t, cfg, coach), map[string]string{
		"student_id": strconv.Itoa(int(ali.ID)),
		"title":      "Deneme",
		"due_date":   "2026-03-10",
	})
	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &created)

	path := "/api/assignments/" + strconv.Itoa(int(created.ID)) + "/complete/"
	w = doJSON(t, r, http.MethodPost, path, tokenFor(t, cfg, veli), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestCreateAssignmentValidation(t *testing.T) {
	r, cfg := setupServer(t)
	coach := createUser(t, "koc@example.com", "coach")
	token := tokenFor(t, cfg, coach)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "non-numeric student_id", body: map[string]string{
			"student_id": "ali", "title": "Deneme", "due_date": "2026-03-10"}},
		{name: "bad due_date", body: map[string]string{
			"student_id": "1", "title": "Deneme", "due_date": "10.03.2026"}},
		{name: "missing title", body: map[string]string{
			"student_id": "1", "due_date": "2026-03-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/assignments/create/", token, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}
