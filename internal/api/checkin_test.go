package api

import (
	"net/http"
	"testing"
	"time"
)

func checkInBody(pct int, difficulty, correction string) map[string]interface{} {
	return map[string]interface{}{
		"completion_pct": pct,
		"difficulty_tag": difficulty,
		"correction_tag": correction,
	}
}

func TestSubmitCheckInBeforeWindow(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	freezeClock(t, utc3(2026, 3, 2, 13, 0, 0))

	w := doJSON(t, r, http.MethodPost, "/api/student/checkin/", token,
		checkInBody(75, "odak", "telefon_uzak"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body %s)", w.Code, w.Body.String())
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "Değerlendirme saat 22:00'de açılır" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestSubmitCheckInOncePerDay(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	freezeClock(t, utc3(2026, 3, 2, 22, 30, 0))

	w := doJSON(t, r, http.MethodPost, "/api/student/checkin/", token,
		checkInBody(100, "yok", "duzeltme_yok"))
	if w.Code != http.StatusOK {
		t.Fatalf("first submit: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/student/checkin/", token,
		checkInBody(50, "stres", "erken_basla"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second submit: status = %d, want 400", w.Code)
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "Bugünkü değerlendirme zaten yapıldı" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestSubmitCheckInNextDayAllowedAgain(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	freezeClock(t, utc3(2026, 3, 2, 22, 30, 0))
	w := doJSON(t, r, http.MethodPost, "/api/student/checkin/", token,
		checkInBody(25, "erteleme", "duzenli_calis"))
	if w.Code != http.StatusOK {
		t.Fatalf("day 1: status = %d, body %s", w.Code, w.Body.String())
	}

	freezeClock(t, utc3(2026, 3, 3, 22, 30, 0))
	w = doJSON(t, r, http.MethodPost, "/api/student/checkin/", token,
		checkInBody(75, "konu", "hedef_gozden_gecir"))
	if w.Code != http.StatusOK {
		t.Errorf("day 2: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestSubmitCheckInRejectsOffListValues(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	// Values outside the closed sets fail even inside the window.
	freezeClock(t, utc3(2026, 3, 2, 22, 30, 0))

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "pct off grid", body: checkInBody(33, "odak", "telefon_uzak")},
		{name: "unknown difficulty", body: checkInBody(50, "uyku", "telefon_uzak")},
		{name: "unknown correction", body: checkInBody(50, "odak", "daha_cok_calis")},
		{name: "missing fields", body: map[string]interface{}{"completion_pct": 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/student/checkin/", token, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetTodayGateFields(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	// Monday 07:00 civil: the window opens in 15 hours.
	freezeClock(t, utc3(2026, 3, 2, 7, 0, 0))

	w := doJSON(t, r, http.MethodGet, "/api/student/today/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp todayResponse
	decodeBody(t, w, &resp)

	if resp.Date != "2026-03-02" {
		t.Errorf("date = %q, want 2026-03-02", resp.Date)
	}
	if resp.CheckinOpen {
		t.Error("checkin_open = true at 07:00")
	}
	if resp.CheckinRemainingSeconds != 54000 {
		t.Errorf("checkin_remaining_seconds = %d, want 54000", resp.CheckinRemainingSeconds)
	}
	if resp.CheckinCountdown != "15 sa 0 dk" {
		t.Errorf("checkin_countdown = %q, want %q", resp.CheckinCountdown, "15 sa 0 dk")
	}
	if resp.CheckinDone {
		t.Error("checkin_done = true with no check-in")
	}
}

func TestGetTodayMaterializesWeekdayPlan(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	// Plan: one Monday task, one Tuesday task.
	for _, day := range []int{0, 1} {
		w := doJSON(t, r, http.MethodPost, "/api/student/plan/add/", token, planTaskBody(day, "Matematik"))
		if w.Code != http.StatusOK {
			t.Fatalf("seed add: %d", w.Code)
		}
	}

	// 2026-03-02 is a Monday.
	freezeClock(t, utc3(2026, 3, 2, 9, 0, 0))

	w := doJSON(t, r, http.MethodGet, "/api/student/today/", token, nil)
	var resp todayResponse
	decodeBody(t, w, &resp)
	if len(resp.Tasks) != 1 {
		t.Fatalf("tasks = %d, want only the monday task", len(resp.Tasks))
	}
	if resp.Tasks[0].Status != "pending" {
		t.Errorf("status = %q, want pending", resp.Tasks[0].Status)
	}

	// A second fetch does not duplicate the snapshot.
	w = doJSON(t, r, http.MethodGet, "/api/student/today/", token, nil)
	decodeBody(t, w, &resp)
	if len(resp.Tasks) != 1 {
		t.Errorf("tasks after refetch = %d, want 1", len(resp.Tasks))
	}
}

func TestCompleteTaskToggle(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	w := doJSON(t, r, http.MethodPost, "/api/student/plan/add/", token, planTaskBody(0, "Matematik"))
	if w.Code != http.StatusOK {
		t.Fatalf("seed add: %d", w.Code)
	}

	now := utc3(2026, 3, 2, 9, 0, 0)
	freezeClock(t, now)

	w = doJSON(t, r, http.MethodGet, "/api/student/today/", token, nil)
	var today todayResponse
	decodeBody(t, w, &today)
	if len(today.Tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(today.Tasks))
	}
	taskID := today.Tasks[0].ID

	w = doJSON(t, r, http.MethodPost, "/api/student/today/complete/", token,
		map[string]interface{}{"task_id": taskID, "completion_note": "20 soru çözdüm"})
	if w.Code != http.StatusOK {
		t.Fatalf("complete: status = %d, body %s", w.Code, w.Body.String())
	}

	var completed struct {
		Status         string     `json:"status"`
		CompletionNote string     `json:"completion_note"`
		CompletedAt    *time.Time `json:"completed_at"`
	}
	decodeBody(t, w, &completed)
	if completed.Status != "completed" {
		t.Errorf("status = %q, want completed", completed.Status)
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want the frozen clock", completed.CompletedAt)
	}
	if completed.CompletionNote != "20 soru çözdüm" {
		t.Errorf("completion_note = %q", completed.CompletionNote)
	}

	// Untoggling clears the completion snapshot.
	falseVal := false
	w = doJSON(t, r, http.MethodPost, "/api/student/today/complete/", token,
		map[string]interface{}{"task_id": taskID, "completed": &falseVal})
	completed.Status = ""
	completed.CompletionNote = ""
	completed.CompletedAt = nil
	decodeBody(t, w, &completed)
	if completed.Status != "pending" || completed.CompletedAt != nil || completed.CompletionNote != "" {
		t.Errorf("untoggle left %+v", completed)
	}
}
