package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// noNetwork fails the test if any request reaches the transport; it
// backs the tests for client-side preconditions.
type noNetwork struct{ t *testing.T }

func (tr noNetwork) RoundTrip(r *http.Request) (*http.Response, error) {
	tr.t.Errorf("unexpected network call: %s %s", r.Method, r.URL)
	return nil, errors.New("no network")
}

func offlineClient(t *testing.T) *Client {
	c := New("http://127.0.0.1:0", nil)
	c.SetHTTPClient(&http.Client{Transport: noNetwork{t: t}})
	return c
}

func TestLoginPersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"token": "jwt-value", "user_id": 7, "user": "Ali", "role": "student"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.Login(context.Background(), "ali@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "jwt-value" {
		t.Errorf("token = %q", resp.Token)
	}

	sess := c.Session()
	if sess.Token() != "jwt-value" {
		t.Errorf("session token = %q", sess.Token())
	}
	if sess.Get(KeyUser) != "Ali" || sess.Role() != "student" || sess.Get(KeyUserID) != "7" {
		t.Errorf("session = user %q role %q user_id %q",
			sess.Get(KeyUser), sess.Role(), sess.Get(KeyUserID))
	}
}

func TestLogoutClearsSessionEvenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.Session().Set(KeyToken, "abc")

	if err := c.Logout(context.Background()); err == nil {
		t.Error("Logout swallowed the server error")
	}
	if c.Session().Token() != "" {
		t.Error("session token survived logout")
	}
}

func TestGetTodayMirrorsCheckinDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date": "2026-03-02", "tasks": [], "checkin_done": true, "checkin_open": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	today, err := c.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	if !today.CheckinDone {
		t.Error("checkin_done not parsed")
	}
	if c.Session().Get(KeyCheckinDone) != "true" {
		t.Errorf("session checkin_done = %q", c.Session().Get(KeyCheckinDone))
	}
}

// Oversized chat images never leave the client.
func TestSendMessageRejectsOversizedImage(t *testing.T) {
	c := offlineClient(t)

	big := bytes.Repeat([]byte{0xff}, MaxChatImageBytes+1)
	_, err := c.SendMessage(context.Background(), 2, "bak şuna", big, "soru.jpg")
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestSendMessageAcceptsImageAtTheCap(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id": 1, "sender_id": 1, "receiver_id": 2}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	img := bytes.Repeat([]byte{0xff}, MaxChatImageBytes)
	if _, err := c.SendMessage(context.Background(), 2, "", img, "soru.jpg"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if gotContentType == "" || gotContentType[:len("multipart/form-data")] != "multipart/form-data" {
		t.Errorf("Content-Type = %q, want multipart", gotContentType)
	}
}

// A stuck question needs 1 to 5 photos; violations never hit the wire.
func TestCreateStuckQuestionImageBounds(t *testing.T) {
	c := offlineClient(t)

	_, err := c.CreateStuckQuestion(context.Background(), StuckQuestionInput{
		Subject: "Matematik",
	})
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("zero images: err = %v, want ErrNoImages", err)
	}

	in := StuckQuestionInput{Subject: "Matematik"}
	for i := 0; i < 6; i++ {
		in.Images = append(in.Images, ImageFile{Filename: "q.jpg", Data: []byte{1}})
	}
	_, err = c.CreateStuckQuestion(context.Background(), in)
	if !errors.Is(err, ErrTooManyImages) {
		t.Fatalf("six images: err = %v, want ErrTooManyImages", err)
	}
}

func TestSpinParsesAnimationContract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"chosen": {"id": 5, "subject": "Fizik", "status": "unsolved"},
			"strip": [{"id": 5, "subject": "Fizik"}],
			"spin_duration_ms": 2800,
			"reveal_delay_ms": 400,
			"chosen_index": 22,
			"easing": "cubic-bezier(0.15, 0.85, 0.25, 1)"
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res, err := c.Spin(context.Background())
	if err != nil {
		t.Fatalf("Spin: %v", err)
	}
	if res.Chosen.ID != 5 {
		t.Errorf("chosen id = %d", res.Chosen.ID)
	}
	if res.SpinDurationMS != 2800 || res.RevealDelayMS != 400 || res.ChosenIndex != 22 {
		t.Errorf("animation contract = %d/%d/%d", res.SpinDurationMS, res.RevealDelayMS, res.ChosenIndex)
	}
}

func TestSpinPlanRebuildsStrip(t *testing.T) {
	tests := []struct {
		name   string
		result SpinResult
	}{
		{
			name: "short decoy pool cycles",
			result: SpinResult{
				Chosen: Question{ID: 5, Subject: "Fizik", Topic: "Optik"},
				Decoys: []Question{
					{ID: 1, Subject: "Matematik"},
					{ID: 2, Subject: "Kimya"},
					{ID: 3, Subject: "Biyoloji"},
				},
			},
		},
		{
			name: "no decoys repeats the chosen card",
			result: SpinResult{
				Chosen: Question{ID: 9, Subject: "Tarih", Topic: "İnkılap"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strip := SpinPlan(tt.result)
			if len(strip) != 25 {
				t.Fatalf("len(strip) = %d, want 25", len(strip))
			}
			if strip[22].ID != tt.result.Chosen.ID {
				t.Errorf("strip[22].ID = %d, want %d", strip[22].ID, tt.result.Chosen.ID)
			}
			for i, card := range strip {
				if i == 22 {
					continue
				}
				if len(tt.result.Decoys) == 0 {
					if card.ID != tt.result.Chosen.ID {
						t.Errorf("strip[%d].ID = %d, want chosen %d", i, card.ID, tt.result.Chosen.ID)
					}
					continue
				}
				want := tt.result.Decoys[i%len(tt.result.Decoys)]
				if card.ID != want.ID || card.Subject != want.Subject {
					t.Errorf("strip[%d] = %+v, want decoy %+v", i, card, want)
				}
			}
		})
	}
}
