package api

import (
	"net/http"
	"testing"
)

func TestToggleTopicFlips(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	body := map[string]string{"category": "TYT", "subject": "Matematik", "topic": "Problemler"}

	w := doJSON(t, r, http.MethodPost, "/api/topics/toggle/", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle on: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/topics/?category=TYT", token, nil)
	var subjects []topicSubject
	decodeBody(t, w, &subjects)

	found := false
	for _, s := range subjects {
		if s.Subject != "Matematik" {
			continue
		}
		if s.Done != 1 {
			t.Errorf("done = %d, want 1", s.Done)
		}
		for _, topic := range s.Topics {
			if topic.Name == "Problemler" {
				found = topic.Completed
			}
		}
	}
	if !found {
		t.Error("toggled topic not marked completed")
	}

	// Toggling again removes the mark.
	w = doJSON(t, r, http.MethodPost, "/api/topics/toggle/", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle off: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/topics/?category=TYT", token, nil)
	decodeBody(t, w, &subjects)
	for _, s := range subjects {
		if s.Subject == "Matematik" && s.Done != 0 {
			t.Errorf("done after untoggle = %d, want 0", s.Done)
		}
	}
}

func TestGetTopicsSortedByCatalog(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	w := doJSON(t, r, http.MethodGet, "/api/topics/?category=AYT", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var subjects []topicSubject
	decodeBody(t, w, &subjects)
	if len(subjects) != len(TopicCatalog["AYT"]) {
		t.Fatalf("subjects = %d, want %d", len(subjects), len(TopicCatalog["AYT"]))
	}
	for i := 1; i < len(subjects); i++ {
		if subjects[i-1].Subject > subjects[i].Subject {
			t.Errorf("subjects out of order: %q before %q", subjects[i-1].Subject, subjects[i].Subject)
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/topics/?category=LGS", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown category: status = %d, want 400", w.Code)
	}
}
