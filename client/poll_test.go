package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPollIntervals(t *testing.T) {
	if DashboardPollInterval != 30*time.Second {
		t.Errorf("DashboardPollInterval = %v, want 30s", DashboardPollInterval)
	}
	if MessagePollInterval != 3*time.Second {
		t.Errorf("MessagePollInterval = %v, want 3s", MessagePollInterval)
	}
}

func TestPollDashboardFetchesImmediatelyAndStops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unread_messages": 2, "pending_assignments": 1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan Dashboard, 1)
	done := make(chan struct{})
	go func() {
		c.PollDashboard(ctx, func(d Dashboard) {
			select {
			case got <- d:
			default:
			}
		})
		close(done)
	}()

	// The first fetch happens before the first tick.
	select {
	case d := <-got:
		if d.UnreadMessages != 2 || d.PendingAssignments != 1 {
			t.Errorf("dashboard = %+v", d)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no immediate fetch")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}

func TestPollSwallowsFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.PollMessages(ctx, 1, func([]Message) {
			t.Error("callback fired on a failing fetch")
		})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
