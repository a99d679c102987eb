package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendAttachesSessionToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.Session().Set(KeyToken, "abc123")

	if _, err := c.GetToday(context.Background()); err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	if gotAuth != "Token abc123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Token abc123")
	}
}

func TestSendWithoutTokenOmitsHeader(t *testing.T) {
	var gotAuth string
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth, present = r.Header.Get("Authorization"), r.Header.Values("Authorization") != nil
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.GetToday(context.Background()); err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	if present {
		t.Errorf("Authorization header sent with empty session: %q", gotAuth)
	}
}

func TestAuthFailureClearsSessionAndNavigates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.Session().Set(KeyToken, "stale")
	c.Session().Set(KeyUser, "Ali")
	c.SetRoute("/dashboard")

	hookCalls := 0
	c.SetOnAuthFailure(func() { hookCalls++ })

	_, err := c.GetToday(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Invalid token" {
		t.Errorf("APIError = %+v", apiErr)
	}
	if hookCalls != 1 {
		t.Errorf("hook calls = %d, want 1", hookCalls)
	}
	if c.Session().Token() != "" || c.Session().Get(KeyUser) != "" {
		t.Error("session not cleared after auth failure")
	}
}

// A 401 on the login view itself must not re-trigger navigation.
func TestAuthFailureOnLoginRouteSkipsHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "E-posta veya şifre hatalı"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetRoute(LoginRoute)
	c.SetOnAuthFailure(func() {
		t.Error("hook fired on the login route")
	})

	if _, err := c.Login(context.Background(), "ali@example.com", "wrong"); err == nil {
		t.Fatal("Login succeeded against a 401 server")
	}
}

func TestAPIErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Bir güne en fazla 3 görev eklenebilir"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.AddPlanTask(context.Background(), AddPlanTaskInput{DayOfWeek: 0, Subject: "Matematik"})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != "Bir güne en fazla 3 görev eklenebilir" {
		t.Errorf("message = %q", apiErr.Message)
	}
}
