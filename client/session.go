package client

import "sync"

// Session keys, mirroring what the web client persists locally.
const (
	KeyToken         = "token"
	KeyUser          = "user"
	KeyRole          = "role"
	KeyUserID        = "user_id"
	KeyCookieConsent = "cookie_consent"
	KeyCheckinDone   = "checkin_done"
	KeyLastVisit     = "last_visit"
)

// Session is the local key/value store every page reads for the
// current user, role and token. Last write wins; Clear wipes
// everything at once (logout and auth failure).
type Session struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSession() *Session {
	return &Session{values: map[string]string{}}
}

func (s *Session) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]string{}
}

func (s *Session) Token() string { return s.Get(KeyToken) }
func (s *Session) Role() string  { return s.Get(KeyRole) }
