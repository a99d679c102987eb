package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/disiplinli/kocumnet-back/internal/auth"
	"github.com/disiplinli/kocumnet-back/internal/config"
	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// setupServer wires the full router against a throwaway sqlite file so
// handler tests exercise the real middleware chain and queries.
func setupServer(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = gdb

	cfg := &config.Config{JWTSecret: "test-secret", UploadDir: t.TempDir()}
	return SetupRouter(cfg), cfg
}

func createUser(t *testing.T, email, role string) *models.User {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "x", Name: "Test", Role: role, MinimumDayMinutes: 60}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &u
}

func tokenFor(t *testing.T, cfg *config.Config, u *models.User) string {
	t.Helper()
	tok, err := auth.MintToken(cfg, u)
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	return tok
}

// doJSON issues a request with the platform auth header and returns the
// recorder. body may be nil.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// freezeClock pins the handler clock for the duration of a test.
func freezeClock(t *testing.T, now time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = prev })
}

// utc3 builds an instant whose UTC+3 civil time matches the clock.
func utc3(y int, mo time.Month, d, h, m, s int) time.Time {
	return time.Date(y, mo, d, h, m, s, 0, time.FixedZone("UTC+3", 3*60*60))
}
