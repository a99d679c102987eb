package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/disiplinli/kocumnet-back/internal/db"
)

// Short-lived codes (OTP, e-mail verification, password reset) live in
// redis with a TTL. Without redis they fall back to an in-process map,
// which is enough for a single dev instance.

const (
	codeOTP    = "otp"
	codeVerify = "verify"
	codeReset  = "reset"

	codeTTL = 5 * time.Minute
)

type memEntry struct {
	value  string
	expiry time.Time
}

var (
	memMu    sync.Mutex
	memCodes = map[string]memEntry{}
)

func codeKey(kind, email string) string { return "code:" + kind + ":" + email }

func storeCode(ctx context.Context, kind, email, code string, ttl time.Duration) error {
	key := codeKey(kind, email)
	if db.RDB != nil {
		return db.RDB.Set(ctx, key, code, ttl).Err()
	}
	memMu.Lock()
	defer memMu.Unlock()
	memCodes[key] = memEntry{value: code, expiry: time.Now().Add(ttl)}
	return nil
}

// consumeCode checks a submitted code and deletes it on match, so each
// code is single-use.
func consumeCode(ctx context.Context, kind, email, code string) (bool, error) {
	key := codeKey(kind, email)
	if db.RDB != nil {
		stored, err := db.RDB.Get(ctx, key).Result()
		if err != nil {
			return false, nil
		}
		if stored != code {
			return false, nil
		}
		db.RDB.Del(ctx, key)
		return true, nil
	}

	memMu.Lock()
	defer memMu.Unlock()
	entry, ok := memCodes[key]
	if !ok || time.Now().After(entry.expiry) || entry.value != code {
		return false, nil
	}
	delete(memCodes, key)
	return true, nil
}

// DenylistToken voids a token id until its natural expiry (logout).
func DenylistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if db.RDB != nil {
		return db.RDB.Set(ctx, denylistKey(jti), "1", ttl).Err()
	}
	memMu.Lock()
	defer memMu.Unlock()
	memCodes[denylistKey(jti)] = memEntry{value: "1", expiry: time.Now().Add(ttl)}
	return nil
}

func isDenylisted(jti string) bool {
	memMu.Lock()
	defer memMu.Unlock()
	entry, ok := memCodes[denylistKey(jti)]
	return ok && time.Now().Before(entry.expiry)
}

// newCode returns a 6-digit numeric code.
func newCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// crypto/rand failing means something is deeply wrong with the host
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}
