package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/frahmantamala/recognition/internal/user"
)

// Session is the domain model for an authenticated session: an opaque token
// bound to a user with an absolute expiry. There is no sliding renewal.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// GenerateSessionToken returns a cryptographically random opaque token with
// 256 bits of entropy, hex encoded.
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

type ctxKey string

const ContextUserKey ctxKey = "authenticated_user"

// UserFromContext returns the session user placed by the middleware.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*user.User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}
