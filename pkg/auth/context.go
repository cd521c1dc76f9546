package auth

import (
	"context"
	"sync"
	"time"
)

// AuthContext is the per-request identity of an admin. It is built by the
// middleware and handed explicitly to every backend call. Token is forwarded
// to the backend as an opaque bearer credential, TokenID identifies the
// console session.
type AuthContext struct {
	AdminID   string
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

func (a AuthContext) Bearer() string {
	return "Bearer " + a.Token
}

func (a AuthContext) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && !now.Before(a.ExpiresAt)
}

type ContextKey string

const AuthContextKey ContextKey = "authContext"

func WithAuthContext(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, AuthContextKey, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(AuthContextKey).(AuthContext)
	return ac, ok
}

// RevocationList remembers logged-out token ids until they would have expired anyway.
type RevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *RevocationList) Revoke(tokenID string, expiresAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, exp := range l.revoked {
		if !now.Before(exp) {
			delete(l.revoked, id)
		}
	}
	l.revoked[tokenID] = expiresAt
}

func (l *RevocationList) IsRevoked(tokenID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.revoked[tokenID]
	return ok
}
