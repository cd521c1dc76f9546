package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware_Authenticate(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	revoked := NewRevocationList()
	m := NewMiddleware(jwtService, revoked, "")

	valid, _ := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))
	loggedOut, _ := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))
	claims, _ := jwtService.ValidateToken(loggedOut)
	revoked.Revoke(claims.Id, time.Unix(claims.ExpiresAt, 0))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
		{name: "missing header", expectedCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, expectedCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", expectedCode: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + loggedOut, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AuthContext
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			m.Authenticate(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "admin", got.AdminID)
				assert.Equal(t, valid, got.Token)
				assert.Equal(t, "Bearer "+valid, got.Bearer())
				assert.False(t, got.Expired(time.Now()))
			}
		})
	}
}

func TestMiddleware_ServiceToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	m := NewMiddleware(jwtService, NewRevocationList(), "svc-token")
	token, _ := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))

	var got AuthContext
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	})
	r := httptest.NewRequest(http.MethodGet, "/api/admin/approval", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	m.Authenticate(next).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "admin", got.AdminID)
	assert.Equal(t, "Bearer svc-token", got.Bearer())
	assert.NotEmpty(t, got.TokenID)
}

func TestFromContext_Missing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}

func TestRevocationList_PrunesExpired(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	l := NewRevocationList()
	l.now = func() time.Time { return now }

	l.Revoke("fresh", now.Add(time.Hour))
	l.Revoke("old", now.Add(-time.Minute))

	assert.True(t, l.IsRevoked("fresh"))
	assert.True(t, l.IsRevoked("old"))

	l.Revoke("another", now.Add(time.Hour))
	assert.False(t, l.IsRevoked("old"))
	assert.True(t, l.IsRevoked("fresh"))
}

func TestAuthContext_Expired(t *testing.T) {
	now := time.Now()
	assert.True(t, AuthContext{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.False(t, AuthContext{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.False(t, AuthContext{}.Expired(now))
}
