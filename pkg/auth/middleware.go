package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/redstone-admin/pkg/utils"
)

type Revoker interface {
	IsRevoked(tokenID string) bool
}

type Middleware struct {
	jwt          JWTServiceInterface
	revoked      Revoker
	serviceToken string
}

// NewMiddleware builds the console authenticator. With an empty serviceToken
// the admin's own bearer token is forwarded to the backend.
func NewMiddleware(jwt JWTServiceInterface, revoked Revoker, serviceToken string) *Middleware {
	return &Middleware{jwt: jwt, revoked: revoked, serviceToken: serviceToken}
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwt.ValidateToken(token)
		if err != nil || m.revoked.IsRevoked(claims.Id) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		backendToken := token
		if m.serviceToken != "" {
			backendToken = m.serviceToken
		}
		ctx := WithAuthContext(r.Context(), AuthContext{
			AdminID:   claims.AdminID,
			Token:     backendToken,
			TokenID:   claims.Id,
			ExpiresAt: time.Unix(claims.ExpiresAt, 0),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
