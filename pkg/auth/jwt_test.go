package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	token, err := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.AdminID)
	assert.NotEmpty(t, claims.Id)
}

func TestGenerateJWT_UniqueTokenIDs(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	exp := time.Now().Add(time.Hour)

	first, _ := jwtService.GenerateJWT("admin", exp)
	second, _ := jwtService.GenerateJWT("admin", exp)

	c1, err := jwtService.ValidateToken(first)
	assert.NoError(t, err)
	c2, err := jwtService.ValidateToken(second)
	assert.NoError(t, err)
	assert.NotEqual(t, c1.Id, c2.Id)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("admin", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT("admin", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing Admin",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					AdminID: "admin",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "storefront",
					},
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
