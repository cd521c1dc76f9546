package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/redstone-admin/internal/dto"
	"github.com/GlebRadaev/redstone-admin/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	expiresAt := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"admin","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "admin", "s3cret").Return("token", expiresAt, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"login":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing password",
			body:          `{"login":"admin"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Login and password are required",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"admin","password":"nope"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "admin", "nope").Return("", time.Time{}, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Token generation error",
			body: `{"login":"admin","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "admin", "s3cret").Return("", time.Time{}, errors.New("boom"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.LoginResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "token", resp.Token)
				assert.Equal(t, expiresAt, resp.ExpiresAt)
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
				return
			}
			var resp utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedError, resp.Message)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	ac := pkgauth.AuthContext{AdminID: "admin", TokenID: "jti"}
	service.EXPECT().Logout(ac)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	r = r.WithContext(pkgauth.WithAuthContext(context.Background(), ac))
	w := httptest.NewRecorder()

	handler.Logout(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutHandler_NoAuthContext(t *testing.T) {
	handler, _ := NewMock(t)
	r := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	w := httptest.NewRecorder()

	handler.Logout(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
