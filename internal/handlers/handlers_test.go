package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/redstone-admin/internal/handlers/auth"
	"github.com/GlebRadaev/redstone-admin/internal/handlers/withdrawals"
	"github.com/GlebRadaev/redstone-admin/internal/service"
	pkgauth "github.com/GlebRadaev/redstone-admin/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       auth.NewMockService(ctrl),
		WithdrawalService: withdrawals.NewMockService(ctrl),
	}
	mw := pkgauth.NewMiddleware(pkgauth.NewMockJWTServiceInterface(ctrl), pkgauth.NewRevocationList(), "")

	h := New(services, mw, []string{"*"})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Authenticate)
	assert.NotNil(t, h.Metrics)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().OpenApproval(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetApproval(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().ChangeWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().ConfirmApproval(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().ResumeApproval(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().CloseApproval(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Decline(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetDecisions(gomock.Any(), gomock.Any()).AnyTimes()

	jwt := pkgauth.NewMockJWTServiceInterface(ctrl)
	jwt.EXPECT().ValidateToken(gomock.Any()).Return(nil, assert.AnError).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		Authenticate:      pkgauth.NewMiddleware(jwt, pkgauth.NewRevocationList(), "").Authenticate,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		AllowedOrigins: []string{"*"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/admin/login", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"POST", "/api/admin/logout", "", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", "", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/wd1/approval", "", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/wd1/decline", "", http.StatusUnauthorized},
		{"GET", "/api/admin/approval", "", http.StatusUnauthorized},
		{"DELETE", "/api/admin/approval", "", http.StatusUnauthorized},
		{"PUT", "/api/admin/approval/wallet", "", http.StatusUnauthorized},
		{"POST", "/api/admin/approval/confirm", "", http.StatusUnauthorized},
		{"POST", "/api/admin/approval/resume", "", http.StatusUnauthorized},
		{"GET", "/api/admin/decisions", "", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", "Bearer forged", http.StatusUnauthorized},
		{"GET", "/api/admin/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockWithdrawalHandler.EXPECT().OpenApproval(gomock.Any(), gomock.Any()).
		Do(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "wd1", chi.URLParam(r, "id"))
			_, ok := pkgauth.FromContext(r.Context())
			assert.True(t, ok)
		})

	jwt := pkgauth.NewMockJWTServiceInterface(ctrl)
	jwt.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{AdminID: "admin"}, nil)

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		Authenticate:      pkgauth.NewMiddleware(jwt, pkgauth.NewRevocationList(), "").Authenticate,
		Metrics:           http.NotFoundHandler(),
		AllowedOrigins:    []string{"*"},
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/wd1/approval", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
