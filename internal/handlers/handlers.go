package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/redstone-admin/docs"
	authhandlers "github.com/GlebRadaev/redstone-admin/internal/handlers/auth"
	withdrawalhandlers "github.com/GlebRadaev/redstone-admin/internal/handlers/withdrawals"
	"github.com/GlebRadaev/redstone-admin/internal/service"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	OpenApproval(w http.ResponseWriter, r *http.Request)
	GetApproval(w http.ResponseWriter, r *http.Request)
	ChangeWallet(w http.ResponseWriter, r *http.Request)
	ConfirmApproval(w http.ResponseWriter, r *http.Request)
	ResumeApproval(w http.ResponseWriter, r *http.Request)
	CloseApproval(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	GetDecisions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WithdrawalHandler WithdrawalHandler
	Authenticate      func(http.Handler) http.Handler
	Metrics           http.Handler
	AllowedOrigins    []string
}

func New(s *service.Services, mw *auth.Middleware, allowedOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		Authenticate:      mw.Authenticate,
		Metrics:           promhttp.Handler(),
		AllowedOrigins:    allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", h.Metrics)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
				r.Post("/{id}/approval", h.WithdrawalHandler.OpenApproval)
				r.Post("/{id}/decline", h.WithdrawalHandler.Decline)
			})
			r.Route("/approval", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.GetApproval)
				r.Delete("/", h.WithdrawalHandler.CloseApproval)
				r.Put("/wallet", h.WithdrawalHandler.ChangeWallet)
				r.Post("/confirm", h.WithdrawalHandler.ConfirmApproval)
				r.Post("/resume", h.WithdrawalHandler.ResumeApproval)
			})
			r.Get("/decisions", h.WithdrawalHandler.GetDecisions)
		})
	})

	return r
}
