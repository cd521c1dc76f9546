package service

import (
	"github.com/GlebRadaev/redstone-admin/internal/config"
	"github.com/GlebRadaev/redstone-admin/internal/handlers/auth"
	"github.com/GlebRadaev/redstone-admin/internal/handlers/withdrawals"
	"github.com/GlebRadaev/redstone-admin/internal/repo"
	authservice "github.com/GlebRadaev/redstone-admin/internal/service/authservice"
	withdrawalservice "github.com/GlebRadaev/redstone-admin/internal/service/withdrawalservice"
	"github.com/GlebRadaev/redstone-admin/internal/watcher"
	pkgauth "github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/monitor"
)

type Services struct {
	AuthService       auth.Service
	WithdrawalService withdrawals.Service
	Pending           watcher.PendingCounter
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	backend withdrawalservice.Backend,
	metrics *monitor.Metrics,
	jwt pkgauth.JWTServiceInterface,
	revoked *pkgauth.RevocationList,
) *Services {
	withdrawalService := withdrawalservice.New(backend, repo.DecisionRepo, metrics, cfg.RequestTimeout)
	authService := authservice.New(cfg, &pkgauth.HashService{}, jwt, revoked, withdrawalService)

	return &Services{
		AuthService:       authService,
		WithdrawalService: withdrawalService,
		Pending:           withdrawalService,
	}
}
