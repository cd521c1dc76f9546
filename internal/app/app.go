package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/backend"
	"github.com/GlebRadaev/redstone-admin/internal/config"
	"github.com/GlebRadaev/redstone-admin/internal/handlers"
	"github.com/GlebRadaev/redstone-admin/internal/pg"
	"github.com/GlebRadaev/redstone-admin/internal/repo"
	"github.com/GlebRadaev/redstone-admin/internal/service"
	"github.com/GlebRadaev/redstone-admin/internal/watcher"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/clients"
	"github.com/GlebRadaev/redstone-admin/pkg/logger"
	"github.com/GlebRadaev/redstone-admin/pkg/monitor"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	pending *watcher.Watcher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid configuration", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.AdminPasswordHash == "" {
		zap.L().Warn("ADMIN_PASSWORD_HASH is empty, every login will be refused")
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		pool.Close()
	}()

	jwt := auth.NewJWTService(cfg.JWTSecret)
	revoked := auth.NewRevocationList()
	metrics := monitor.New(prometheus.DefaultRegisterer)
	client := backend.New(cfg, clients.NewHTTPClient(cfg.RequestTimeout))

	a.cfg = cfg
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(cfg, a.repo, client, metrics, jwt, revoked)
	a.api = handlers.New(a.srv, auth.NewMiddleware(jwt, revoked, cfg.ServiceToken), cfg.AllowedOrigins)
	a.pending = watcher.New(cfg, a.srv.Pending)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startPendingWatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startPendingWatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.pending.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
