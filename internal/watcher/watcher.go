package watcher

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/config"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
)

const watcherAdminID = "pending-watcher"

//go:generate mockgen -source=watcher.go -destination=mock_watcher.go -package=watcher
type PendingCounter interface {
	PendingCount(ctx context.Context, ac auth.AuthContext) (int, error)
}

// Watcher polls the backend for the size of the pending queue so the gauge
// stays current while no admin has the dashboard open.
type Watcher struct {
	counter  PendingCounter
	ac       auth.AuthContext
	interval time.Duration
	last     int
}

func New(cfg *config.Config, counter PendingCounter) *Watcher {
	return &Watcher{
		counter:  counter,
		ac:       auth.AuthContext{AdminID: watcherAdminID, Token: cfg.ServiceToken},
		interval: cfg.PendingPollInterval,
		last:     -1,
	}
}

func (w *Watcher) Enabled() bool {
	return w.ac.Token != "" && w.interval > 0
}

func (w *Watcher) Start(ctx context.Context) {
	if !w.Enabled() {
		zap.L().Info("Pending watcher disabled, no backend service token")
		return
	}
	zap.L().Info("Pending watcher started", zap.Duration("interval", w.interval))
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping pending watcher")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	n, err := w.counter.PendingCount(ctx, w.ac)
	if err != nil {
		if ctx.Err() == nil {
			zap.L().Warn("Failed to poll pending withdrawals", zap.Error(err))
		}
		return
	}
	if w.last >= 0 && n > w.last {
		zap.L().Info("New withdrawals awaiting review", zap.Int("pending", n), zap.Int("new", n-w.last))
	}
	w.last = n
}
