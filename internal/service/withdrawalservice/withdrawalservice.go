package withdrawalservice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/approval"
	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/monitor"
)

const (
	DefaultDecisionsLimit = 50
	MaxDecisionsLimit     = 500
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice
type Backend interface {
	ListWithdrawals(ctx context.Context, ac auth.AuthContext) ([]domain.WithdrawalRequest, error)
	FetchDetail(ctx context.Context, ac auth.AuthContext, withdrawalID string) (*domain.WithdrawalDetail, error)
	FetchTreasury(ctx context.Context, ac auth.AuthContext) (*domain.TreasurySnapshot, error)
	Approve(ctx context.Context, ac auth.AuthContext, withdrawalID, adminNotes, selectedWallet string) (string, error)
	Reject(ctx context.Context, ac auth.AuthContext, withdrawalID, adminNotes string) (string, error)
}

type DecisionRepo interface {
	CreateDecision(ctx context.Context, decision *domain.Decision) (*domain.Decision, error)
	ListDecisions(ctx context.Context, limit int) ([]domain.Decision, error)
}

// Service keeps one approval workflow per admin and journals every decision
// that reached the backend.
type Service struct {
	backend   Backend
	decisions DecisionRepo
	metrics   *monitor.Metrics
	timeout   time.Duration

	mu       sync.Mutex
	sessions map[string]*approval.Controller
}

func New(backend Backend, decisions DecisionRepo, metrics *monitor.Metrics, timeout time.Duration) *Service {
	return &Service{
		backend:   &instrumented{Backend: backend, metrics: metrics},
		decisions: decisions,
		metrics:   metrics,
		timeout:   timeout,
		sessions:  make(map[string]*approval.Controller),
	}
}

func (s *Service) session(adminID string) *approval.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[adminID]
	if !ok {
		c = approval.New(approval.Deps{
			Details:   s.backend,
			Treasury:  s.backend,
			Submitter: s.backend,
			Refresher: s.backend,
			Timeout:   s.timeout,
		})
		s.sessions[adminID] = c
	}
	return c
}

// EndSession drops the admin's workflow. A workflow with a backend call in
// flight stays registered so no second command can start beside it.
func (s *Service) EndSession(adminID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.sessions[adminID]
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		zap.L().Warn("session kept, a backend call is in flight", zap.String("adminID", adminID), zap.Error(err))
		return
	}
	delete(s.sessions, adminID)
}

func (s *Service) ListWithdrawals(ctx context.Context, ac auth.AuthContext, status string) ([]domain.WithdrawalRequest, error) {
	var filter domain.WithdrawalStatus
	if status != "" {
		st, ok := domain.ParseWithdrawalStatus(status)
		if !ok {
			return nil, domain.NewValidationError("status", "must be one of PENDING, APPROVED, REJECTED")
		}
		filter = st
	}

	withdrawals, err := s.backend.ListWithdrawals(ctx, ac)
	if err != nil {
		return nil, err
	}
	s.metrics.Pending(countPending(withdrawals))

	if filter == "" {
		return withdrawals, nil
	}
	filtered := make([]domain.WithdrawalRequest, 0, len(withdrawals))
	for _, w := range withdrawals {
		if w.Status == filter {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

func (s *Service) PendingCount(ctx context.Context, ac auth.AuthContext) (int, error) {
	withdrawals, err := s.backend.ListWithdrawals(ctx, ac)
	if err != nil {
		return 0, err
	}
	n := countPending(withdrawals)
	s.metrics.Pending(n)
	return n, nil
}

func countPending(withdrawals []domain.WithdrawalRequest) int {
	n := 0
	for _, w := range withdrawals {
		if w.Actionable() {
			n++
		}
	}
	return n
}

func (s *Service) findWithdrawal(ctx context.Context, ac auth.AuthContext, withdrawalID string) (domain.WithdrawalRequest, error) {
	withdrawalID = strings.TrimSpace(withdrawalID)
	if withdrawalID == "" {
		return domain.WithdrawalRequest{}, domain.NewValidationError("withdrawal id", "must not be empty")
	}
	withdrawals, err := s.backend.ListWithdrawals(ctx, ac)
	if err != nil {
		return domain.WithdrawalRequest{}, err
	}
	for _, w := range withdrawals {
		if w.ID == withdrawalID {
			return w, nil
		}
	}
	return domain.WithdrawalRequest{}, domain.ErrWithdrawalNotFound
}

func (s *Service) OpenApproval(ctx context.Context, ac auth.AuthContext, withdrawalID string) (approval.Snapshot, error) {
	request, err := s.findWithdrawal(ctx, ac, withdrawalID)
	if err != nil {
		return approval.Snapshot{}, err
	}

	snap, err := s.session(ac.AdminID).Open(ctx, ac, request)
	if err != nil {
		return snap, err
	}
	s.metrics.Verdict(snap.Verdict.CanProcess)
	return snap, nil
}

func (s *Service) Approval(ac auth.AuthContext) approval.Snapshot {
	return s.session(ac.AdminID).Snapshot()
}

func (s *Service) ChangeWallet(ac auth.AuthContext, address string) (approval.Snapshot, error) {
	snap, err := s.session(ac.AdminID).ChangeSelectedWallet(address)
	if err != nil {
		return snap, err
	}
	s.metrics.Verdict(snap.Verdict.CanProcess)
	return snap, nil
}

func (s *Service) ConfirmApproval(ctx context.Context, ac auth.AuthContext, adminNotes string) (*approval.Result, error) {
	result, err := s.session(ac.AdminID).Confirm(ctx, ac, adminNotes)
	s.record(ctx, ac, result, err)
	return result, err
}

func (s *Service) Decline(ctx context.Context, ac auth.AuthContext, withdrawalID, reason, adminNotes string) (*approval.Result, error) {
	if !domain.IsDeclineReason(reason) {
		return nil, domain.NewValidationError("reason", "must be one of: "+strings.Join(domain.DeclineReasons, ", "))
	}
	request, err := s.findWithdrawal(ctx, ac, withdrawalID)
	if err != nil {
		return nil, err
	}

	result, err := s.session(ac.AdminID).Decline(ctx, ac, request, reason, adminNotes)
	s.record(ctx, ac, result, err)
	return result, err
}

func (s *Service) ResumeApproval(ac auth.AuthContext) (approval.Snapshot, error) {
	return s.session(ac.AdminID).Resume()
}

func (s *Service) CloseApproval(ac auth.AuthContext) error {
	return s.session(ac.AdminID).Close()
}

func (s *Service) ListDecisions(ctx context.Context, limit int) ([]domain.Decision, error) {
	switch {
	case limit <= 0:
		limit = DefaultDecisionsLimit
	case limit > MaxDecisionsLimit:
		limit = MaxDecisionsLimit
	}
	decisions, err := s.decisions.ListDecisions(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list decisions", zap.Error(err))
		return nil, err
	}
	return decisions, nil
}

// record journals a command that was actually sent. Gated attempts carry no
// result and are not recorded. A journal failure never changes the outcome.
func (s *Service) record(ctx context.Context, ac auth.AuthContext, result *approval.Result, err error) {
	if result == nil {
		return
	}

	outcome := domain.OutcomeSucceeded
	if err != nil {
		outcome = domain.OutcomeFailed
	}
	s.metrics.Decision(string(result.Kind), string(outcome), result.Amount.InexactFloat64())
	if result.Withdrawals != nil {
		s.metrics.Pending(countPending(result.Withdrawals))
	}

	decision := &domain.Decision{
		ID:             uuid.NewString(),
		WithdrawalID:   result.WithdrawalID,
		AdminID:        ac.AdminID,
		Kind:           result.Kind,
		SelectedWallet: result.Wallet,
		Amount:         result.Amount,
		AdminNotes:     result.AdminNotes,
		Outcome:        outcome,
		Message:        result.Message,
	}
	// the request context may already be cancelled by a client that gave up
	journalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, jErr := s.decisions.CreateDecision(journalCtx, decision); jErr != nil {
		zap.L().Error("failed to journal decision",
			zap.String("withdrawalID", decision.WithdrawalID),
			zap.String("kind", string(decision.Kind)),
			zap.String("outcome", string(outcome)),
			zap.Error(jErr))
	}
}

// instrumented counts failed backend reads.
type instrumented struct {
	Backend
	metrics *monitor.Metrics
}

func (i *instrumented) ListWithdrawals(ctx context.Context, ac auth.AuthContext) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := i.Backend.ListWithdrawals(ctx, ac)
	if err != nil {
		i.metrics.FetchFailure("withdrawals")
	}
	return withdrawals, err
}

func (i *instrumented) FetchDetail(ctx context.Context, ac auth.AuthContext, withdrawalID string) (*domain.WithdrawalDetail, error) {
	detail, err := i.Backend.FetchDetail(ctx, ac, withdrawalID)
	var verr *domain.ValidationError
	if err != nil && !errors.As(err, &verr) {
		i.metrics.FetchFailure("detail")
	}
	return detail, err
}

func (i *instrumented) FetchTreasury(ctx context.Context, ac auth.AuthContext) (*domain.TreasurySnapshot, error) {
	treasury, err := i.Backend.FetchTreasury(ctx, ac)
	if err != nil {
		i.metrics.FetchFailure("treasury")
	}
	return treasury, err
}
