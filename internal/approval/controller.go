// Package approval drives one admin's approve/decline workflow for a single
// withdrawal request.
package approval

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/internal/feasibility"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/clients"
)

var (
	ErrWorkflowBusy = errors.New("approval workflow is busy")
	ErrInvalidState = errors.New("action not allowed in current state")
	ErrNotFeasible  = errors.New("withdrawal cannot be processed with the selected wallet")
)

//go:generate mockgen -source=controller.go -destination=mock_controller.go -package=approval
type DetailFetcher interface {
	FetchDetail(ctx context.Context, ac auth.AuthContext, withdrawalID string) (*domain.WithdrawalDetail, error)
}

type TreasuryInspector interface {
	FetchTreasury(ctx context.Context, ac auth.AuthContext) (*domain.TreasurySnapshot, error)
}

type Submitter interface {
	Approve(ctx context.Context, ac auth.AuthContext, withdrawalID, adminNotes, selectedWallet string) (string, error)
	Reject(ctx context.Context, ac auth.AuthContext, withdrawalID, adminNotes string) (string, error)
}

type Refresher interface {
	ListWithdrawals(ctx context.Context, ac auth.AuthContext) ([]domain.WithdrawalRequest, error)
}

type Deps struct {
	Details   DetailFetcher
	Treasury  TreasuryInspector
	Submitter Submitter
	Refresher Refresher
	Timeout   time.Duration
}

// Controller is safe for concurrent use. The lock is never held across a
// backend call; the busy states keep overlapping calls out instead.
type Controller struct {
	deps Deps

	mu       sync.Mutex
	state    State
	request  *domain.WithdrawalRequest
	detail   *domain.WithdrawalDetail
	treasury *domain.TreasurySnapshot
	verdict  *domain.FeasibilityVerdict
	lastKind domain.DecisionKind
	message  string
	err      error
}

func New(deps Deps) *Controller {
	if deps.Timeout <= 0 {
		deps.Timeout = clients.DefaultTimeout
	}
	return &Controller{deps: deps}
}

func (c *Controller) clear() {
	c.request, c.detail, c.treasury, c.verdict = nil, nil, nil, nil
	c.lastKind, c.message, c.err = "", "", nil
}

func (c *Controller) snapshot() Snapshot {
	s := Snapshot{
		State:    c.state,
		LastKind: c.lastKind,
		Message:  c.message,
		Err:      c.err,
	}
	if c.request != nil {
		r := *c.request
		s.Request = &r
	}
	if c.detail != nil {
		d := *c.detail
		s.Detail = &d
	}
	if c.treasury != nil {
		t := *c.treasury
		t.ReusableWallets = append([]domain.Wallet(nil), c.treasury.ReusableWallets...)
		s.Treasury = &t
	}
	if c.verdict != nil {
		v := *c.verdict
		s.Verdict = &v
	}
	return s
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Open loads the detail and treasury state for request and evaluates it
// against the backend's default wallet. On any fetch failure the workflow is
// reset to idle and nothing of the attempt is kept.
func (c *Controller) Open(ctx context.Context, ac auth.AuthContext, request domain.WithdrawalRequest) (Snapshot, error) {
	if request.ID == "" {
		return Snapshot{}, domain.NewValidationError("withdrawal id", "must not be empty")
	}
	if !request.Actionable() {
		return Snapshot{}, domain.NewValidationError("withdrawal status", "only pending withdrawals can be reviewed, got "+string(request.Status))
	}

	c.mu.Lock()
	if c.state.busy() {
		c.mu.Unlock()
		return Snapshot{}, ErrWorkflowBusy
	}
	c.clear()
	c.state = StateLoadingDetail
	r := request
	c.request = &r
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.deps.Timeout)
	defer cancel()

	var (
		detail   *domain.WithdrawalDetail
		treasury *domain.TreasurySnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := c.deps.Details.FetchDetail(gctx, ac, request.ID)
		if err != nil {
			return err
		}
		detail = d
		return nil
	})
	g.Go(func() error {
		t, err := c.deps.Treasury.FetchTreasury(gctx, ac)
		if err != nil {
			return err
		}
		treasury = t
		return nil
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		zap.L().Warn("failed to open approval",
			zap.String("adminID", ac.AdminID),
			zap.String("withdrawalID", request.ID),
			zap.Error(err))
		c.clear()
		c.state = StateIdle
		return c.snapshot(), err
	}

	verdict := feasibility.Evaluate(request.RequestedAmount, *treasury, "")
	c.detail, c.treasury, c.verdict = detail, treasury, &verdict
	c.state = StateDetailReady
	return c.snapshot(), nil
}

// ChangeSelectedWallet re-evaluates the loaded request against another payer
// wallet. Unknown addresses fall back to the current wallet.
func (c *Controller) ChangeSelectedWallet(address string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDetailReady {
		return c.snapshot(), ErrInvalidState
	}

	verdict := feasibility.Evaluate(c.request.RequestedAmount, *c.treasury, strings.TrimSpace(address))
	c.verdict = &verdict
	return c.snapshot(), nil
}

// Confirm approves the loaded request from the selected wallet. Nothing is
// sent unless the workflow is ready and the verdict allows processing.
func (c *Controller) Confirm(ctx context.Context, ac auth.AuthContext, adminNotes string) (*Result, error) {
	c.mu.Lock()
	if c.state != StateDetailReady {
		state := c.state
		c.mu.Unlock()
		if state.busy() {
			return nil, ErrWorkflowBusy
		}
		return nil, ErrInvalidState
	}
	if !c.verdict.CanProcess {
		c.mu.Unlock()
		return nil, ErrNotFeasible
	}
	result := &Result{
		Kind:         domain.DecisionApprove,
		WithdrawalID: c.request.ID,
		Amount:       c.request.RequestedAmount,
		Wallet:       c.verdict.SelectedWalletAddress,
		AdminNotes:   adminNotes,
	}
	c.state = StateSubmitting
	c.lastKind, c.message, c.err = domain.DecisionApprove, "", nil
	c.mu.Unlock()

	return c.finish(ctx, ac, result, func(ctx context.Context) (string, error) {
		return c.deps.Submitter.Approve(ctx, ac, result.WithdrawalID, adminNotes, result.Wallet)
	})
}

// Decline rejects request with one of the predefined reasons. It is not gated
// by feasibility and may target a request other than the loaded one.
func (c *Controller) Decline(ctx context.Context, ac auth.AuthContext, request domain.WithdrawalRequest, reason, adminNotes string) (*Result, error) {
	if request.ID == "" {
		return nil, domain.NewValidationError("withdrawal id", "must not be empty")
	}
	if !request.Actionable() {
		return nil, domain.NewValidationError("withdrawal status", "only pending withdrawals can be declined, got "+string(request.Status))
	}
	if !domain.IsDeclineReason(reason) {
		return nil, domain.NewValidationError("reason", "must be one of: "+strings.Join(domain.DeclineReasons, ", "))
	}

	notes := reason
	if n := strings.TrimSpace(adminNotes); n != "" {
		notes = reason + ": " + n
	}

	c.mu.Lock()
	if c.state.busy() {
		c.mu.Unlock()
		return nil, ErrWorkflowBusy
	}
	if c.request == nil || c.request.ID != request.ID {
		c.clear()
		r := request
		c.request = &r
	}
	c.state = StateSubmitting
	c.lastKind, c.message, c.err = domain.DecisionReject, "", nil
	c.mu.Unlock()

	result := &Result{
		Kind:         domain.DecisionReject,
		WithdrawalID: request.ID,
		Amount:       request.RequestedAmount,
		AdminNotes:   notes,
	}
	return c.finish(ctx, ac, result, func(ctx context.Context) (string, error) {
		return c.deps.Submitter.Reject(ctx, ac, request.ID, notes)
	})
}

// finish sends a single command and settles the workflow. A failed command
// keeps the loaded detail so the admin can retry without fetching again.
func (c *Controller) finish(ctx context.Context, ac auth.AuthContext, result *Result, send func(context.Context) (string, error)) (*Result, error) {
	sendCtx, cancel := context.WithTimeout(ctx, c.deps.Timeout)
	message, err := send(sendCtx)
	cancel()

	if err != nil {
		var subErr *domain.SubmissionError
		if errors.As(err, &subErr) {
			result.Message = subErr.Message
		} else {
			result.Message = err.Error()
		}

		c.mu.Lock()
		c.state = StateFailure
		c.message, c.err = result.Message, err
		c.mu.Unlock()
		return result, err
	}
	result.Message = message

	refreshCtx, cancel := context.WithTimeout(ctx, c.deps.Timeout)
	withdrawals, refreshErr := c.deps.Refresher.ListWithdrawals(refreshCtx, ac)
	cancel()
	if refreshErr != nil {
		zap.L().Warn("failed to refresh withdrawals after decision",
			zap.String("adminID", ac.AdminID),
			zap.String("withdrawalID", result.WithdrawalID),
			zap.Error(refreshErr))
	} else {
		result.Withdrawals = withdrawals
	}

	c.mu.Lock()
	c.state = StateSuccess
	c.message, c.err = message, nil
	c.mu.Unlock()
	return result, nil
}

// Resume leaves a failed submission. The workflow returns to the loaded
// detail when there is one, otherwise to idle.
func (c *Controller) Resume() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateFailure {
		return c.snapshot(), ErrInvalidState
	}
	if c.detail == nil || c.treasury == nil || c.verdict == nil {
		c.clear()
		c.state = StateIdle
		return c.snapshot(), nil
	}
	c.state = StateDetailReady
	c.lastKind, c.message, c.err = "", "", nil
	return c.snapshot(), nil
}

func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.busy() {
		return ErrWorkflowBusy
	}
	c.clear()
	c.state = StateIdle
	return nil
}
