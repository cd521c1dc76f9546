// Package backend talks to the platform's admin REST API. The backend owns
// balances, wallet custody and payouts; this client only reads state and
// forwards decisions.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/config"
	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/internal/dto"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/clients"
)

const (
	transactionsPath = "/admin/transactions"
	withdrawalsPath  = "/admin/payment/withdrawals/"
	walletInfoPath   = "/admin/payment/wallet-info"

	IdempotencyHeader = "X-Idempotency-Key"
)

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.BackendAddress,
		client: client,
	}
}

func (c *Client) headers(ac auth.AuthContext) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	if ac.Token != "" {
		h.Set("Authorization", ac.Bearer())
	}
	return h
}

func withdrawalURL(base, id, action string) string {
	u := base + withdrawalsPath + url.PathEscape(id)
	if action != "" {
		u += "/" + action
	}
	return u
}

// errorMessage picks the backend's own explanation, falling back to the status.
func errorMessage(status int, body []byte) string {
	var env dto.Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fmt.Sprintf("backend returned status %d", status)
}

func (c *Client) get(ctx context.Context, ac auth.AuthContext, u string, v any) error {
	statusCode, respBody, _, err := c.client.Get(ctx, u, c.headers(ac))
	if err != nil {
		return err
	}
	if statusCode < 200 || statusCode >= 300 {
		return &StatusError{Code: statusCode, Message: errorMessage(statusCode, respBody)}
	}
	if err := decodeData(respBody, v); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	return nil
}

// ListWithdrawals returns every withdrawal the backend knows about, derived
// from the transaction ledger.
func (c *Client) ListWithdrawals(ctx context.Context, ac auth.AuthContext) ([]domain.WithdrawalRequest, error) {
	var txs []dto.TransactionDTO
	if err := c.get(ctx, ac, c.url+transactionsPath, &txs); err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return toWithdrawalRequests(txs), nil
}

func (c *Client) FetchDetail(ctx context.Context, ac auth.AuthContext, withdrawalID string) (*domain.WithdrawalDetail, error) {
	if withdrawalID == "" {
		return nil, domain.NewValidationError("withdrawal id", "must not be empty")
	}

	var body dto.WithdrawalDetailDTO
	if err := c.get(ctx, ac, withdrawalURL(c.url, withdrawalID, ""), &body); err != nil {
		zap.L().Error("failed to fetch withdrawal detail", zap.String("withdrawalID", withdrawalID), zap.Error(err))
		return nil, &domain.DetailFetchError{WithdrawalID: withdrawalID, Err: err}
	}
	detail, err := toDetail(body)
	if err != nil {
		zap.L().Error("malformed withdrawal detail", zap.String("withdrawalID", withdrawalID), zap.Error(err))
		return nil, &domain.DetailFetchError{WithdrawalID: withdrawalID, Err: err}
	}
	return detail, nil
}

func (c *Client) FetchTreasury(ctx context.Context, ac auth.AuthContext) (*domain.TreasurySnapshot, error) {
	var body dto.TreasuryDTO
	if err := c.get(ctx, ac, c.url+walletInfoPath, &body); err != nil {
		zap.L().Error("failed to fetch treasury state", zap.Error(err))
		return nil, &domain.TreasuryFetchError{Err: err}
	}
	treasury, err := toTreasury(body)
	if err != nil {
		zap.L().Error("malformed treasury state", zap.Error(err))
		return nil, &domain.TreasuryFetchError{Err: err}
	}
	return treasury, nil
}

func (c *Client) Approve(ctx context.Context, ac auth.AuthContext, withdrawalID, adminNotes, selectedWallet string) (string, error) {
	return c.submit(ctx, ac, domain.DecisionApprove, withdrawalID, "approve", dto.ApproveCommandDTO{
		AdminNotes:     adminNotes,
		SelectedWallet: selectedWallet,
	})
}

func (c *Client) Reject(ctx context.Context, ac auth.AuthContext, withdrawalID, adminNotes string) (string, error) {
	return c.submit(ctx, ac, domain.DecisionReject, withdrawalID, "reject", dto.RejectCommandDTO{
		AdminNotes: adminNotes,
	})
}

// submit issues exactly one command. It never retries: a resubmission is the
// admin's call and deduplication is up to the backend.
func (c *Client) submit(ctx context.Context, ac auth.AuthContext, kind domain.DecisionKind, withdrawalID, action string, command any) (string, error) {
	fail := func(message string, err error) (string, error) {
		zap.L().Error("withdrawal command failed",
			zap.String("kind", string(kind)),
			zap.String("withdrawalID", withdrawalID),
			zap.String("message", message),
			zap.Error(err))
		return "", &domain.SubmissionError{Kind: kind, WithdrawalID: withdrawalID, Message: message, Err: err}
	}

	if withdrawalID == "" {
		return "", domain.NewValidationError("withdrawal id", "must not be empty")
	}

	payload, err := json.Marshal(command)
	if err != nil {
		return fail("could not encode command", err)
	}

	headers := c.headers(ac)
	headers.Set(IdempotencyHeader, uuid.NewString())

	statusCode, respBody, _, err := c.client.Post(ctx, withdrawalURL(c.url, withdrawalID, action), headers, payload)
	if err != nil {
		return fail(err.Error(), err)
	}
	if statusCode < 200 || statusCode >= 300 {
		statusErr := &StatusError{Code: statusCode, Message: errorMessage(statusCode, respBody)}
		return fail(statusErr.Message, statusErr)
	}

	var result dto.CommandResultDTO
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return fail("could not parse backend answer", err)
		}
		var env dto.Envelope
		if err := json.Unmarshal(respBody, &env); err == nil && env.Success != nil && !*env.Success {
			message := result.Message
			if message == "" {
				message = "backend refused the command"
			}
			return fail(message, errors.New(message))
		}
	}

	zap.L().Info("withdrawal command accepted",
		zap.String("kind", string(kind)),
		zap.String("withdrawalID", withdrawalID),
		zap.String("message", result.Message))
	return result.Message, nil
}
