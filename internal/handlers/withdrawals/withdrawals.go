package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/approval"
	"github.com/GlebRadaev/redstone-admin/internal/backend"
	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/internal/dto"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/utils"
)

//go:generate mockgen -source=withdrawals.go -destination=mock_withdrawals.go -package=withdrawals
type Service interface {
	ListWithdrawals(ctx context.Context, ac auth.AuthContext, status string) ([]domain.WithdrawalRequest, error)
	OpenApproval(ctx context.Context, ac auth.AuthContext, withdrawalID string) (approval.Snapshot, error)
	Approval(ac auth.AuthContext) approval.Snapshot
	ChangeWallet(ac auth.AuthContext, address string) (approval.Snapshot, error)
	ConfirmApproval(ctx context.Context, ac auth.AuthContext, adminNotes string) (*approval.Result, error)
	ResumeApproval(ac auth.AuthContext) (approval.Snapshot, error)
	CloseApproval(ac auth.AuthContext) error
	Decline(ctx context.Context, ac auth.AuthContext, withdrawalID, reason, adminNotes string) (*approval.Result, error)
	ListDecisions(ctx context.Context, limit int) ([]domain.Decision, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// respondWithServiceError maps workflow and backend failures onto HTTP codes.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		detailErr     *domain.DetailFetchError
		treasuryErr   *domain.TreasuryFetchError
		submissionErr *domain.SubmissionError
		statusErr     *backend.StatusError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, validationErr.Error())
	case errors.Is(err, domain.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Withdrawal not found")
	case errors.Is(err, approval.ErrWorkflowBusy),
		errors.Is(err, approval.ErrInvalidState),
		errors.Is(err, approval.ErrNotFeasible):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &detailErr):
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to load withdrawal details")
	case errors.As(err, &treasuryErr):
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to load wallet information")
	case errors.As(err, &submissionErr):
		utils.RespondWithError(w, http.StatusBadGateway, submissionErr.Message)
	case errors.As(err, &statusErr):
		utils.RespondWithError(w, http.StatusBadGateway, statusErr.Message)
	default:
		zap.L().Error("unexpected service error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func authContext(w http.ResponseWriter, r *http.Request) (auth.AuthContext, bool) {
	ac, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return ac, ok
}

// GetWithdrawals godoc
//
//	@Summary		List withdrawals
//	@Description	Withdrawal requests derived from the backend transaction ledger, newest first as the backend returns them
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"PENDING, APPROVED or REJECTED"
//	@Success		200		{array}		dto.WithdrawalRowDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		422		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	withdrawals, err := h.withdrawalService.ListWithdrawals(r.Context(), ac, r.URL.Query().Get("status"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRows(withdrawals))
}

// OpenApproval godoc
//
//	@Summary		Open approval workflow
//	@Description	Load user detail and treasury state for a pending withdrawal and evaluate it against the current wallet
//	@Tags			Approval
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Withdrawal id"
//	@Success		200	{object}	dto.ApprovalViewDTO
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Another submission is in flight"
//	@Failure		422	{object}	utils.Response	"Withdrawal is not pending"
//	@Failure		502	{object}	utils.Response	"Backend fetch failed"
//	@Router			/api/admin/withdrawals/{id}/approval [post]
func (h *WithdrawalHandler) OpenApproval(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	snap, err := h.withdrawalService.OpenApproval(r.Context(), ac, chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toView(snap))
}

// GetApproval godoc
//
//	@Summary		Current approval workflow
//	@Tags			Approval
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ApprovalViewDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/admin/approval [get]
func (h *WithdrawalHandler) GetApproval(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toView(h.withdrawalService.Approval(ac)))
}

// ChangeWallet godoc
//
//	@Summary		Select payer wallet
//	@Description	Re-evaluate the open withdrawal against another treasury wallet. Unknown addresses fall back to the current wallet.
//	@Tags			Approval
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChangeWalletRequestDTO	true	"Wallet address"
//	@Success		200		{object}	dto.ApprovalViewDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"No withdrawal ready for review"
//	@Router			/api/admin/approval/wallet [put]
func (h *WithdrawalHandler) ChangeWallet(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	var req dto.ChangeWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.withdrawalService.ChangeWallet(ac, req.Address)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toView(snap))
}

// ConfirmApproval godoc
//
//	@Summary		Approve withdrawal
//	@Description	Send one approve command for the open withdrawal from the selected wallet. Never retried automatically.
//	@Tags			Approval
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmApprovalRequestDTO	false	"Admin notes"
//	@Success		200		{object}	dto.DecisionResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Not ready or cannot be processed"
//	@Failure		502		{object}	utils.Response	"Backend refused the command"
//	@Router			/api/admin/approval/confirm [post]
func (h *WithdrawalHandler) ConfirmApproval(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	// notes are optional, an empty body is a confirm without notes
	var req dto.ConfirmApprovalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.withdrawalService.ConfirmApproval(r.Context(), ac, req.AdminNotes)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDecisionResult(result))
}

// ResumeApproval godoc
//
//	@Summary		Leave a failed submission
//	@Description	Return to the loaded detail so the admin can retry without fetching again
//	@Tags			Approval
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ApprovalViewDTO
//	@Failure		409	{object}	utils.Response	"Nothing to resume"
//	@Router			/api/admin/approval/resume [post]
func (h *WithdrawalHandler) ResumeApproval(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	snap, err := h.withdrawalService.ResumeApproval(ac)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toView(snap))
}

// CloseApproval godoc
//
//	@Summary		Close approval workflow
//	@Tags			Approval
//	@Security		BearerAuth
//	@Success		204
//	@Failure		409	{object}	utils.Response	"A backend call is in flight"
//	@Router			/api/admin/approval [delete]
func (h *WithdrawalHandler) CloseApproval(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	if err := h.withdrawalService.CloseApproval(ac); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Decline godoc
//
//	@Summary		Decline withdrawal
//	@Description	Send one reject command. Not gated by wallet feasibility.
//	@Tags			Approval
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Withdrawal id"
//	@Param			request	body		dto.DeclineRequestDTO	true	"Reason and notes"
//	@Success		200		{object}	dto.DecisionResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Another submission is in flight"
//	@Failure		422		{object}	utils.Response	"Unknown reason or not pending"
//	@Failure		502		{object}	utils.Response	"Backend refused the command"
//	@Router			/api/admin/withdrawals/{id}/decline [post]
func (h *WithdrawalHandler) Decline(w http.ResponseWriter, r *http.Request) {
	ac, ok := authContext(w, r)
	if !ok {
		return
	}

	var req dto.DeclineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.withdrawalService.Decline(r.Context(), ac, chi.URLParam(r, "id"), req.Reason, req.AdminNotes)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDecisionResult(result))
}

// GetDecisions godoc
//
//	@Summary		Decision journal
//	@Description	Approve/reject commands sent from this console, newest first
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of records"
//	@Success		200		{array}		dto.DecisionDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/decisions [get]
func (h *WithdrawalHandler) GetDecisions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	decisions, err := h.withdrawalService.ListDecisions(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch decisions")
		return
	}

	response := make([]dto.DecisionDTO, 0, len(decisions))
	for _, d := range decisions {
		response = append(response, toDecision(d))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
