package withdrawals

import (
	"github.com/GlebRadaev/redstone-admin/internal/approval"
	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/internal/dto"
)

const (
	displayIDPrefix     = "#WD"
	unknownUser         = "Unknown"
	unspecifiedAddress  = "Not specified"
	displaySuffixLength = 5
)

func lastChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func toRow(w domain.WithdrawalRequest) dto.WithdrawalRowDTO {
	displayUser := unknownUser
	if w.UserID != "" {
		displayUser = "#" + lastChars(w.UserID, displaySuffixLength)
	}
	address := w.DestinationAddress
	if address == "" {
		address = unspecifiedAddress
	}
	return dto.WithdrawalRowDTO{
		ID:                 w.ID,
		DisplayID:          displayIDPrefix + lastChars(w.ID, displaySuffixLength),
		UserID:             w.UserID,
		DisplayUserID:      displayUser,
		CurrentBalance:     w.UserBalance,
		RequestedAmount:    w.RequestedAmount,
		DestinationAddress: address,
		Status:             string(w.Status),
		CreatedAt:          w.CreatedAt,
		Actionable:         w.Actionable(),
	}
}

func toRows(withdrawals []domain.WithdrawalRequest) []dto.WithdrawalRowDTO {
	rows := make([]dto.WithdrawalRowDTO, 0, len(withdrawals))
	for _, w := range withdrawals {
		rows = append(rows, toRow(w))
	}
	return rows
}

func toWalletView(w domain.Wallet) dto.WalletViewDTO {
	return dto.WalletViewDTO{
		Address:     w.Address,
		USDTBalance: w.USDTBalance,
		TRXBalance:  w.TRXBalance,
		IsActive:    w.IsActive,
	}
}

func toView(s approval.Snapshot) dto.ApprovalViewDTO {
	view := dto.ApprovalViewDTO{State: s.State.String()}
	if s.Request != nil {
		row := toRow(*s.Request)
		view.Withdrawal = &row
	}
	if s.Detail != nil {
		u := s.Detail.User
		view.User = &dto.UserSnapshotViewDTO{
			WalletBalance:             u.WalletBalance,
			TotalDeposited:            u.TotalDeposited,
			TotalWithdrawn:            u.TotalWithdrawn,
			LifetimeReferralEarnings:  u.LifetimeReferralEarnings,
			PendingReferralCommission: u.PendingReferralCommission,
			UpperTrack:                u.Milestones.UpperTrack,
			LowerTrack:                u.Milestones.LowerTrack,
			TotalReferrals:            s.Detail.ReferralStats.TotalReferrals,
			ActiveReferrals:           s.Detail.ReferralStats.ActiveReferrals,
		}
	}
	if t := s.Treasury; t != nil {
		reusable := make([]dto.WalletViewDTO, 0, len(t.ReusableWallets))
		for _, w := range t.ReusableWallets {
			reusable = append(reusable, toWalletView(w))
		}
		view.Treasury = &dto.TreasuryViewDTO{
			MainWallet:       toWalletView(t.MainWallet),
			ReusableWallets:  reusable,
			FuelAddress:      t.FuelWallet.Address,
			FuelTRXBalance:   t.FuelWallet.TRXBalance,
			FuelMinRequired:  t.FuelWallet.MinRequiredTRX,
			CurrentAddress:   t.CurrentWallet.Address,
			CurrentBalance:   t.CurrentWallet.Balance,
			CurrentWalletTag: string(t.CurrentWallet.Type),
		}
	}
	if v := s.Verdict; v != nil {
		view.Verdict = &dto.VerdictDTO{
			HasSufficientFunds:    v.HasSufficientFunds,
			HasSufficientFuel:     v.HasSufficientFuel,
			CanProcess:            v.CanProcess,
			SelectedWalletAddress: v.SelectedWalletAddress,
			SelectedWalletType:    string(v.SelectedWalletType),
			FellBack:              v.FellBack,
			Shortfall:             v.Shortfall,
		}
	}
	if s.State == approval.StateFailure {
		view.Error = s.Message
	}
	return view
}

func toDecisionResult(r *approval.Result) dto.DecisionResultDTO {
	result := dto.DecisionResultDTO{Message: r.Message}
	if r.Withdrawals != nil {
		result.Withdrawals = toRows(r.Withdrawals)
	}
	return result
}

func toDecision(d domain.Decision) dto.DecisionDTO {
	return dto.DecisionDTO{
		ID:             d.ID,
		WithdrawalID:   d.WithdrawalID,
		AdminID:        d.AdminID,
		Kind:           string(d.Kind),
		SelectedWallet: d.SelectedWallet,
		Amount:         d.Amount,
		AdminNotes:     d.AdminNotes,
		Outcome:        string(d.Outcome),
		Message:        d.Message,
		CreatedAt:      d.CreatedAt,
	}
}
