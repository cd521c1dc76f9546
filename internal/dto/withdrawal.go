package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalRowDTO struct {
	ID                 string           `json:"id" example:"66f1c0a7e4b0a1b2c3d4e5f6"`
	DisplayID          string           `json:"display_id" example:"#WD4e5f6"`
	UserID             string           `json:"user_id,omitempty"`
	DisplayUserID      string           `json:"display_user_id" example:"#9a8b7"`
	CurrentBalance     *decimal.Decimal `json:"current_balance,omitempty" swaggertype:"string" example:"1250.00"`
	RequestedAmount    decimal.Decimal  `json:"requested_amount" swaggertype:"string" example:"500.00"`
	DestinationAddress string           `json:"destination_address" example:"TQ5Nz6mQy3JvHcC5bK1y2v8m9h4L7p3xWd"`
	Status             string           `json:"status" example:"PENDING"`
	CreatedAt          time.Time        `json:"created_at"`
	Actionable         bool             `json:"actionable"`
}

type UserSnapshotViewDTO struct {
	WalletBalance             decimal.Decimal `json:"wallet_balance" swaggertype:"string"`
	TotalDeposited            decimal.Decimal `json:"total_deposited" swaggertype:"string"`
	TotalWithdrawn            decimal.Decimal `json:"total_withdrawn" swaggertype:"string"`
	LifetimeReferralEarnings  decimal.Decimal `json:"lifetime_referral_earnings" swaggertype:"string"`
	PendingReferralCommission decimal.Decimal `json:"pending_referral_commission" swaggertype:"string"`
	UpperTrack                int             `json:"upper_track"`
	LowerTrack                int             `json:"lower_track"`
	TotalReferrals            int             `json:"total_referrals"`
	ActiveReferrals           int             `json:"active_referrals"`
}

type WalletViewDTO struct {
	Address     string          `json:"address"`
	USDTBalance decimal.Decimal `json:"usdt_balance" swaggertype:"string"`
	TRXBalance  decimal.Decimal `json:"trx_balance" swaggertype:"string"`
	IsActive    bool            `json:"is_active"`
}

type TreasuryViewDTO struct {
	MainWallet       WalletViewDTO   `json:"main_wallet"`
	ReusableWallets  []WalletViewDTO `json:"reusable_wallets"`
	FuelAddress      string          `json:"fuel_address"`
	FuelTRXBalance   decimal.Decimal `json:"fuel_trx_balance" swaggertype:"string"`
	FuelMinRequired  decimal.Decimal `json:"fuel_min_required_trx" swaggertype:"string"`
	CurrentAddress   string          `json:"current_wallet_address"`
	CurrentBalance   decimal.Decimal `json:"current_wallet_balance" swaggertype:"string"`
	CurrentWalletTag string          `json:"current_wallet_type"`
}

type VerdictDTO struct {
	HasSufficientFunds    bool            `json:"has_sufficient_funds"`
	HasSufficientFuel     bool            `json:"has_sufficient_fuel"`
	CanProcess            bool            `json:"can_process"`
	SelectedWalletAddress string          `json:"selected_wallet_address"`
	SelectedWalletType    string          `json:"selected_wallet_type"`
	FellBack              bool            `json:"fell_back"`
	Shortfall             decimal.Decimal `json:"shortfall" swaggertype:"string"`
}

type ApprovalViewDTO struct {
	State      string               `json:"state" example:"DETAIL_READY"`
	Withdrawal *WithdrawalRowDTO    `json:"withdrawal,omitempty"`
	User       *UserSnapshotViewDTO `json:"user,omitempty"`
	Treasury   *TreasuryViewDTO     `json:"treasury,omitempty"`
	Verdict    *VerdictDTO          `json:"verdict,omitempty"`
	Error      string               `json:"error,omitempty"`
}

type ChangeWalletRequestDTO struct {
	Address string `json:"address" example:"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"`
}

type ConfirmApprovalRequestDTO struct {
	AdminNotes string `json:"admin_notes" example:"KYC verified"`
}

type DeclineRequestDTO struct {
	Reason     string `json:"reason" example:"Suspicious Activity"`
	AdminNotes string `json:"admin_notes"`
}

type DecisionResultDTO struct {
	Message     string             `json:"message"`
	Withdrawals []WithdrawalRowDTO `json:"withdrawals"`
}

type DecisionDTO struct {
	ID             string          `json:"id"`
	WithdrawalID   string          `json:"withdrawal_id"`
	AdminID        string          `json:"admin_id"`
	Kind           string          `json:"kind" example:"approve"`
	SelectedWallet string          `json:"selected_wallet,omitempty"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	AdminNotes     string          `json:"admin_notes,omitempty"`
	Outcome        string          `json:"outcome" example:"succeeded"`
	Message        string          `json:"message,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
