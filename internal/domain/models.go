package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	StatusPending  WithdrawalStatus = "PENDING"
	StatusApproved WithdrawalStatus = "APPROVED"
	StatusRejected WithdrawalStatus = "REJECTED"
)

// ParseWithdrawalStatus maps backend status spellings onto the three statuses
// the console knows about.
func ParseWithdrawalStatus(s string) (WithdrawalStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return StatusPending, true
	case "APPROVED", "COMPLETED":
		return StatusApproved, true
	case "REJECTED", "DECLINED", "FAILED":
		return StatusRejected, true
	}
	return "", false
}

type WithdrawalRequest struct {
	ID                 string
	UserID             string
	UserBalance        *decimal.Decimal
	RequestedAmount    decimal.Decimal
	DestinationAddress string
	Status             WithdrawalStatus
	CreatedAt          time.Time
}

// Actionable reports whether approve/decline may be offered for the request.
func (w WithdrawalRequest) Actionable() bool {
	return w.Status == StatusPending
}

type MilestoneTracking struct {
	UpperTrack int
	LowerTrack int
}

type UserFinancialSnapshot struct {
	WalletBalance             decimal.Decimal
	TotalDeposited            decimal.Decimal
	TotalWithdrawn            decimal.Decimal
	LifetimeReferralEarnings  decimal.Decimal
	PendingReferralCommission decimal.Decimal
	Milestones                MilestoneTracking
}

type ReferralStats struct {
	TotalReferrals  int
	ActiveReferrals int
}

type WithdrawalDetail struct {
	User          UserFinancialSnapshot
	ReferralStats ReferralStats
}

type WalletType string

const (
	WalletTypeMain     WalletType = "main"
	WalletTypeReusable WalletType = "reusable"
)

type Wallet struct {
	Address     string
	USDTBalance decimal.Decimal
	TRXBalance  decimal.Decimal
	IsActive    bool
}

// DefaultMinRequiredTRX is the fuel floor used when the backend omits it.
var DefaultMinRequiredTRX = decimal.NewFromInt(50)

type FuelWallet struct {
	Address        string
	TRXBalance     decimal.Decimal
	MinRequiredTRX decimal.Decimal
}

// CurrentWallet is the backend's default payer. It is a view over the main
// wallet or one of the reusable wallets, never a wallet of its own.
type CurrentWallet struct {
	Wallet
	Balance decimal.Decimal
	Type    WalletType
}

type TreasurySnapshot struct {
	MainWallet      Wallet
	ReusableWallets []Wallet
	FuelWallet      FuelWallet
	CurrentWallet   CurrentWallet
}

type FeasibilityVerdict struct {
	HasSufficientFunds    bool
	HasSufficientFuel     bool
	CanProcess            bool
	SelectedWalletAddress string

	// informational, never part of the decision
	SelectedWalletType WalletType
	FellBack           bool
	Shortfall          decimal.Decimal
}

type DecisionKind string

const (
	DecisionApprove DecisionKind = "approve"
	DecisionReject  DecisionKind = "reject"
)

type DecisionOutcome string

const (
	OutcomeSucceeded DecisionOutcome = "succeeded"
	OutcomeFailed    DecisionOutcome = "failed"
)

// Decision is a journal record of one submitted approve/reject command.
type Decision struct {
	ID             string          `db:"id"`
	WithdrawalID   string          `db:"withdrawal_id"`
	AdminID        string          `db:"admin_id"`
	Kind           DecisionKind    `db:"kind"`
	SelectedWallet string          `db:"selected_wallet"`
	Amount         decimal.Decimal `db:"amount"`
	AdminNotes     string          `db:"admin_notes"`
	Outcome        DecisionOutcome `db:"outcome"`
	Message        string          `db:"message"`
	CreatedAt      time.Time       `db:"created_at"`
}

var DeclineReasons = []string{
	"Security Concern",
	"Insufficient Funds",
	"Invalid Address",
	"Suspicious Activity",
	"Other",
}

func IsDeclineReason(reason string) bool {
	for _, r := range DeclineReasons {
		if r == reason {
			return true
		}
	}
	return false
}
