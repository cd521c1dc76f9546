package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Envelope is the backend's response wrapper. Some endpoints answer without it.
type Envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type TransactionDTO struct {
	ID            string             `json:"_id"`
	Type          string             `json:"type"`
	Amount        *decimal.Decimal   `json:"amount"`
	Status        string             `json:"status"`
	User          TransactionUserDTO `json:"userId"`
	ToAddress     string             `json:"toAddress"`
	WalletAddress string             `json:"walletAddress"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// TransactionUserDTO accepts both a bare user id and a populated user object.
type TransactionUserDTO struct {
	ID            string           `json:"_id"`
	WalletBalance *decimal.Decimal `json:"walletBalance"`
}

func (u *TransactionUserDTO) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &u.ID)
	}

	type plain TransactionUserDTO
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*u = TransactionUserDTO(p)
	return nil
}

type WithdrawalDetailDTO struct {
	User          *UserSnapshotDTO  `json:"user"`
	ReferralStats *ReferralStatsDTO `json:"referralStats"`
}

type UserSnapshotDTO struct {
	WalletBalance             *decimal.Decimal      `json:"walletBalance"`
	TotalDeposited            *decimal.Decimal      `json:"totalDeposited"`
	TotalWithdrawn            *decimal.Decimal      `json:"totalWithdrawn"`
	TotalReferralEarnings     *decimal.Decimal      `json:"totalReferralEarnings"`
	PendingReferralCommission *decimal.Decimal      `json:"pendingReferralCommission"`
	MilestoneTracking         *MilestoneTrackingDTO `json:"milestoneTracking"`
}

type MilestoneTrackingDTO struct {
	UpperTrack int `json:"upperTrack"`
	LowerTrack int `json:"lowerTrack"`
}

type ReferralStatsDTO struct {
	TotalReferrals  int `json:"totalReferrals"`
	ActiveReferrals int `json:"activeReferrals"`
}

type TreasuryDTO struct {
	MainWallet      *WalletDTO        `json:"mainWallet"`
	ReusableWallets []WalletDTO       `json:"reusableWallets"`
	FuelWallet      *FuelWalletDTO    `json:"fuelWallet"`
	CurrentWallet   *CurrentWalletDTO `json:"currentWallet"`
}

type WalletDTO struct {
	Address     string           `json:"address"`
	USDTBalance *decimal.Decimal `json:"usdtBalance"`
	TRXBalance  *decimal.Decimal `json:"trxBalance"`
	IsActive    *bool            `json:"isActive"`
}

type FuelWalletDTO struct {
	Address        string           `json:"address"`
	TRXBalance     *decimal.Decimal `json:"trxBalance"`
	MinRequiredTRX *decimal.Decimal `json:"minRequiredTrx"`
}

type CurrentWalletDTO struct {
	Address string           `json:"address"`
	Balance *decimal.Decimal `json:"balance"`
	Type    string           `json:"type"`
}

type ApproveCommandDTO struct {
	AdminNotes     string `json:"adminNotes"`
	SelectedWallet string `json:"selectedWallet"`
}

type RejectCommandDTO struct {
	AdminNotes string `json:"adminNotes"`
}

type CommandResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
