package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/internal/dto"
)

const withdrawalType = "WITHDRAWAL"

var (
	ErrMissingField  = errors.New("missing required field")
	ErrNegativeValue = errors.New("negative amount")
	ErrDanglingView  = errors.New("current wallet is not part of the treasury")
	ErrDuplicateAddr = errors.New("duplicate wallet address")
)

// decodeData unmarshals the payload of a backend response into v, unwrapping
// the {success, message, data} envelope when present.
func decodeData(body []byte, v any) error {
	var env dto.Envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		body = env.Data
	}
	return json.Unmarshal(body, v)
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func requireAmount(field string, v *decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, missing(field)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s=%s", ErrNegativeValue, field, v)
	}
	return *v, nil
}

func optionalAmount(field string, v *decimal.Decimal, def decimal.Decimal) (decimal.Decimal, error) {
	if v == nil {
		return def, nil
	}
	return requireAmount(field, v)
}

func toWithdrawalRequests(txs []dto.TransactionDTO) []domain.WithdrawalRequest {
	withdrawals := make([]domain.WithdrawalRequest, 0, len(txs))
	for _, tx := range txs {
		if tx.Type != withdrawalType {
			continue
		}

		status, ok := domain.ParseWithdrawalStatus(tx.Status)
		if !ok {
			zap.L().Warn("skipping withdrawal with unknown status", zap.String("id", tx.ID), zap.String("status", tx.Status))
			continue
		}
		if tx.ID == "" || tx.Amount == nil || !tx.Amount.IsPositive() {
			zap.L().Warn("skipping malformed withdrawal", zap.String("id", tx.ID))
			continue
		}

		address := tx.ToAddress
		if address == "" {
			address = tx.WalletAddress
		}

		withdrawals = append(withdrawals, domain.WithdrawalRequest{
			ID:                 tx.ID,
			UserID:             tx.User.ID,
			UserBalance:        tx.User.WalletBalance,
			RequestedAmount:    *tx.Amount,
			DestinationAddress: address,
			Status:             status,
			CreatedAt:          tx.CreatedAt,
		})
	}
	return withdrawals
}

func toDetail(d dto.WithdrawalDetailDTO) (*domain.WithdrawalDetail, error) {
	if d.User == nil {
		return nil, missing("user")
	}

	var (
		user domain.UserFinancialSnapshot
		err  error
	)
	if user.WalletBalance, err = requireAmount("user.walletBalance", d.User.WalletBalance); err != nil {
		return nil, err
	}
	if user.TotalDeposited, err = requireAmount("user.totalDeposited", d.User.TotalDeposited); err != nil {
		return nil, err
	}
	if user.TotalWithdrawn, err = requireAmount("user.totalWithdrawn", d.User.TotalWithdrawn); err != nil {
		return nil, err
	}
	if user.LifetimeReferralEarnings, err = optionalAmount("user.totalReferralEarnings", d.User.TotalReferralEarnings, decimal.Zero); err != nil {
		return nil, err
	}
	if user.PendingReferralCommission, err = optionalAmount("user.pendingReferralCommission", d.User.PendingReferralCommission, decimal.Zero); err != nil {
		return nil, err
	}
	if m := d.User.MilestoneTracking; m != nil {
		user.Milestones = domain.MilestoneTracking{UpperTrack: m.UpperTrack, LowerTrack: m.LowerTrack}
	}

	detail := &domain.WithdrawalDetail{User: user}
	if s := d.ReferralStats; s != nil {
		detail.ReferralStats = domain.ReferralStats{TotalReferrals: s.TotalReferrals, ActiveReferrals: s.ActiveReferrals}
	}
	return detail, nil
}

func toWallet(field string, w *dto.WalletDTO) (domain.Wallet, error) {
	if w == nil {
		return domain.Wallet{}, missing(field)
	}
	if w.Address == "" {
		return domain.Wallet{}, missing(field + ".address")
	}
	if w.IsActive == nil {
		return domain.Wallet{}, missing(field + ".isActive")
	}
	usdt, err := requireAmount(field+".usdtBalance", w.USDTBalance)
	if err != nil {
		return domain.Wallet{}, err
	}
	trx, err := requireAmount(field+".trxBalance", w.TRXBalance)
	if err != nil {
		return domain.Wallet{}, err
	}
	return domain.Wallet{Address: w.Address, USDTBalance: usdt, TRXBalance: trx, IsActive: *w.IsActive}, nil
}

func toTreasury(t dto.TreasuryDTO) (*domain.TreasurySnapshot, error) {
	main, err := toWallet("mainWallet", t.MainWallet)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{main.Address: {}}
	reusable := make([]domain.Wallet, 0, len(t.ReusableWallets))
	for i := range t.ReusableWallets {
		w, err := toWallet(fmt.Sprintf("reusableWallets[%d]", i), &t.ReusableWallets[i])
		if err != nil {
			return nil, err
		}
		if _, dup := seen[w.Address]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAddr, w.Address)
		}
		seen[w.Address] = struct{}{}
		reusable = append(reusable, w)
	}

	if t.FuelWallet == nil {
		return nil, missing("fuelWallet")
	}
	fuelTRX, err := requireAmount("fuelWallet.trxBalance", t.FuelWallet.TRXBalance)
	if err != nil {
		return nil, err
	}
	minTRX, err := optionalAmount("fuelWallet.minRequiredTrx", t.FuelWallet.MinRequiredTRX, domain.DefaultMinRequiredTRX)
	if err != nil {
		return nil, err
	}

	if t.CurrentWallet == nil || t.CurrentWallet.Address == "" {
		return nil, missing("currentWallet.address")
	}
	current := domain.CurrentWallet{}
	switch {
	case t.CurrentWallet.Address == main.Address:
		current.Wallet, current.Type = main, domain.WalletTypeMain
	default:
		found := false
		for _, w := range reusable {
			if w.Address == t.CurrentWallet.Address {
				current.Wallet, current.Type, found = w, domain.WalletTypeReusable, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrDanglingView, t.CurrentWallet.Address)
		}
	}

	current.Balance = current.USDTBalance
	if b := t.CurrentWallet.Balance; b != nil && !b.Equal(current.USDTBalance) {
		zap.L().Warn("current wallet balance differs from its usdt balance, using usdt balance",
			zap.String("address", current.Address),
			zap.String("balance", b.String()),
			zap.String("usdtBalance", current.USDTBalance.String()))
	}
	if t.CurrentWallet.Type != "" && !strings.EqualFold(t.CurrentWallet.Type, string(current.Type)) {
		zap.L().Debug("backend wallet type tag differs", zap.String("tag", t.CurrentWallet.Type), zap.String("resolved", string(current.Type)))
	}

	return &domain.TreasurySnapshot{
		MainWallet:      main,
		ReusableWallets: reusable,
		FuelWallet: domain.FuelWallet{
			Address:        t.FuelWallet.Address,
			TRXBalance:     fuelTRX,
			MinRequiredTRX: minTRX,
		},
		CurrentWallet: current,
	}, nil
}
