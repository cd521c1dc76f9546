// Package feasibility decides whether a withdrawal can be paid out of the
// treasury as it currently stands.
package feasibility

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/redstone-admin/internal/domain"
)

// Evaluate computes the verdict for paying requested out of the wallet with
// address selected. An empty selected means the backend's current wallet.
// Unknown addresses resolve to the current wallet as well, a stale wallet list
// is not an error.
//
// An inactive wallet never has sufficient funds, whatever its balance.
func Evaluate(requested decimal.Decimal, treasury domain.TreasurySnapshot, selected string) domain.FeasibilityVerdict {
	if selected == "" {
		selected = treasury.CurrentWallet.Address
	}

	wallet, walletType, found := resolve(treasury, selected)
	if !found {
		wallet, walletType = treasury.CurrentWallet.Wallet, treasury.CurrentWallet.Type
	}

	verdict := domain.FeasibilityVerdict{
		HasSufficientFunds:    wallet.IsActive && wallet.USDTBalance.GreaterThanOrEqual(requested),
		HasSufficientFuel:     treasury.FuelWallet.TRXBalance.GreaterThanOrEqual(treasury.FuelWallet.MinRequiredTRX),
		SelectedWalletAddress: wallet.Address,
		SelectedWalletType:    walletType,
		FellBack:              !found,
		Shortfall:             decimal.Zero,
	}
	verdict.CanProcess = verdict.HasSufficientFunds && verdict.HasSufficientFuel

	if requested.GreaterThan(wallet.USDTBalance) {
		verdict.Shortfall = requested.Sub(wallet.USDTBalance)
	}
	return verdict
}

func resolve(treasury domain.TreasurySnapshot, address string) (domain.Wallet, domain.WalletType, bool) {
	if treasury.MainWallet.Address == address {
		return treasury.MainWallet, domain.WalletTypeMain, true
	}
	for _, w := range treasury.ReusableWallets {
		if w.Address == address {
			return w, domain.WalletTypeReusable, true
		}
	}
	return domain.Wallet{}, "", false
}
