package approval

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/redstone-admin/internal/domain"
)

type State int

const (
	StateIdle State = iota
	StateLoadingDetail
	StateDetailReady
	StateSubmitting
	StateSuccess
	StateFailure
)

var stateNames = map[State]string{
	StateIdle:          "IDLE",
	StateLoadingDetail: "LOADING_DETAIL",
	StateDetailReady:   "DETAIL_READY",
	StateSubmitting:    "SUBMITTING",
	StateSuccess:       "SUCCESS",
	StateFailure:       "FAILURE",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// busy reports whether a network round trip owned by the workflow is in flight.
func (s State) busy() bool {
	return s == StateLoadingDetail || s == StateSubmitting
}

// Snapshot is a consistent copy of the workflow. Detail, Treasury and Verdict
// are set together or not at all.
type Snapshot struct {
	State    State
	Request  *domain.WithdrawalRequest
	Detail   *domain.WithdrawalDetail
	Treasury *domain.TreasurySnapshot
	Verdict  *domain.FeasibilityVerdict
	LastKind domain.DecisionKind
	Message  string
	Err      error
}

// Result is what a submitted decision produced.
type Result struct {
	Kind         domain.DecisionKind
	WithdrawalID string
	Amount       decimal.Decimal
	Wallet       string
	AdminNotes   string
	Message      string
	// Withdrawals is the refreshed list, nil when the refresh failed.
	Withdrawals []domain.WithdrawalRequest
}
