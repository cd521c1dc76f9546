package domain

import (
	"errors"
	"fmt"
)

var ErrWithdrawalNotFound = errors.New("withdrawal not found")

// DetailFetchError means the user/referral detail of a withdrawal could not be
// retrieved or decoded. Callers must not render any part of the detail.
type DetailFetchError struct {
	WithdrawalID string
	Err          error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("fetch withdrawal %s detail: %v", e.WithdrawalID, e.Err)
}

func (e *DetailFetchError) Unwrap() error { return e.Err }

// TreasuryFetchError means the wallet state is unknown. Approval stays blocked.
type TreasuryFetchError struct {
	Err error
}

func (e *TreasuryFetchError) Error() string {
	return fmt.Sprintf("fetch treasury state: %v", e.Err)
}

func (e *TreasuryFetchError) Unwrap() error { return e.Err }

type SubmissionError struct {
	Kind         DecisionKind
	WithdrawalID string
	// Message is the backend's explanation, shown to the admin as is.
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s withdrawal %s: %s", e.Kind, e.WithdrawalID, e.Message)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
