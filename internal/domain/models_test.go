package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWithdrawalStatus(t *testing.T) {
	tests := []struct {
		in       string
		expected WithdrawalStatus
		ok       bool
	}{
		{"PENDING", StatusPending, true},
		{" pending ", StatusPending, true},
		{"approved", StatusApproved, true},
		{"COMPLETED", StatusApproved, true},
		{"rejected", StatusRejected, true},
		{"DECLINED", StatusRejected, true},
		{"failed", StatusRejected, true},
		{"", "", false},
		{"PROCESSING", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			status, ok := ParseWithdrawalStatus(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestWithdrawalRequest_Actionable(t *testing.T) {
	assert.True(t, WithdrawalRequest{Status: StatusPending}.Actionable())
	assert.False(t, WithdrawalRequest{Status: StatusApproved}.Actionable())
	assert.False(t, WithdrawalRequest{Status: StatusRejected}.Actionable())
}

func TestIsDeclineReason(t *testing.T) {
	for _, r := range DeclineReasons {
		assert.True(t, IsDeclineReason(r), r)
	}
	assert.False(t, IsDeclineReason(""))
	assert.False(t, IsDeclineReason("other"))
	assert.False(t, IsDeclineReason("Suspicious activity"))
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")

	var detailErr error = &DetailFetchError{WithdrawalID: "wd1", Err: cause}
	assert.ErrorIs(t, detailErr, cause)
	assert.Contains(t, detailErr.Error(), "wd1")

	var treasuryErr error = &TreasuryFetchError{Err: cause}
	assert.ErrorIs(t, treasuryErr, cause)

	var submissionErr error = &SubmissionError{Kind: DecisionApprove, WithdrawalID: "wd1", Message: "Wallet locked", Err: cause}
	assert.ErrorIs(t, submissionErr, cause)
	assert.Equal(t, "approve withdrawal wd1: Wallet locked", submissionErr.Error())

	var target *SubmissionError
	wrapped := errors.Join(errors.New("context"), submissionErr)
	if assert.ErrorAs(t, wrapped, &target) {
		assert.Equal(t, "Wallet locked", target.Message)
	}

	assert.Equal(t, "invalid reason: unknown", NewValidationError("reason", "unknown").Error())
}
