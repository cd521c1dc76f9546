package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/redstone-admin/internal/config"
	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/clients"
)

var testAuth = auth.AuthContext{AdminID: "admin", Token: "tkn"}

const treasuryBody = `{
	"success": true,
	"data": {
		"mainWallet": {"address": "W1", "usdtBalance": 1000, "trxBalance": "80.5", "isActive": true},
		"reusableWallets": [
			{"address": "R1", "usdtBalance": "250.10", "trxBalance": 10, "isActive": true},
			{"address": "R2", "usdtBalance": 5000, "trxBalance": 0, "isActive": false}
		],
		"fuelWallet": {"address": "F1", "trxBalance": 100, "minRequiredTrx": 50},
		"currentWallet": {"address": "W1", "balance": 1000, "type": "main"}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.Config{BackendAddress: srv.URL}, clients.NewHTTPClient(time.Second))
}

func TestClient_ListWithdrawals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/transactions", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"_id":"66f1c0a7e4b0a1b2c3d4e5f6","type":"WITHDRAWAL","amount":500,"status":"PENDING",
			 "userId":{"_id":"u-0000019a8b7","walletBalance":1250.5},"toAddress":"TADDR","createdAt":"2026-10-01T10:00:00Z"},
			{"_id":"tx2","type":"DEPOSIT","amount":100,"status":"COMPLETED","userId":"u1","createdAt":"2026-10-01T10:00:00Z"},
			{"_id":"tx3","type":"WITHDRAWAL","amount":"20.25","status":"COMPLETED","userId":"u2","walletAddress":"WADDR","createdAt":"2026-10-02T10:00:00Z"},
			{"_id":"tx4","type":"WITHDRAWAL","amount":0,"status":"PENDING","userId":"u3","createdAt":"2026-10-02T10:00:00Z"},
			{"_id":"tx5","type":"WITHDRAWAL","amount":10,"status":"ON_HOLD","userId":"u3","createdAt":"2026-10-02T10:00:00Z"}
		]}`))
	})

	withdrawals, err := client.ListWithdrawals(context.Background(), testAuth)

	require.NoError(t, err)
	require.Len(t, withdrawals, 2)

	first := withdrawals[0]
	assert.Equal(t, "66f1c0a7e4b0a1b2c3d4e5f6", first.ID)
	assert.Equal(t, "u-0000019a8b7", first.UserID)
	require.NotNil(t, first.UserBalance)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(*first.UserBalance))
	assert.True(t, decimal.NewFromInt(500).Equal(first.RequestedAmount))
	assert.Equal(t, "TADDR", first.DestinationAddress)
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.True(t, first.Actionable())

	second := withdrawals[1]
	assert.Equal(t, "u2", second.UserID)
	assert.Nil(t, second.UserBalance)
	assert.Equal(t, "WADDR", second.DestinationAddress)
	assert.Equal(t, domain.StatusApproved, second.Status)
	assert.False(t, second.Actionable())
}

func TestClient_ListWithdrawals_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "backend message", status: http.StatusUnauthorized, body: `{"message":"token expired"}`, message: "token expired"},
		{name: "no message", status: http.StatusBadGateway, body: `oops`, message: "backend returned status 502"},
		{name: "broken json", status: http.StatusOK, body: `{"data":[{`, message: "failed to parse response body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			withdrawals, err := client.ListWithdrawals(context.Background(), testAuth)

			assert.Nil(t, withdrawals)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestClient_FetchDetail(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		status      int
		body        string
		expectErr   bool
		validation  bool
		checkDetail func(t *testing.T, d *domain.WithdrawalDetail)
	}{
		{
			name:   "full detail in envelope",
			id:     "wd 1",
			status: http.StatusOK,
			body: `{"success":true,"data":{"user":{"walletBalance":120,"totalDeposited":"1000.00","totalWithdrawn":300,
				"totalReferralEarnings":45.5,"pendingReferralCommission":4,"milestoneTracking":{"upperTrack":7,"lowerTrack":3}},
				"referralStats":{"totalReferrals":10,"activeReferrals":6}}}`,
			checkDetail: func(t *testing.T, d *domain.WithdrawalDetail) {
				assert.True(t, decimal.NewFromInt(120).Equal(d.User.WalletBalance))
				assert.True(t, decimal.NewFromInt(1000).Equal(d.User.TotalDeposited))
				assert.True(t, decimal.RequireFromString("45.5").Equal(d.User.LifetimeReferralEarnings))
				assert.Equal(t, domain.MilestoneTracking{UpperTrack: 7, LowerTrack: 3}, d.User.Milestones)
				assert.Equal(t, domain.ReferralStats{TotalReferrals: 10, ActiveReferrals: 6}, d.ReferralStats)
			},
		},
		{
			name:   "bare body with optional parts missing",
			id:     "wd1",
			status: http.StatusOK,
			body:   `{"user":{"walletBalance":0,"totalDeposited":0,"totalWithdrawn":0}}`,
			checkDetail: func(t *testing.T, d *domain.WithdrawalDetail) {
				assert.True(t, d.User.PendingReferralCommission.IsZero())
				assert.Equal(t, domain.ReferralStats{}, d.ReferralStats)
			},
		},
		{
			name:      "required balance missing",
			id:        "wd1",
			status:    http.StatusOK,
			body:      `{"user":{"walletBalance":10,"totalDeposited":0}}`,
			expectErr: true,
		},
		{
			name:      "negative balance",
			id:        "wd1",
			status:    http.StatusOK,
			body:      `{"user":{"walletBalance":-1,"totalDeposited":0,"totalWithdrawn":0}}`,
			expectErr: true,
		},
		{
			name:      "not found",
			id:        "wd1",
			status:    http.StatusNotFound,
			body:      `{"message":"Withdrawal not found"}`,
			expectErr: true,
		},
		{
			name:       "empty id",
			id:         "",
			expectErr:  true,
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "/admin/payment/withdrawals/"+tt.id, r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			detail, err := client.FetchDetail(context.Background(), testAuth, tt.id)

			if !tt.expectErr {
				require.NoError(t, err)
				tt.checkDetail(t, detail)
				return
			}
			assert.Nil(t, detail)
			if tt.validation {
				var verr *domain.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.False(t, called)
				return
			}
			var ferr *domain.DetailFetchError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.id, ferr.WithdrawalID)
		})
	}
}

func TestClient_FetchTreasury(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/payment/wallet-info", r.URL.Path)
		_, _ = w.Write([]byte(treasuryBody))
	})

	treasury, err := client.FetchTreasury(context.Background(), testAuth)

	require.NoError(t, err)
	assert.Equal(t, "W1", treasury.MainWallet.Address)
	assert.True(t, decimal.RequireFromString("80.5").Equal(treasury.MainWallet.TRXBalance))
	require.Len(t, treasury.ReusableWallets, 2)
	assert.False(t, treasury.ReusableWallets[1].IsActive)
	assert.Equal(t, "W1", treasury.CurrentWallet.Address)
	assert.Equal(t, domain.WalletTypeMain, treasury.CurrentWallet.Type)
	assert.True(t, treasury.CurrentWallet.IsActive)
	assert.True(t, decimal.NewFromInt(50).Equal(treasury.FuelWallet.MinRequiredTRX))
}

func TestClient_FetchTreasury_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"tron node down"}`},
		{name: "no main wallet", status: http.StatusOK, body: `{"fuelWallet":{"address":"F","trxBalance":1},"currentWallet":{"address":"W1"}}`},
		{name: "missing isActive", status: http.StatusOK, body: `{"mainWallet":{"address":"W1","usdtBalance":1,"trxBalance":1},
			"fuelWallet":{"address":"F","trxBalance":1},"currentWallet":{"address":"W1"}}`},
		{name: "dangling current wallet", status: http.StatusOK, body: `{"mainWallet":{"address":"W1","usdtBalance":1,"trxBalance":1,"isActive":true},
			"fuelWallet":{"address":"F","trxBalance":1},"currentWallet":{"address":"ELSEWHERE","balance":1}}`},
		{name: "no fuel wallet", status: http.StatusOK, body: `{"mainWallet":{"address":"W1","usdtBalance":1,"trxBalance":1,"isActive":true},
			"currentWallet":{"address":"W1"}}`},
		{name: "not json", status: http.StatusOK, body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			treasury, err := client.FetchTreasury(context.Background(), testAuth)

			assert.Nil(t, treasury)
			var terr *domain.TreasuryFetchError
			assert.ErrorAs(t, err, &terr)
		})
	}
}

func TestClient_FetchTreasury_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
		_, _ = w.Write([]byte(treasuryBody))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	treasury, err := client.FetchTreasury(ctx, testAuth)

	assert.Nil(t, treasury)
	var terr *domain.TreasuryFetchError
	require.ErrorAs(t, err, &terr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Approve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/payment/withdrawals/wd1/approve", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(IdempotencyHeader))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"adminNotes":"checked","selectedWallet":"R1"}`, string(body))
		_, _ = w.Write([]byte(`{"success":true,"message":"Withdrawal approved and executed"}`))
	})

	message, err := client.Approve(context.Background(), testAuth, "wd1", "checked", "R1")

	require.NoError(t, err)
	assert.Equal(t, "Withdrawal approved and executed", message)
}

func TestClient_Reject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/payment/withdrawals/wd1/reject", r.URL.Path)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, map[string]any{"adminNotes": "Other: duplicate"}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	message, err := client.Reject(context.Background(), testAuth, "wd1", "Other: duplicate")

	require.NoError(t, err)
	assert.Empty(t, message)
}

func TestClient_Submit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "insufficient wallet", status: http.StatusBadRequest, body: `{"success":false,"message":"Insufficient USDT in wallet"}`, message: "Insufficient USDT in wallet"},
		{name: "refused in 200", status: http.StatusOK, body: `{"success":false,"message":"Already processed"}`, message: "Already processed"},
		{name: "refused without message", status: http.StatusOK, body: `{"success":false}`, message: "backend refused the command"},
		{name: "bare status", status: http.StatusServiceUnavailable, body: ``, message: "backend returned status 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Approve(context.Background(), testAuth, "wd1", "", "W1")

			var serr *domain.SubmissionError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.message, serr.Message)
			assert.Equal(t, domain.DecisionApprove, serr.Kind)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestClient_Submit_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	httpClient.EXPECT().
		Post(gomock.Any(), "http://backend/api/admin/payment/withdrawals/wd1/reject", gomock.Any(), gomock.Any()).
		Return(0, nil, nil, errors.New("connection reset")).
		Times(1)

	client := New(&config.Config{BackendAddress: "http://backend/api"}, httpClient)

	_, err := client.Reject(context.Background(), testAuth, "wd1", "")

	var serr *domain.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "connection reset", serr.Message)
	assert.Equal(t, domain.DecisionReject, serr.Kind)
}
