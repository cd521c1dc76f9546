package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminconsole"

// Metrics holds the console's business counters.
type Metrics struct {
	DecisionsTotal     *prometheus.CounterVec
	FetchFailuresTotal *prometheus.CounterVec
	VerdictsTotal      *prometheus.CounterVec
	PendingWithdrawals prometheus.Gauge
	DecisionAmount     *prometheus.HistogramVec
}

// New registers the metrics with reg. Pass prometheus.DefaultRegisterer to
// expose them on /metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecisionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawal_decisions_total",
			Help:      "Approve/reject commands sent to the backend",
		}, []string{"kind", "outcome"}),
		FetchFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_fetch_failures_total",
			Help:      "Failed reads from the backend",
		}, []string{"source"}),
		VerdictsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feasibility_verdicts_total",
			Help:      "Feasibility verdicts shown to admins",
		}, []string{"can_process"}),
		PendingWithdrawals: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_withdrawals",
			Help:      "Withdrawals waiting for a decision",
		}),
		DecisionAmount: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "withdrawal_decision_amount_usdt",
			Help:      "Requested amount of decided withdrawals",
			Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
		}, []string{"kind"}),
	}
}

func (m *Metrics) Decision(kind, outcome string, amount float64) {
	m.DecisionsTotal.WithLabelValues(kind, outcome).Inc()
	m.DecisionAmount.WithLabelValues(kind).Observe(amount)
}

func (m *Metrics) FetchFailure(source string) {
	m.FetchFailuresTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) Verdict(canProcess bool) {
	label := "false"
	if canProcess {
		label = "true"
	}
	m.VerdictsTotal.WithLabelValues(label).Inc()
}

func (m *Metrics) Pending(n int) {
	m.PendingWithdrawals.Set(float64(n))
}
