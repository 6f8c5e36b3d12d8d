// Package metrics exposes session counters to Prometheus.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the session counters.
type Metrics struct {
	sessions   prometheus.Counter
	payments   *prometheus.CounterVec
	membership *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	revenue    prometheus.Counter
}

// New creates the diner counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "diner_sessions_completed_total",
			Help: "Sessions that reached completion.",
		}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diner_payments_total",
			Help: "Settled payments by method.",
		}, []string{"method"}),
		membership: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diner_membership_events_total",
			Help: "Membership logins and enrollments.",
		}, []string{"event"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "diner_rejected_inputs_total",
			Help: "Inputs rejected and re-prompted, by workflow state.",
		}, []string{"state"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "diner_revenue_total",
			Help: "Amount charged across completed sessions.",
		}),
	}
	reg.MustRegister(m.sessions, m.payments, m.membership, m.rejected, m.revenue)
	return m
}

// SessionCompleted counts a settled session and adds its amount due to revenue.
func (m *Metrics) SessionCompleted(method string, due float64) {
	if m == nil {
		return
	}
	m.sessions.Inc()
	m.payments.WithLabelValues(method).Inc()
	m.revenue.Add(due)
}

// MemberLogin counts a successful membership login.
func (m *Metrics) MemberLogin() {
	if m == nil {
		return
	}
	m.membership.WithLabelValues("login").Inc()
}

// MemberEnrolled counts a new membership.
func (m *Metrics) MemberEnrolled() {
	if m == nil {
		return
	}
	m.membership.WithLabelValues("enroll").Inc()
}

// InputRejected counts an input the session re-prompted for in state.
func (m *Metrics) InputRejected(state string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(state).Inc()
}
