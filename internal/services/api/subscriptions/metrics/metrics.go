// Package metrics holds prometheus collectors for subscription intake
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for SubscriptionsTotal
const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics groups the intake collectors
// a nil *Metrics records nothing
type Metrics struct {
	subscriptions *prometheus.CounterVec
	insertLatency prometheus.Histogram
}

// New registers the collectors on reg and returns nil when reg is nil
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		subscriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newsletter",
			Name:      "subscriptions_total",
			Help:      "Subscription requests by outcome.",
		}, []string{"outcome"}),
		insertLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "newsletter",
			Name:      "subscription_insert_seconds",
			Help:      "Latency of subscription inserts.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.subscriptions = register(reg, m.subscriptions)
	m.insertLatency = register(reg, m.insertLatency)
	return m
}

// register returns the collector already on reg when an identical one was registered before
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Outcome counts one request with the given outcome
func (m *Metrics) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.subscriptions.WithLabelValues(outcome).Inc()
}

// ObserveInsert records the duration since start
func (m *Metrics) ObserveInsert(start time.Time) {
	if m == nil {
		return
	}
	m.insertLatency.Observe(time.Since(start).Seconds())
}
