// Package metrics holds the Prometheus collectors for battle activity
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "massacombat"

// Metrics are the battle collectors. A nil *Metrics records nothing.
type Metrics struct {
	BattlesCreated    prometheus.Counter
	BattlesCompleted  *prometheus.CounterVec
	BattlesFinalized  prometheus.Counter
	Turns             *prometheus.CounterVec
	TurnDuration      prometheus.Histogram
	WildcardsOffered  *prometheus.CounterVec
	WildcardsResolved *prometheus.CounterVec
	Rejections        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BattlesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "battles",
			Name:      "created_total",
			Help:      "Battles created",
		}),
		BattlesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "battles",
			Name:      "completed_total",
			Help:      "Battles completed, by how they ended",
		}, []string{"result"}),
		BattlesFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "battles",
			Name:      "finalized_total",
			Help:      "Battles whose ratings were settled",
		}),
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "turns",
			Name:      "resolved_total",
			Help:      "Resolved turns by outcome",
		}, []string{"outcome"}),
		TurnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "turns",
			Name:      "duration_ms",
			Help:      "Time to load, resolve and persist a turn in ms",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 250},
		}),
		WildcardsOffered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wildcards",
			Name:      "offered_total",
			Help:      "Wildcards triggered by type",
		}, []string{"type"}),
		WildcardsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wildcards",
			Name:      "resolved_total",
			Help:      "Wildcards resolved, by whether the effect applied",
		}, []string{"applied"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calls",
			Name:      "rejected_total",
			Help:      "Calls rejected by a rule, by operation and reason",
		}, []string{"operation", "reason"}),
	}

	reg.MustRegister(
		m.BattlesCreated,
		m.BattlesCompleted,
		m.BattlesFinalized,
		m.Turns,
		m.TurnDuration,
		m.WildcardsOffered,
		m.WildcardsResolved,
		m.Rejections,
	)

	return m
}

// Handler serves the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// BattleCreated counts a new battle
func (m *Metrics) BattleCreated() {
	if m == nil {
		return
	}
	m.BattlesCreated.Inc()
}

// BattleCompleted counts a finished battle
func (m *Metrics) BattleCompleted(tie bool) {
	if m == nil {
		return
	}
	result := "win"
	if tie {
		result = "tie"
	}
	m.BattlesCompleted.WithLabelValues(result).Inc()
}

// BattleFinalized counts a settled battle
func (m *Metrics) BattleFinalized() {
	if m == nil {
		return
	}
	m.BattlesFinalized.Inc()
}

// TurnResolved records one turn and how long it took
func (m *Metrics) TurnResolved(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Turns.WithLabelValues(outcome).Inc()
	m.TurnDuration.Observe(float64(took.Microseconds()) / 1000)
}

// WildcardOffered counts a triggered wildcard
func (m *Metrics) WildcardOffered(wildcardType string) {
	if m == nil {
		return
	}
	m.WildcardsOffered.WithLabelValues(wildcardType).Inc()
}

// WildcardResolved counts a resolved wildcard
func (m *Metrics) WildcardResolved(applied bool) {
	if m == nil {
		return
	}
	label := "false"
	if applied {
		label = "true"
	}
	m.WildcardsResolved.WithLabelValues(label).Inc()
}

// Rejected counts a call refused by a domain rule
func (m *Metrics) Rejected(operation, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	m.Rejections.WithLabelValues(operation, reason).Inc()
}
