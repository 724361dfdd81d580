package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the costing engine counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	unknownProcessTypes *prometheus.CounterVec
	frcLinesComposed    *prometheus.CounterVec
	frcDecisions        *prometheus.CounterVec
	frcCompleted        prometheus.Counter
	thresholdColors     *prometheus.CounterVec
	additionalsActions  *prometheus.CounterVec
	settlements         *prometheus.CounterVec
}

// New registers the counters on registerer (the default registerer when nil).
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		unknownProcessTypes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_unknown_process_type_total",
			Help: "Line items rejected because their process type is not registered.",
		}, []string{"operation"}),
		frcLinesComposed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_frc_lines_composed_total",
			Help: "FRC lines composed by source.",
		}, []string{"source"}),
		frcDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_frc_decisions_total",
			Help: "FRC line decisions recorded by decision.",
		}, []string{"decision"}),
		frcCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "claims_frc_completed_total",
			Help: "FRC runs completed.",
		}),
		thresholdColors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_threshold_classifications_total",
			Help: "Estimate threshold classifications by color.",
		}, []string{"color"}),
		additionalsActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_additionals_lines_total",
			Help: "Additionals lines raised by action.",
		}, []string{"action"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_settlements_total",
			Help: "Settlement payouts by provider status.",
		}, []string{"status"}),
	}

	registerer.MustRegister(
		m.unknownProcessTypes,
		m.frcLinesComposed,
		m.frcDecisions,
		m.frcCompleted,
		m.thresholdColors,
		m.additionalsActions,
		m.settlements,
	)
	return m
}

func (m *Metrics) UnknownProcessType(operation string) {
	if m == nil {
		return
	}
	m.unknownProcessTypes.WithLabelValues(operation).Inc()
}

func (m *Metrics) FRCLinesComposed(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.frcLinesComposed.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) FRCDecision(decision string) {
	if m == nil {
		return
	}
	m.frcDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) FRCCompleted() {
	if m == nil {
		return
	}
	m.frcCompleted.Inc()
}

func (m *Metrics) Threshold(color string) {
	if m == nil {
		return
	}
	m.thresholdColors.WithLabelValues(color).Inc()
}

func (m *Metrics) AdditionalsLine(action string) {
	if m == nil {
		return
	}
	m.additionalsActions.WithLabelValues(action).Inc()
}

func (m *Metrics) Settlement(status string) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(status).Inc()
}
