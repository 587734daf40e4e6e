package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters and histograms for the scheduling engine.
// A nil *SchedulingMetrics is valid and records nothing.
type SchedulingMetrics struct {
	bookingsTotal    *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
	layoutDuration   prometheus.Histogram
	storeErrorsTotal *prometheus.CounterVec
	rateLimitedTotal prometheus.Counter
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vet",
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Booking requests by result",
		}, []string{"result"}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vet",
			Subsystem: "scheduling",
			Name:      "transitions_total",
			Help:      "Status transitions by target status and result",
		}, []string{"target", "result"}),
		layoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vet",
			Subsystem: "scheduling",
			Name:      "layout_duration_seconds",
			Help:      "Time spent computing calendar lanes",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		storeErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vet",
			Subsystem: "scheduling",
			Name:      "store_errors_total",
			Help:      "Store failures by repository error kind",
		}, []string{"kind"}),
		rateLimitedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vet",
			Subsystem: "scheduling",
			Name:      "bookings_rate_limited_total",
			Help:      "Booking requests rejected by the rate limiter",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.transitionsTotal, m.layoutDuration, m.storeErrorsTotal, m.rateLimitedTotal)
	return m
}

func (m *SchedulingMetrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(result).Inc()
}

func (m *SchedulingMetrics) ObserveTransition(target, result string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(target, result).Inc()
}

func (m *SchedulingMetrics) ObserveLayout(seconds float64) {
	if m == nil {
		return
	}
	m.layoutDuration.Observe(seconds)
}

func (m *SchedulingMetrics) ObserveStoreError(kind string) {
	if m == nil {
		return
	}
	m.storeErrorsTotal.WithLabelValues(kind).Inc()
}

func (m *SchedulingMetrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.rateLimitedTotal.Inc()
}
