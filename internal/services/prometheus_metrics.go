package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	monthsOpenedTotal         prometheus.Counter
	monthsClosedTotal         prometheus.Counter
	summaryDuration           prometheus.Histogram
	varianceAnalysisTotal     *prometheus.CounterVec
	varianceAnalysisDuration  prometheus.Histogram
	itemsRecordedTotal        prometheus.Counter
	itemAmount                prometheus.Histogram
	categoriesTotal           prometheus.Gauge
	currencySelectionsTotal   *prometheus.CounterVec
	usersRegisteredTotal      prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		monthsOpenedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "months_opened_total",
				Help: "Total number of budgeting months opened",
			},
		),
		monthsClosedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "months_closed_total",
				Help: "Total number of budgeting months closed",
			},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "month_summary_duration_milliseconds",
				Help:    "Month summary assembly duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		varianceAnalysisTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "variance_analysis_total",
				Help: "Total number of variance analyses by on-track outcome",
			},
			[]string{"on_track"},
		),
		varianceAnalysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "variance_analysis_duration_milliseconds",
				Help:    "Variance analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		itemsRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "items_recorded_total",
				Help: "Total number of spending items recorded",
			},
		),
		itemAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "item_amount",
				Help:    "Recorded item amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 6),
			},
		),
		categoriesTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_categories_total",
				Help: "Current number of budget categories across all users",
			},
		),
		currencySelectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_selections_total",
				Help: "Total number of currency selections by code",
			},
			[]string{"code"},
		),
		usersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of users registered",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "month.opened":
		m.monthsOpenedTotal.Inc()
	case "month.closed":
		m.monthsClosedTotal.Inc()
	case "variance.analysis":
		onTrack := tags["on_track"]
		if onTrack == "" {
			onTrack = "unknown"
		}
		m.varianceAnalysisTotal.WithLabelValues(onTrack).Inc()
	case "item.recorded":
		m.itemsRecordedTotal.Inc()
	case "currency.selected":
		if code := tags["code"]; code != "" {
			m.currencySelectionsTotal.WithLabelValues(code).Inc()
		}
	case "user.registered":
		m.usersRegisteredTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "month.summary":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case "variance.analysis":
		m.varianceAnalysisDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "item.amount":
		m.itemAmount.Observe(value)
	case "categories.total":
		m.categoriesTotal.Set(value)
	}
}
