package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"

	SettlementOrdersTotal           = "settlement_orders_total"
	SettlementSweepDurationSeconds  = "settlement_sweep_duration_seconds"
	SettlementWinningsUSDTotal      = "settlement_winnings_usd_total"
	SettlementEventPublishFailTotal = "settlement_event_publish_failure_total"
	SettlementLastSweepTimestamp    = "settlement_last_sweep_timestamp_seconds"
)

// Outcome labels of SettlementOrdersTotal.
const (
	OutcomeSettled     = "settled"
	OutcomeSkipped     = "skipped"
	OutcomeMissingDraw = "missing_draw"
	OutcomeFailed      = "failed"
)

var (
	PromGauges = map[string]*prometheus.GaugeVec{
		SettlementLastSweepTimestamp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: SettlementLastSweepTimestamp,
			Help: "Start time of the last completed settlement sweep",
		}, []string{}),
	}

	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "status_code"}),
		SettlementOrdersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SettlementOrdersTotal,
			Help: "Count of orders processed by settlement sweeps",
		}, []string{"game", "outcome"}),
		SettlementWinningsUSDTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SettlementWinningsUSDTotal,
			Help: "Sum of USD winnings of settled orders",
		}, []string{"game", "status"}),
		SettlementEventPublishFailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SettlementEventPublishFailTotal,
			Help: "Count of order settled events which could not be published",
		}, []string{"topic"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "status_code"}),
		SettlementSweepDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    SettlementSweepDurationSeconds,
			Help:    "Duration of settlement sweeps",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{}),
	}
)
