// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_store_ops_total",
			Help: "Key-value store operations by backend, operation and result",
		},
		[]string{"backend", "op", "result"},
	)

	MalformedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_malformed_total",
			Help: "Stored values that failed to decode and were replaced by their empty default",
		},
		[]string{"key"},
	)

	LedgerDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_decisions_total",
			Help: "Application decisions by outcome",
		},
		[]string{"decision", "result"},
	)

	PaymentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_payment_duration_seconds",
			Help:    "Time from payment request to confirmation",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"result"},
	)
)
