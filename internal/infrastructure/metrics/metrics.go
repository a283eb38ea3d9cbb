package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	LedgersCreated       prometheus.Counter
	TransactionsRecorded *prometheus.CounterVec
	TransactionsEdited   prometheus.Counter
	TransactionsDeleted  prometheus.Counter

	// Recalculation metrics
	RecalculationsRun      prometheus.Counter
	RecalculationDuration  prometheus.Histogram
	RecalculationChainSize prometheus.Histogram

	// Inventory metrics
	OrdersPlaced       prometheus.Counter
	OrdersCancelled    prometheus.Counter
	PurchasesReceived  prometheus.Counter
	StockoutRejections prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Cache metrics
	StatsCacheHits   prometheus.Counter
	StatsCacheMisses prometheus.Counter

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		LedgersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_ledgers_created_total",
			Help: "Total number of ledgers created",
		}),
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dukaan_ledger_transactions_recorded_total",
				Help: "Total ledger transactions recorded by type",
			},
			[]string{"type"},
		),
		TransactionsEdited: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_ledger_transactions_edited_total",
			Help: "Total ledger transactions edited",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_ledger_transactions_deleted_total",
			Help: "Total ledger transactions deleted",
		}),

		RecalculationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_recalculations_total",
			Help: "Total balance recalculation runs",
		}),
		RecalculationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dukaan_recalculation_duration_seconds",
			Help:    "Duration of balance recalculation runs",
			Buckets: prometheus.DefBuckets,
		}),
		RecalculationChainSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dukaan_recalculation_chain_size",
			Help:    "Number of transactions replayed per recalculation",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),

		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_orders_placed_total",
			Help: "Total orders placed",
		}),
		OrdersCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_orders_cancelled_total",
			Help: "Total orders cancelled",
		}),
		PurchasesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_purchases_received_total",
			Help: "Total purchases received",
		}),
		StockoutRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_stockout_rejections_total",
			Help: "Total orders rejected for insufficient stock",
		}),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dukaan_http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dukaan_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		StatsCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_stats_cache_hits_total",
			Help: "Total stats requests served from cache",
		}),
		StatsCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_stats_cache_misses_total",
			Help: "Total stats requests that fell through to the database",
		}),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dukaan_auth_attempts_total",
				Help: "Total authentication attempts by result",
			},
			[]string{"result"},
		),

		RateLimitHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dukaan_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}
