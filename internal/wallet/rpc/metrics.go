package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics RPC 请求监控指标
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	failoversTotal  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rix_rpc_requests_total",
			Help: "Total number of chain RPC requests.",
		}, []string{"endpoint", "result"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rix_rpc_request_duration_seconds",
			Help:    "Chain RPC request latency distributions.",
			Buckets: []float64{0.05, 0.1, 0.3, 0.5, 1.0, 2.0, 5.0},
		}, []string{"endpoint"}),
		failoversTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rix_rpc_failovers_total",
			Help: "Number of times a request moved on to the next node URL.",
		}),
	}
}
