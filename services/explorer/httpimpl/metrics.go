package httpimpl

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the decode API. Each metric is a counter vector
// with "function" and "operation" labels.
var (
	// prometheusExplorerHTTPDecodeTx tracks transaction decode requests
	prometheusExplorerHTTPDecodeTx *prometheus.CounterVec

	// prometheusExplorerHTTPDecodeBlock tracks block decode requests
	prometheusExplorerHTTPDecodeBlock *prometheus.CounterVec

	// prometheusExplorerHTTPDecodeScript tracks script decode requests
	prometheusExplorerHTTPDecodeScript *prometheus.CounterVec

	// prometheusExplorerHTTPDecodeAddress tracks address decode requests
	prometheusExplorerHTTPDecodeAddress *prometheus.CounterVec
)

// prometheusMetricsInitOnce ensures metrics are initialized exactly once
var (
	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusExplorerHTTPDecodeTx = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veruscoin",
			Subsystem: "explorer",
			Name:      "http_decode_tx",
			Help:      "Number of transaction decode ops",
		},
		[]string{
			"function",  // function tracking the operation
			"operation", // type of operation achieved
		},
	)

	prometheusExplorerHTTPDecodeBlock = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veruscoin",
			Subsystem: "explorer",
			Name:      "http_decode_block",
			Help:      "Number of block decode ops",
		},
		[]string{
			"function",  // function tracking the operation
			"operation", // type of operation achieved
		},
	)

	prometheusExplorerHTTPDecodeScript = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veruscoin",
			Subsystem: "explorer",
			Name:      "http_decode_script",
			Help:      "Number of script decode ops",
		},
		[]string{
			"function",  // function tracking the operation
			"operation", // type of operation achieved
		},
	)

	prometheusExplorerHTTPDecodeAddress = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "veruscoin",
			Subsystem: "explorer",
			Name:      "http_decode_address",
			Help:      "Number of address decode ops",
		},
		[]string{
			"function",  // function tracking the operation
			"operation", // type of operation achieved
		},
	)
}
