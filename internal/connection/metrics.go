package connection

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	connectionCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seq_operator",
			Name:      "connection_cache_total",
			Help:      "Total number of connection cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	connectionResolutionFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seq_operator",
			Name:      "connection_resolution_failures_total",
			Help:      "Total number of connection resolutions in which no strategy produced a verified connection",
		},
		[]string{"namespace", "name"},
	)

	credentialRotationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seq_operator",
			Name:      "credential_rotations_total",
			Help:      "Total number of first-run passwords rotated to the primary password",
		},
		[]string{"namespace", "name"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		connectionCacheTotal,
		connectionResolutionFailuresTotal,
		credentialRotationsTotal,
	)
}

func recordLookup(hit bool) {
	if hit {
		connectionCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	connectionCacheTotal.WithLabelValues("miss").Inc()
}
