package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	reconcileDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seq_operator",
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation loops in seconds",
			// Most reconciles are a handful of API round trips; the tail covers slow servers.
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"namespace", "name", "controller"},
	)

	reconcileErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seq_operator",
			Name:      "reconcile_errors_total",
			Help:      "Total number of reconciliation errors",
		},
		[]string{"namespace", "name", "controller", "reason"},
	)

	driftDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seq_operator",
			Name:      "drift_detected_total",
			Help:      "Total number of bound remote objects found deleted on the server",
		},
		[]string{"namespace", "name", "controller"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		reconcileDurationHistogram,
		reconcileErrorsTotal,
		driftDetectedTotal,
	)
}

// ReconcileMetrics provides helpers to record reconcile-level metrics for a
// specific controller and object.
type ReconcileMetrics struct {
	namespace  string
	name       string
	controller string
}

// NewReconcileMetrics creates a new ReconcileMetrics instance.
func NewReconcileMetrics(namespace, name, controller string) *ReconcileMetrics {
	return &ReconcileMetrics{
		namespace:  namespace,
		name:       name,
		controller: controller,
	}
}

// ObserveDuration records the duration of a reconcile loop in seconds.
func (m *ReconcileMetrics) ObserveDuration(durationSeconds float64) {
	reconcileDurationHistogram.
		WithLabelValues(m.namespace, m.name, m.controller).
		Observe(durationSeconds)
}

// IncrementError increments the reconcile error counter with the given reason.
// Reason values are condition reasons (for example, "RemoteAPIError").
func (m *ReconcileMetrics) IncrementError(reason string) {
	reconcileErrorsTotal.
		WithLabelValues(m.namespace, m.name, m.controller, reason).
		Inc()
}

// RecordDriftDetected records that the bound remote object disappeared.
func (m *ReconcileMetrics) RecordDriftDetected() {
	driftDetectedTotal.
		WithLabelValues(m.namespace, m.name, m.controller).
		Inc()
}

// Clear removes every series of the object. It is called once the object is gone
// so that deleted objects do not leave stale series behind.
func (m *ReconcileMetrics) Clear() {
	labels := prometheus.Labels{"namespace": m.namespace, "name": m.name, "controller": m.controller}
	reconcileDurationHistogram.DeletePartialMatch(labels)
	reconcileErrorsTotal.DeletePartialMatch(labels)
	driftDetectedTotal.DeletePartialMatch(labels)
}

// metricsObserver feeds engine outcomes into the reconcile metrics of one controller.
type metricsObserver struct {
	controller string
}

func (o metricsObserver) ReconcileFailed(obj client.Object, reason string) {
	NewReconcileMetrics(obj.GetNamespace(), obj.GetName(), o.controller).IncrementError(reason)
}

func (o metricsObserver) DriftDetected(obj client.Object) {
	NewReconcileMetrics(obj.GetNamespace(), obj.GetName(), o.controller).RecordDriftDetected()
}
