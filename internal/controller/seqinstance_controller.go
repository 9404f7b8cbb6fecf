/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/adapter"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// SeqInstanceReconciler reconciles a SeqInstance object. It owns the cached connection
// of the instance and applies the declared server settings.
type SeqInstanceReconciler struct {
	client.Client
	Scheme      *runtime.Scheme
	Recorder    record.EventRecorder
	Connections reconcile.Connector
	// Clients is optional. When set, the rate limiter of a removed instance is released.
	Clients   *seq.ClientManager
	Intervals reconcile.Intervals
}

// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqinstances,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqinstances/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqinstances/finalizers,verbs=update
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch

// Reconcile is part of the main Kubernetes reconciliation loop.
func (r *SeqInstanceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	metrics := NewReconcileMetrics(req.Namespace, req.Name, seqInstanceController)

	instance := &seqv1alpha1.SeqInstance{}
	if err := r.Get(ctx, req.NamespacedName, instance); err != nil {
		if apierrors.IsNotFound(err) {
			logger.V(1).Info("SeqInstance not found, dropping its connection", "instance", req.NamespacedName)
			r.release(req.NamespacedName.String(), metrics)
			r.Connections.Invalidate(req.NamespacedName)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, fmt.Errorf("failed to get SeqInstance %s: %w", req.NamespacedName, err)
	}

	// A changed declaration may point at another server or other credentials.
	if !instance.DeletionTimestamp.IsZero() || instance.Generation != instance.Status.ObservedGeneration {
		r.Connections.Invalidate(req.NamespacedName)
	}

	engine := &reconcile.Engine[*seqv1alpha1.SeqInstance, seqv1alpha1.InstanceConf, seqv1alpha1.InstanceFind, seqv1alpha1.InstanceInfo, adapter.ServerState]{
		Client:      r.Client,
		Recorder:    r.Recorder,
		Connector:   r.Connections,
		Adapter:     adapter.Instance{},
		Intervals:   r.Intervals,
		Kind:        "SeqInstance",
		Observer:    metricsObserver{controller: seqInstanceController},
		ReleaseOnly: true,
	}

	start := time.Now()
	result, err := engine.Reconcile(ctx, instance)
	metrics.ObserveDuration(time.Since(start).Seconds())

	if !instance.DeletionTimestamp.IsZero() && err == nil {
		r.release(req.NamespacedName.String(), metrics)
	}
	return result, err
}

func (r *SeqInstanceReconciler) release(key string, metrics *ReconcileMetrics) {
	if r.Clients != nil {
		r.Clients.ClearInstance(key)
	}
	metrics.Clear()
}

// SetupWithManager sets up the controller with the Manager.
func (r *SeqInstanceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor(seqInstanceController)
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&seqv1alpha1.SeqInstance{}, builder.WithPredicates(SeqInstancePredicate())).
		Named(seqInstanceController).
		Complete(r)
}
