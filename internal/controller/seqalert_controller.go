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

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/adapter"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// SeqAlertReconciler reconciles a SeqAlert object.
type SeqAlertReconciler struct {
	client.Client
	Scheme      *runtime.Scheme
	Recorder    record.EventRecorder
	Connections reconcile.Connector
	Intervals   reconcile.Intervals
}

// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqalerts,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqalerts/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqalerts/finalizers,verbs=update

// Reconcile is part of the main Kubernetes reconciliation loop.
func (r *SeqAlertReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	engine := &reconcile.Engine[*seqv1alpha1.SeqAlert, seqv1alpha1.AlertConf, seqv1alpha1.AlertFind, seqv1alpha1.AlertInfo, seq.Alert]{
		Client:    r.Client,
		Recorder:  r.Recorder,
		Connector: r.Connections,
		Adapter:   adapter.Alert{},
		Intervals: r.Intervals,
		Kind:      "SeqAlert",
		Observer:  metricsObserver{controller: seqAlertController},
	}
	return reconcileManaged(ctx, r.Client, req, &seqv1alpha1.SeqAlert{}, engine, seqAlertController)
}

// SetupWithManager sets up the controller with the Manager.
func (r *SeqAlertReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor(seqAlertController)
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&seqv1alpha1.SeqAlert{}, builder.WithPredicates(ManagedResourcePredicate())).
		Watches(&seqv1alpha1.SeqInstance{},
			handler.EnqueueRequestsFromMapFunc(enqueueDependents(mgr.GetClient(), func() client.ObjectList { return &seqv1alpha1.SeqAlertList{} })),
			builder.WithPredicates(instanceReadinessChanged())).
		Named(seqAlertController).
		Complete(r)
}
