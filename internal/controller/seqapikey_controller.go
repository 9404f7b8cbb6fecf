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

// SeqAPIKeyReconciler reconciles a SeqAPIKey object. Tokens of keys it creates are
// written to the Secret named by conf.tokenSecretRef.
type SeqAPIKeyReconciler struct {
	client.Client
	Scheme      *runtime.Scheme
	Recorder    record.EventRecorder
	Connections reconcile.Connector
	Intervals   reconcile.Intervals
}

// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqapikeys,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqapikeys/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqapikeys/finalizers,verbs=update
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch

// Reconcile is part of the main Kubernetes reconciliation loop.
func (r *SeqAPIKeyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	engine := &reconcile.Engine[*seqv1alpha1.SeqAPIKey, seqv1alpha1.APIKeyConf, seqv1alpha1.APIKeyFind, seqv1alpha1.APIKeyInfo, seq.APIKey]{
		Client:    r.Client,
		Recorder:  r.Recorder,
		Connector: r.Connections,
		Adapter:   &adapter.APIKey{Client: r.Client, Scheme: r.Scheme},
		Intervals: r.Intervals,
		Kind:      "SeqAPIKey",
		Observer:  metricsObserver{controller: seqAPIKeyController},
	}
	return reconcileManaged(ctx, r.Client, req, &seqv1alpha1.SeqAPIKey{}, engine, seqAPIKeyController)
}

// SetupWithManager sets up the controller with the Manager.
func (r *SeqAPIKeyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor(seqAPIKeyController)
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&seqv1alpha1.SeqAPIKey{}, builder.WithPredicates(ManagedResourcePredicate())).
		Watches(&seqv1alpha1.SeqInstance{},
			handler.EnqueueRequestsFromMapFunc(enqueueDependents(mgr.GetClient(), func() client.ObjectList { return &seqv1alpha1.SeqAPIKeyList{} })),
			builder.WithPredicates(instanceReadinessChanged())).
		Named(seqAPIKeyController).
		Complete(r)
}
