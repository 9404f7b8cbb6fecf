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
	"sigs.k8s.io/controller-runtime/pkg/event"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/adapter"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// SeqRetentionPolicyReconciler reconciles a SeqRetentionPolicy object.
type SeqRetentionPolicyReconciler struct {
	client.Client
	Scheme      *runtime.Scheme
	Recorder    record.EventRecorder
	Connections reconcile.Connector
	Intervals   reconcile.Intervals
}

// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqretentionpolicies,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqretentionpolicies/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqretentionpolicies/finalizers,verbs=update
// +kubebuilder:rbac:groups=seq.dc-tec.io,resources=seqsignals,verbs=get;list;watch

// Reconcile is part of the main Kubernetes reconciliation loop.
func (r *SeqRetentionPolicyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	engine := &reconcile.Engine[*seqv1alpha1.SeqRetentionPolicy, seqv1alpha1.RetentionPolicyConf, seqv1alpha1.RetentionPolicyFind, seqv1alpha1.RetentionPolicyInfo, seq.RetentionPolicy]{
		Client:    r.Client,
		Recorder:  r.Recorder,
		Connector: r.Connections,
		Adapter:   &adapter.RetentionPolicy{Reader: r.Client},
		Intervals: r.Intervals,
		Kind:      "SeqRetentionPolicy",
		Observer:  metricsObserver{controller: seqRetentionPolicyController},
	}
	return reconcileManaged(ctx, r.Client, req, &seqv1alpha1.SeqRetentionPolicy{}, engine, seqRetentionPolicyController)
}

// SetupWithManager sets up the controller with the Manager.
func (r *SeqRetentionPolicyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor(seqRetentionPolicyController)
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&seqv1alpha1.SeqRetentionPolicy{}, builder.WithPredicates(ManagedResourcePredicate())).
		Watches(&seqv1alpha1.SeqInstance{},
			handler.EnqueueRequestsFromMapFunc(enqueueDependents(mgr.GetClient(), func() client.ObjectList { return &seqv1alpha1.SeqRetentionPolicyList{} })),
			builder.WithPredicates(instanceReadinessChanged())).
		Watches(&seqv1alpha1.SeqSignal{},
			handler.EnqueueRequestsFromMapFunc(r.policiesForSignal),
			builder.WithPredicates(signalBindingChanged())).
		Named(seqRetentionPolicyController).
		Complete(r)
}

// policiesForSignal maps a SeqSignal to the retention policies in its namespace that
// reference it by signalRef.
func (r *SeqRetentionPolicyReconciler) policiesForSignal(ctx context.Context, signal client.Object) []ctrl.Request {
	policies := &seqv1alpha1.SeqRetentionPolicyList{}
	if err := r.List(ctx, policies, client.InNamespace(signal.GetNamespace())); err != nil {
		log.FromContext(ctx).Error(err, "Failed to list SeqRetentionPolicies", "signal", client.ObjectKeyFromObject(signal))
		return nil
	}

	var requests []ctrl.Request
	for i := range policies.Items {
		if referencesSignal(&policies.Items[i], signal.GetName()) {
			requests = append(requests, ctrl.Request{NamespacedName: client.ObjectKeyFromObject(&policies.Items[i])})
		}
	}
	return requests
}

func referencesSignal(policy *seqv1alpha1.SeqRetentionPolicy, name string) bool {
	for _, conf := range []*seqv1alpha1.RetentionPolicyConf{policy.Spec.Init, policy.Spec.Conf} {
		if conf != nil && conf.SignalRef != nil && conf.SignalRef.Name == name {
			return true
		}
	}
	find := policy.Spec.Find
	return find != nil && find.SignalRef != nil && find.SignalRef.Name == name
}

// signalBindingChanged passes SeqSignal updates that bind or unbind the signal.
func signalBindingChanged() predicate.Predicate {
	return predicate.Funcs{
		CreateFunc: func(e event.CreateEvent) bool {
			return false
		},
		DeleteFunc: func(e event.DeleteEvent) bool {
			return true
		},
		UpdateFunc: func(e event.UpdateEvent) bool {
			oldSignal, ok := e.ObjectOld.(*seqv1alpha1.SeqSignal)
			if !ok {
				return true
			}
			newSignal, ok := e.ObjectNew.(*seqv1alpha1.SeqSignal)
			if !ok {
				return true
			}
			return oldSignal.Status.ID != newSignal.Status.ID
		},
		GenericFunc: func(e event.GenericEvent) bool {
			return false
		},
	}
}
