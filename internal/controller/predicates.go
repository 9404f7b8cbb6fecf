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
	"k8s.io/apimachinery/pkg/api/equality"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/event"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
)

// metadataChanged reports whether an update touched the fields that drive a
// reconciliation: generation (spec), deletion timestamp, finalizers, labels or annotations.
func metadataChanged(oldObj, newObj client.Object) bool {
	if oldObj.GetGeneration() != newObj.GetGeneration() {
		return true
	}
	if !oldObj.GetDeletionTimestamp().Equal(newObj.GetDeletionTimestamp()) {
		return true
	}
	if !equality.Semantic.DeepEqual(oldObj.GetFinalizers(), newObj.GetFinalizers()) {
		return true
	}
	if !equality.Semantic.DeepEqual(oldObj.GetLabels(), newObj.GetLabels()) {
		return true
	}
	return !equality.Semantic.DeepEqual(oldObj.GetAnnotations(), newObj.GetAnnotations())
}

// ManagedResourcePredicate filters events of the kinds bound to a remote object.
//
// The predicate allows reconciliation when:
//   - The resource is created or deleted
//   - The Spec changes (detected via Generation change)
//   - DeletionTimestamp, finalizers, labels or annotations change
//
// Status-only updates are filtered out: the engine writes status on every pass and
// periodic resync is driven by RequeueAfter.
func ManagedResourcePredicate() predicate.Predicate {
	return predicate.Funcs{
		CreateFunc: func(e event.CreateEvent) bool {
			return true
		},
		DeleteFunc: func(e event.DeleteEvent) bool {
			return true
		},
		UpdateFunc: func(e event.UpdateEvent) bool {
			if e.ObjectOld == nil || e.ObjectNew == nil {
				return true
			}
			return metadataChanged(e.ObjectOld, e.ObjectNew)
		},
		GenericFunc: func(e event.GenericEvent) bool {
			return true
		},
	}
}

// SeqInstancePredicate is ManagedResourcePredicate plus changes of status.deployment,
// which carries the connection material of a locally deployed server.
func SeqInstancePredicate() predicate.Predicate {
	return predicate.Funcs{
		CreateFunc: func(e event.CreateEvent) bool {
			return true
		},
		DeleteFunc: func(e event.DeleteEvent) bool {
			return true
		},
		UpdateFunc: func(e event.UpdateEvent) bool {
			oldInstance, ok := e.ObjectOld.(*seqv1alpha1.SeqInstance)
			if !ok {
				return true // If type assertion fails, allow reconciliation to be safe
			}
			newInstance, ok := e.ObjectNew.(*seqv1alpha1.SeqInstance)
			if !ok {
				return true // If type assertion fails, allow reconciliation to be safe
			}

			if !equality.Semantic.DeepEqual(oldInstance.Status.Deployment, newInstance.Status.Deployment) {
				return true
			}
			return metadataChanged(oldInstance, newInstance)
		},
		GenericFunc: func(e event.GenericEvent) bool {
			return true
		},
	}
}
