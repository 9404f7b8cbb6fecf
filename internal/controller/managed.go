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
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/event"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/status"
)

// Controller names, also used as the controller label of metrics and as event sources.
const (
	seqInstanceController        = "seqinstance"
	seqAPIKeyController          = "seqapikey"
	seqAlertController           = "seqalert"
	seqSignalController          = "seqsignal"
	seqRetentionPolicyController = "seqretentionpolicy"
)

// reconcileManaged loads the object named by req and runs one engine pass on it.
func reconcileManaged[T reconcile.Object[C, F, I], C, F, I, R any](
	ctx context.Context,
	c client.Reader,
	req ctrl.Request,
	obj T,
	engine *reconcile.Engine[T, C, F, I, R],
	controllerName string,
) (ctrl.Result, error) {
	metrics := NewReconcileMetrics(req.Namespace, req.Name, controllerName)

	if err := c.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			metrics.Clear()
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, fmt.Errorf("failed to get %s %s: %w", engine.Kind, req.NamespacedName, err)
	}

	start := time.Now()
	defer func() {
		metrics.ObserveDuration(time.Since(start).Seconds())
	}()
	return engine.Reconcile(ctx, obj)
}

type instanceBound interface {
	client.Object
	InstanceKey() types.NamespacedName
}

// enqueueDependents maps a SeqInstance to the objects of one kind managed on it.
func enqueueDependents(c client.Reader, newList func() client.ObjectList) handler.MapFunc {
	return func(ctx context.Context, instance client.Object) []ctrl.Request {
		list := newList()
		if err := c.List(ctx, list); err != nil {
			log.FromContext(ctx).Error(err, "Failed to list objects managed on SeqInstance",
				"instance", client.ObjectKeyFromObject(instance))
			return nil
		}

		key := client.ObjectKeyFromObject(instance)
		var requests []ctrl.Request
		_ = meta.EachListItem(list, func(o runtime.Object) error {
			if dep, ok := o.(instanceBound); ok && dep.InstanceKey() == key {
				requests = append(requests, ctrl.Request{NamespacedName: client.ObjectKeyFromObject(dep)})
			}
			return nil
		})
		return requests
	}
}

// instanceReadinessChanged passes SeqInstance events that change whether objects
// managed on the instance can make progress.
func instanceReadinessChanged() predicate.Predicate {
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
				return true
			}
			newInstance, ok := e.ObjectNew.(*seqv1alpha1.SeqInstance)
			if !ok {
				return true
			}
			return status.IsTrue(oldInstance.Status.Conditions, status.ConditionReady) !=
				status.IsTrue(newInstance.Status.Conditions, status.ConditionReady)
		},
		GenericFunc: func(e event.GenericEvent) bool {
			return false
		},
	}
}
