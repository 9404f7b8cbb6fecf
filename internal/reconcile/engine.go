// Package reconcile implements the lifecycle shared by every kind bound to a remote
// object on a SeqInstance: bind by find or create, detect drift, apply configuration,
// delete on removal.
package reconcile

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/tools/record"
	"k8s.io/client-go/util/retry"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"
	ctrlreconcile "sigs.k8s.io/controller-runtime/pkg/reconcile"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
	"github.com/dc-tec/seq-operator/internal/logging"
	"github.com/dc-tec/seq-operator/internal/seq"
	"github.com/dc-tec/seq-operator/internal/status"
)

// Engine drives objects of one kind through their lifecycle.
// The host runtime guarantees that one object is never reconciled concurrently.
type Engine[T Object[C, F, I], C, F, I, R any] struct {
	Client    client.Client
	Recorder  record.EventRecorder
	Connector Connector
	Adapter   Adapter[C, F, I, R]
	Intervals Intervals
	// Kind names the reconciled kind in logs and messages.
	Kind string
	// Observer is optional.
	Observer Observer
	// ReleaseOnly skips remote deletion: the remote object outlives its declaration.
	ReleaseOnly bool
}

// Reconcile runs one lifecycle step for obj, which must be the current state read
// from the API server. Failures are recorded on obj's conditions and turned into a
// requeue; only cancellation and code defects are returned as errors.
func (e *Engine[T, C, F, I, R]) Reconcile(ctx context.Context, obj T) (ctrl.Result, error) {
	logger := log.FromContext(ctx).WithValues("kind", e.Kind, "namespace", obj.GetNamespace(), "name", obj.GetName())
	ctx = log.IntoContext(ctx, logger)

	if !obj.GetDeletionTimestamp().IsZero() {
		return e.finalize(ctx, obj)
	}

	if !controllerutil.ContainsFinalizer(obj, constants.FinalizerName) {
		controllerutil.AddFinalizer(obj, constants.FinalizerName)
		if err := e.Client.Update(ctx, obj); err != nil {
			return e.fail(ctx, obj, operatorerrors.WrapKubernetesAPI(
				fmt.Errorf("failed to add finalizer to %s %s/%s: %w", e.Kind, obj.GetNamespace(), obj.GetName(), err)))
		}
	}

	result, err := e.sync(ctx, obj)
	if err != nil {
		return e.fail(ctx, obj, err)
	}
	return result, nil
}

func (e *Engine[T, C, F, I, R]) sync(ctx context.Context, obj T) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	intervals := e.Intervals.withDefaults()
	generation := obj.GetGeneration()
	st := obj.GetManagedStatus()

	if status.Get(st.Conditions, status.ConditionReady) == nil || status.Get(st.Conditions, status.ConditionHealthy) == nil {
		if err := e.persist(ctx, obj, func(o T) {
			s := o.GetManagedStatus()
			status.EnsureDefaults(&s.Conditions, generation, constants.ReasonReconciling, status.ConditionReady, status.ConditionHealthy)
		}); err != nil {
			return ctrl.Result{}, err
		}
	}

	scope, err := e.connect(ctx, obj)
	if err != nil {
		return ctrl.Result{}, err
	}
	policy := obj.GetPolicy()

	if st.ID == "" {
		id, err := e.bind(ctx, scope, obj, policy)
		if err != nil {
			return ctrl.Result{}, err
		}
		if id == "" {
			logger.Info("No remote object found and creation is not permitted; pending attach")
			if err := e.persist(ctx, obj, func(o T) {
				s := o.GetManagedStatus()
				status.False(&s.Conditions, generation, status.ConditionReady, constants.ReasonPendingAttach,
					"No matching remote object exists and the policy does not permit Create")
				status.True(&s.Conditions, generation, status.ConditionHealthy, constants.ReasonPendingAttach, "")
			}); err != nil {
				return ctrl.Result{}, err
			}
			return ctrl.Result{RequeueAfter: intervals.Steady}, nil
		}
	}
	id := st.ID

	current, err := e.Adapter.Get(ctx, scope, id)
	if err != nil {
		return ctrl.Result{}, err
	}
	if current == nil {
		return ctrl.Result{}, e.drift(ctx, obj, id)
	}

	if conf := obj.GetConf(); conf != nil && policy.Allows(seqv1alpha1.PolicyUpdate) {
		changed, err := e.Adapter.Update(ctx, scope, current, conf)
		if err != nil {
			return ctrl.Result{}, err
		}
		if changed {
			logger.Info("Updated remote object", "id", id)
			e.event(obj, corev1.EventTypeNormal, constants.EventReasonUpdated, "Updated %s %s", e.Kind, id)
			if current, err = e.Adapter.Get(ctx, scope, id); err != nil {
				return ctrl.Result{}, err
			}
			if current == nil {
				return ctrl.Result{}, e.drift(ctx, obj, id)
			}
		}
	}

	info, err := e.Adapter.Observe(current)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := e.persist(ctx, obj, func(o T) {
		o.SetInfo(info)
		s := o.GetManagedStatus()
		s.ObservedGeneration = generation
		status.True(&s.Conditions, generation, status.ConditionReady, constants.ReasonSynced, "")
		status.True(&s.Conditions, generation, status.ConditionHealthy, constants.ReasonSynced, "")
	}); err != nil {
		return ctrl.Result{}, err
	}

	logger.V(1).Info("Remote object in sync", "id", id, "requeueAfter", intervals.Steady)
	return ctrl.Result{RequeueAfter: intervals.Steady}, nil
}

// connect resolves the SeqInstance of obj and a verified connection to it.
func (e *Engine[T, C, F, I, R]) connect(ctx context.Context, obj T) (Scope, error) {
	key := obj.InstanceKey()
	if err := e.Client.Get(ctx, key, &seqv1alpha1.SeqInstance{}); err != nil {
		if apierrors.IsNotFound(err) {
			return Scope{}, operatorerrors.WrapInstanceUnresolved(fmt.Errorf("SeqInstance %s not found", key))
		}
		return Scope{}, operatorerrors.WrapKubernetesAPI(fmt.Errorf("failed to get SeqInstance %s: %w", key, err))
	}

	conn, err := e.Connector.Connect(ctx, key)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Conn: conn, Object: obj}, nil
}

// bind finds or creates the remote object and checkpoints its ID. It returns "" when
// nothing was found and creation is not permitted.
func (e *Engine[T, C, F, I, R]) bind(ctx context.Context, scope Scope, obj T, policy seqv1alpha1.PolicySet) (string, error) {
	logger := log.FromContext(ctx)

	var id string
	if find := obj.GetFind(); find != nil {
		found, err := e.Adapter.Find(ctx, scope, find)
		if err != nil {
			return "", err
		}
		id = found
	}

	reason, verb := constants.EventReasonBound, "Bound"
	if id == "" {
		if !policy.Allows(seqv1alpha1.PolicyCreate) {
			return "", nil
		}
		conf := obj.GetInit()
		if conf == nil {
			conf = obj.GetConf()
		}
		if conf == nil {
			return "", operatorerrors.WrapPermanentConfig(fmt.Errorf("%s declares neither init nor conf to create from", e.Kind))
		}
		if err := e.Adapter.ValidateCreate(conf); err != nil {
			return "", operatorerrors.WrapPermanentConfig(err)
		}
		created, err := e.Adapter.Create(ctx, scope, conf)
		if err != nil {
			return "", err
		}
		id = created
		reason, verb = constants.EventReasonCreated, "Created"
		logging.LogAuditEvent(logger, logging.AuditEventRemoteCreated, e.auditFields(obj, id))
	}

	if err := e.persist(ctx, obj, func(o T) {
		o.GetManagedStatus().ID = id
		o.SetInfo(nil)
	}); err != nil {
		return "", err
	}

	logger.Info(verb+" remote object", "id", id)
	e.event(obj, corev1.EventTypeNormal, reason, "%s %s %s", verb, e.Kind, id)
	return id, nil
}

// drift clears the binding of a remote object that no longer exists.
func (e *Engine[T, C, F, I, R]) drift(ctx context.Context, obj T, id string) error {
	log.FromContext(ctx).Info("Remote object no longer exists; clearing binding", "id", id)

	if err := e.persist(ctx, obj, func(o T) {
		o.GetManagedStatus().ID = ""
		o.SetInfo(nil)
	}); err != nil {
		return err
	}

	e.event(obj, corev1.EventTypeWarning, constants.EventReasonDrift, "%s %s no longer exists on the server", e.Kind, id)
	if e.Observer != nil {
		e.Observer.DriftDetected(obj)
	}
	return fmt.Errorf("%s %s: %w", e.Kind, id, operatorerrors.ErrDrift)
}

func (e *Engine[T, C, F, I, R]) finalize(ctx context.Context, obj T) (ctrl.Result, error) {
	if !controllerutil.ContainsFinalizer(obj, constants.FinalizerName) {
		return ctrl.Result{}, nil
	}

	if err := e.deleteRemote(ctx, obj); err != nil {
		return e.fail(ctx, obj, err)
	}

	key := client.ObjectKeyFromObject(obj)
	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		latest := obj.DeepCopyObject().(T)
		if err := e.Client.Get(ctx, key, latest); err != nil {
			return err
		}
		if !controllerutil.RemoveFinalizer(latest, constants.FinalizerName) {
			return nil
		}
		return e.Client.Update(ctx, latest)
	})
	if err != nil && !apierrors.IsNotFound(err) {
		return e.fail(ctx, obj, operatorerrors.WrapKubernetesAPI(
			fmt.Errorf("failed to remove finalizer from %s %s: %w", e.Kind, key, err)))
	}
	return ctrl.Result{}, nil
}

// deleteRemote removes the bound remote object when the policy permits it.
// The instance and connection are resolved before the policy is consulted, so a leak is
// only reported for an object that still exists on the server.
func (e *Engine[T, C, F, I, R]) deleteRemote(ctx context.Context, obj T) error {
	logger := log.FromContext(ctx)
	id := obj.GetManagedStatus().ID

	if obj.GetAnnotations()[constants.AnnotationSkipFinalize] == "true" {
		logger.Info("Skipping remote deletion", "annotation", constants.AnnotationSkipFinalize, "id", id)
		return nil
	}
	if e.ReleaseOnly {
		logger.Info("Releasing binding without remote deletion", "id", id)
		return nil
	}
	if id == "" {
		logger.V(1).Info("Object was never bound; nothing to delete")
		return nil
	}

	scope, err := e.connect(ctx, obj)
	if err != nil {
		return err
	}
	current, err := e.Adapter.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	if current == nil {
		logger.Info("Remote object already gone", "id", id)
		return nil
	}

	if !obj.GetPolicy().Allows(seqv1alpha1.PolicyDelete) {
		logging.LogAuditEvent(logger, logging.AuditEventRemoteLeaked, e.auditFields(obj, id))
		e.event(obj, corev1.EventTypeNormal, constants.EventReasonLeaked,
			"Policy does not permit Delete; %s %s is left on the server", e.Kind, id)
		return nil
	}
	if err := e.Adapter.Delete(ctx, scope, id); err != nil {
		return err
	}

	logging.LogAuditEvent(logger, logging.AuditEventRemoteDeleted, e.auditFields(obj, id))
	e.event(obj, corev1.EventTypeNormal, constants.EventReasonDeleted, "Deleted %s %s", e.Kind, id)
	return nil
}

// fail records err on obj and converts it into a requeue decision.
func (e *Engine[T, C, F, I, R]) fail(ctx context.Context, obj T, err error) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	intervals := e.Intervals.withDefaults()
	kind := operatorerrors.Classify(err)

	if kind == operatorerrors.KindCanceled {
		logger.V(1).Info("Reconciliation canceled", "error", err.Error())
		return ctrl.Result{}, err
	}

	if seq.IsUnauthorized(err) {
		e.Connector.Invalidate(obj.InstanceKey())
	}

	reason := operatorerrors.Reason(err)
	switch kind {
	case operatorerrors.KindFatal, operatorerrors.KindUnexpected:
		logger.Error(err, "Reconciliation failed", "reason", reason)
	default:
		logger.Info("Reconciliation failed", "reason", reason, "error", err.Error())
	}

	message := err.Error()
	generation := obj.GetGeneration()
	if recordErr := e.persist(ctx, obj, func(o T) {
		s := o.GetManagedStatus()
		status.False(&s.Conditions, generation, status.ConditionReady, reason, message)
		status.False(&s.Conditions, generation, status.ConditionHealthy, reason, message)
	}); recordErr != nil {
		logger.Error(recordErr, "Failed to record failure conditions", "severity", "critical", "reason", reason)
	}
	e.event(obj, corev1.EventTypeWarning, constants.EventReasonReconcileFailed, "%s", message)
	if e.Observer != nil {
		e.Observer.ReconcileFailed(obj, reason)
	}

	switch kind {
	case operatorerrors.KindFatal:
		return ctrl.Result{}, ctrlreconcile.TerminalError(err)
	case operatorerrors.KindRemoteAPI:
		return ctrl.Result{RequeueAfter: intervals.RemoteError}, nil
	default:
		logger.V(1).Info("Requeueing after failure", "requeueAfter", intervals.Retry)
		return ctrl.Result{RequeueAfter: intervals.Retry}, nil
	}
}

// persist applies mutate to the latest stored object and writes its status with
// optimistic concurrency. On success the committed status is copied back to obj.
func (e *Engine[T, C, F, I, R]) persist(ctx context.Context, obj T, mutate func(T)) error {
	key := client.ObjectKeyFromObject(obj)
	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		latest := obj.DeepCopyObject().(T)
		if err := e.Client.Get(ctx, key, latest); err != nil {
			return err
		}
		mutate(latest)
		if err := e.Client.Status().Update(ctx, latest); err != nil {
			return err
		}
		*obj.GetManagedStatus() = *latest.GetManagedStatus()
		obj.SetInfo(latest.GetInfo())
		obj.SetResourceVersion(latest.GetResourceVersion())
		return nil
	})
	if err != nil {
		return operatorerrors.WrapKubernetesAPI(fmt.Errorf("failed to update status of %s %s: %w", e.Kind, key, err))
	}
	return nil
}

func (e *Engine[T, C, F, I, R]) event(obj T, eventType, reason, messageFmt string, args ...any) {
	if e.Recorder == nil {
		return
	}
	e.Recorder.Eventf(obj, eventType, reason, messageFmt, args...)
}

func (e *Engine[T, C, F, I, R]) auditFields(obj T, id string) map[string]string {
	return map[string]string{
		"kind":      e.Kind,
		"namespace": obj.GetNamespace(),
		"name":      obj.GetName(),
		"instance":  obj.InstanceKey().String(),
		"id":        id,
	}
}
