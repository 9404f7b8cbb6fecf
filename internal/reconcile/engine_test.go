package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/record"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
	ctrlreconcile "sigs.k8s.io/controller-runtime/pkg/reconcile"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
	"github.com/dc-tec/seq-operator/internal/seq"
	"github.com/dc-tec/seq-operator/internal/status"
)

const testNamespace = "observability"

var testIntervals = Intervals{Steady: 30 * time.Second, Retry: 20 * time.Second, RemoteError: 10 * time.Second}

type alertEngine = Engine[*seqv1alpha1.SeqAlert, seqv1alpha1.AlertConf, seqv1alpha1.AlertFind, seqv1alpha1.AlertInfo, seq.Alert]

type harness struct {
	t         *testing.T
	client    client.Client
	recorder  *record.FakeRecorder
	adapter   *memoryAdapter
	connector *fakeConnector
	engine    *alertEngine
	observer  *countingObserver
}

type countingObserver struct {
	failures []string
	drifts   int
}

func (o *countingObserver) ReconcileFailed(_ client.Object, reason string) {
	o.failures = append(o.failures, reason)
}

func (o *countingObserver) DriftDetected(client.Object) { o.drifts++ }

func newScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = seqv1alpha1.AddToScheme(scheme)
	return scheme
}

func instance() *seqv1alpha1.SeqInstance {
	return &seqv1alpha1.SeqInstance{
		ObjectMeta: metav1.ObjectMeta{Name: "seq", Namespace: testNamespace},
		Spec: seqv1alpha1.SeqInstanceSpec{
			Remote: &seqv1alpha1.RemoteSpec{URL: "http://seq.test"},
		},
	}
}

func alert(name string, mutate func(*seqv1alpha1.SeqAlert)) *seqv1alpha1.SeqAlert {
	a := &seqv1alpha1.SeqAlert{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: testNamespace, Generation: 1},
		Spec: seqv1alpha1.SeqAlertSpec{
			ManagedSpec: seqv1alpha1.ManagedSpec{InstanceRef: seqv1alpha1.InstanceReference{Name: "seq"}},
		},
	}
	if mutate != nil {
		mutate(a)
	}
	return a
}

func newHarness(t *testing.T, adapter *memoryAdapter, opts []func(*fake.ClientBuilder), objs ...client.Object) *harness {
	t.Helper()
	builder := fake.NewClientBuilder().
		WithScheme(newScheme()).
		WithStatusSubresource(&seqv1alpha1.SeqAlert{}, &seqv1alpha1.SeqInstance{}).
		WithObjects(objs...)
	for _, o := range opts {
		o(builder)
	}
	c := builder.Build()

	conn, err := seq.NewClient(seq.ClientConfig{BaseURL: "http://seq.test"})
	require.NoError(t, err)

	h := &harness{
		t:         t,
		client:    c,
		recorder:  record.NewFakeRecorder(50),
		adapter:   adapter,
		connector: &fakeConnector{conn: conn},
		observer:  &countingObserver{},
	}
	h.engine = &alertEngine{
		Client:    c,
		Recorder:  h.recorder,
		Connector: h.connector,
		Adapter:   adapter,
		Intervals: testIntervals,
		Kind:      "SeqAlert",
		Observer:  h.observer,
	}
	return h
}

func (h *harness) get(name string) *seqv1alpha1.SeqAlert {
	h.t.Helper()
	a := &seqv1alpha1.SeqAlert{}
	require.NoError(h.t, h.client.Get(context.Background(), types.NamespacedName{Namespace: testNamespace, Name: name}, a))
	return a
}

func (h *harness) reconcile(ctx context.Context, name string) (ctrl.Result, error) {
	h.t.Helper()
	return h.engine.Reconcile(ctx, h.get(name))
}

func (h *harness) events() []string {
	var out []string
	for {
		select {
		case e := <-h.recorder.Events:
			out = append(out, e)
		default:
			return out
		}
	}
}

func hasEvent(events []string, reason string) bool {
	for _, e := range events {
		if strings.Contains(e, " "+reason+" ") {
			return true
		}
	}
	return false
}

func TestReconcile_BindsByFindWithoutCreating(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "k-42", Title: "ops-key"})
	h := newHarness(t, adapter, nil, instance(), alert("alpha", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Find = &seqv1alpha1.AlertFind{Title: "ops-key"}
	}))

	result, err := h.reconcile(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Steady, result.RequeueAfter)

	got := h.get("alpha")
	assert.Equal(t, "k-42", got.Status.ID)
	assert.Zero(t, adapter.count("create"))
	assert.True(t, status.IsTrue(got.Status.Conditions, status.ConditionReady))
	assert.True(t, status.IsTrue(got.Status.Conditions, status.ConditionHealthy))
	require.NotNil(t, got.Status.Info)
	assert.Equal(t, "ops-key", got.Status.Info.Title)
	assert.Equal(t, int64(1), got.Status.ObservedGeneration)
	assert.Contains(t, got.Finalizers, constants.FinalizerName)
	assert.True(t, hasEvent(h.events(), constants.EventReasonBound))
}

func TestReconcile_DriftClearsBinding(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("beta", func(a *seqv1alpha1.SeqAlert) {
		a.Finalizers = []string{constants.FinalizerName}
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("errors")}
		a.Status.ID = "k-7"
		a.Status.Info = &seqv1alpha1.AlertInfo{Title: "errors"}
	}))

	result, err := h.reconcile(context.Background(), "beta")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)

	got := h.get("beta")
	assert.Empty(t, got.Status.ID)
	assert.Nil(t, got.Status.Info)
	ready := status.Get(got.Status.Conditions, status.ConditionReady)
	require.NotNil(t, ready)
	assert.Equal(t, metav1.ConditionFalse, ready.Status)
	assert.Equal(t, "Drift", ready.Reason)
	assert.NotEmpty(t, ready.Message)
	assert.Equal(t, 1, h.observer.drifts)
	assert.True(t, hasEvent(h.events(), constants.EventReasonDrift))

	// The next reconciliation re-enters binding and re-creates the object.
	_, err = h.reconcile(context.Background(), "beta")
	require.NoError(t, err)
	got = h.get("beta")
	assert.NotEmpty(t, got.Status.ID)
	assert.NotEqual(t, "k-7", got.Status.ID)
	assert.Equal(t, 1, adapter.count("create"))
	assert.True(t, status.IsTrue(got.Status.Conditions, status.ConditionReady))
}

func TestReconcile_Idempotent(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("gamma", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("latency")}
	}))
	ctx := context.Background()

	_, err := h.reconcile(ctx, "gamma")
	require.NoError(t, err)
	first := h.get("gamma").Status

	_, err = h.reconcile(ctx, "gamma")
	require.NoError(t, err)
	second := h.get("gamma").Status

	assert.Equal(t, first, second)
	assert.Equal(t, 1, adapter.count("create"))
	assert.Zero(t, adapter.count("update"), "a converged object issues no writes")
}

func TestReconcile_PolicyWithoutCreateIsPendingAttach(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("delta", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyUpdate}
		a.Spec.Find = &seqv1alpha1.AlertFind{Title: "missing"}
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("missing")}
	}))

	result, err := h.reconcile(context.Background(), "delta")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Steady, result.RequeueAfter)

	got := h.get("delta")
	assert.Empty(t, got.Status.ID)
	assert.Zero(t, adapter.count("create"))
	ready := status.Get(got.Status.Conditions, status.ConditionReady)
	require.NotNil(t, ready)
	assert.Equal(t, constants.ReasonPendingAttach, ready.Reason)
	assert.True(t, status.IsTrue(got.Status.Conditions, status.ConditionHealthy))
	assert.Empty(t, h.observer.failures)
	assert.False(t, hasEvent(h.events(), constants.EventReasonReconcileFailed))
}

func TestReconcile_CreateUsesInitThenAppliesConf(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("epsilon", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Init = &seqv1alpha1.AlertConf{Title: ptr.To("initial")}
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("steady")}
	}))

	_, err := h.reconcile(context.Background(), "epsilon")
	require.NoError(t, err)

	require.NotNil(t, adapter.lastCreated)
	assert.Equal(t, "initial", *adapter.lastCreated.Title)
	assert.Equal(t, 1, adapter.count("update"))
	assert.Equal(t, "steady", h.get("epsilon").Status.Info.Title)

	events := h.events()
	assert.True(t, hasEvent(events, constants.EventReasonCreated))
	assert.True(t, hasEvent(events, constants.EventReasonUpdated))
}

func TestReconcile_NoUpdateWithoutPolicy(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-9", Title: "remote"})
	h := newHarness(t, adapter, nil, instance(), alert("zeta", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyCreate}
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("declared")}
		a.Status.ID = "alert-9"
	}))

	_, err := h.reconcile(context.Background(), "zeta")
	require.NoError(t, err)

	assert.Zero(t, adapter.count("update"))
	assert.Equal(t, "remote", h.get("zeta").Status.Info.Title)
}

func TestReconcile_MissingCreateConfiguration(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("eta", nil))

	result, err := h.reconcile(context.Background(), "eta")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)

	ready := status.Get(h.get("eta").Status.Conditions, status.ConditionReady)
	require.NotNil(t, ready)
	assert.Equal(t, "ConfigurationError", ready.Reason)
	assert.True(t, hasEvent(h.events(), constants.EventReasonReconcileFailed))
}

func TestReconcile_InvalidCreateConfiguration(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("theta", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Conf = &seqv1alpha1.AlertConf{Description: ptr.To("no title")}
	}))

	_, err := h.reconcile(context.Background(), "theta")
	require.NoError(t, err)
	assert.Zero(t, adapter.count("create"))
	assert.Equal(t, []string{"ConfigurationError"}, h.observer.failures)
}

func TestReconcile_InstanceUnresolved(t *testing.T) {
	h := newHarness(t, newMemoryAdapter(), nil, alert("iota", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("x")}
	}))

	result, err := h.reconcile(context.Background(), "iota")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)

	got := h.get("iota")
	assert.Equal(t, "InstanceUnresolved", status.Get(got.Status.Conditions, status.ConditionReady).Reason)
	assert.Equal(t, "InstanceUnresolved", status.Get(got.Status.Conditions, status.ConditionHealthy).Reason)
}

func TestReconcile_RemoteAPIError(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.CreateErr = &seq.APIError{StatusCode: 400, Method: "POST", Path: "/api/alerts", Message: "The query is invalid."}
	h := newHarness(t, adapter, nil, instance(), alert("kappa", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("broken")}
	}))

	result, err := h.reconcile(context.Background(), "kappa")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.RemoteError, result.RequeueAfter)

	ready := status.Get(h.get("kappa").Status.Conditions, status.ConditionReady)
	assert.Equal(t, "RemoteAPIError", ready.Reason)
	assert.Contains(t, ready.Message, "The query is invalid.")
}

func TestReconcile_UnauthorizedInvalidatesConnection(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.GetErr = &seq.APIError{StatusCode: 401, Method: "GET", Path: "/api/alerts/alert-1"}
	h := newHarness(t, adapter, nil, instance(), alert("lambda", func(a *seqv1alpha1.SeqAlert) {
		a.Status.ID = "alert-1"
	}))

	_, err := h.reconcile(context.Background(), "lambda")
	require.NoError(t, err)
	assert.Equal(t, []types.NamespacedName{{Namespace: testNamespace, Name: "seq"}}, h.connector.invalidated)
}

func TestReconcile_ConnectionUnavailable(t *testing.T) {
	h := newHarness(t, newMemoryAdapter(), nil, instance(), alert("mu", nil))
	h.connector.err = operatorerrors.WrapConnectionUnavailable(errors.New("strategy 0 (token): rejected"))

	result, err := h.reconcile(context.Background(), "mu")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)
	assert.Equal(t, "ConnectionUnavailable", status.Get(h.get("mu").Status.Conditions, status.ConditionReady).Reason)
}

func TestReconcile_UnmappedValueIsTerminal(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-3", Title: "x"})
	adapter.ObserveErr = fmt.Errorf("notification level %q: %w", "Critical", operatorerrors.ErrUnmappedValue)
	h := newHarness(t, adapter, nil, instance(), alert("nu", func(a *seqv1alpha1.SeqAlert) {
		a.Status.ID = "alert-3"
	}))

	_, err := h.reconcile(context.Background(), "nu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ctrlreconcile.TerminalError(nil)))
	assert.ErrorIs(t, err, operatorerrors.ErrUnmappedValue)
	assert.Equal(t, "MappingError", status.Get(h.get("nu").Status.Conditions, status.ConditionReady).Reason)
}

func TestReconcile_CanceledDoesNotRecordFailure(t *testing.T) {
	h := newHarness(t, newMemoryAdapter(), nil, instance(), alert("xi", func(a *seqv1alpha1.SeqAlert) {
		a.Spec.Conf = &seqv1alpha1.AlertConf{Title: ptr.To("x")}
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.reconcile(ctx, "xi")
	require.ErrorIs(t, err, context.Canceled)

	ready := status.Get(h.get("xi").Status.Conditions, status.ConditionReady)
	require.NotNil(t, ready)
	assert.Equal(t, constants.ReasonReconciling, ready.Reason)
	assert.Empty(t, h.observer.failures)
	assert.False(t, hasEvent(h.events(), constants.EventReasonReconcileFailed))
}

func TestReconcile_StatusWriteFailureDoesNotBlockRequeue(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.GetErr = errors.New("i/o timeout")
	failStatus := func(b *fake.ClientBuilder) {
		b.WithInterceptorFuncs(interceptor.Funcs{
			SubResourceUpdate: func(ctx context.Context, c client.Client, subResource string, obj client.Object, opts ...client.SubResourceUpdateOption) error {
				return apierrors.NewForbidden(seqv1alpha1.GroupVersion.WithResource("seqalerts").GroupResource(), obj.GetName(), errors.New("denied"))
			},
		})
	}
	h := newHarness(t, adapter, []func(*fake.ClientBuilder){failStatus}, instance(), alert("omicron", func(a *seqv1alpha1.SeqAlert) {
		a.Status.ID = "alert-1"
		a.Status.Conditions = []metav1.Condition{
			{Type: status.ConditionReady, Status: metav1.ConditionTrue, Reason: "Synced", LastTransitionTime: metav1.Now()},
			{Type: status.ConditionHealthy, Status: metav1.ConditionTrue, Reason: "Synced", LastTransitionTime: metav1.Now()},
		}
	}))

	result, err := h.reconcile(context.Background(), "omicron")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)
	assert.True(t, hasEvent(h.events(), constants.EventReasonReconcileFailed))
}

func deleting(a *seqv1alpha1.SeqAlert) {
	now := metav1.Now()
	a.DeletionTimestamp = &now
	a.Finalizers = []string{constants.FinalizerName}
}

func TestFinalize_DeletesWhenPermitted(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-5", Title: "x"})
	h := newHarness(t, adapter, nil, instance(), alert("pi", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyCreate, seqv1alpha1.PolicyUpdate, seqv1alpha1.PolicyDelete}
		a.Status.ID = "alert-5"
	}))

	_, err := h.reconcile(context.Background(), "pi")
	require.NoError(t, err)

	assert.Equal(t, 1, adapter.count("delete"))
	err = h.client.Get(context.Background(), types.NamespacedName{Namespace: testNamespace, Name: "pi"}, &seqv1alpha1.SeqAlert{})
	assert.True(t, apierrors.IsNotFound(err), "object is released once the finalizer is removed")
	assert.True(t, hasEvent(h.events(), constants.EventReasonDeleted))
}

func TestFinalize_LeaksWithoutDeletePolicy(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-5", Title: "x"})
	h := newHarness(t, adapter, nil, instance(), alert("rho", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Status.ID = "alert-5"
	}))

	_, err := h.reconcile(context.Background(), "rho")
	require.NoError(t, err)

	assert.Zero(t, adapter.count("delete"))
	assert.Equal(t, 1, adapter.count("get"))
	assert.True(t, hasEvent(h.events(), constants.EventReasonLeaked))
}

func TestFinalize_UnresolvedInstanceBlocksRemovalWithoutDeletePolicy(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-5", Title: "x"})
	h := newHarness(t, adapter, nil, alert("chi", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Status.ID = "alert-5"
	}))

	result, err := h.reconcile(context.Background(), "chi")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)

	got := h.get("chi")
	assert.Contains(t, got.Finalizers, constants.FinalizerName)
	assert.Equal(t, "InstanceUnresolved", status.Get(got.Status.Conditions, status.ConditionReady).Reason)
	assert.False(t, hasEvent(h.events(), constants.EventReasonLeaked))
}

func TestFinalize_AlreadyGoneWithoutDeletePolicyIsNotALeak(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("psi", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Status.ID = "alert-5"
	}))

	_, err := h.reconcile(context.Background(), "psi")
	require.NoError(t, err)
	assert.False(t, hasEvent(h.events(), constants.EventReasonLeaked))
}

func TestFinalize_AlreadyGone(t *testing.T) {
	adapter := newMemoryAdapter()
	h := newHarness(t, adapter, nil, instance(), alert("sigma", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyDelete}
		a.Status.ID = "alert-5"
	}))

	_, err := h.reconcile(context.Background(), "sigma")
	require.NoError(t, err)
	assert.Zero(t, adapter.count("delete"))
}

func TestFinalize_SkipAnnotation(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-5", Title: "x"})
	h := newHarness(t, adapter, nil, alert("tau", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Annotations = map[string]string{constants.AnnotationSkipFinalize: "true"}
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyDelete}
		a.Status.ID = "alert-5"
	}))

	_, err := h.reconcile(context.Background(), "tau")
	require.NoError(t, err)
	assert.Zero(t, adapter.count("delete"))
}

func TestFinalize_FailureBlocksRemoval(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-5", Title: "x"})
	adapter.DeleteErr = errors.New("connection reset by peer")
	h := newHarness(t, adapter, nil, instance(), alert("upsilon", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyDelete}
		a.Status.ID = "alert-5"
	}))

	result, err := h.reconcile(context.Background(), "upsilon")
	require.NoError(t, err)
	assert.Equal(t, testIntervals.Retry, result.RequeueAfter)

	got := h.get("upsilon")
	assert.Contains(t, got.Finalizers, constants.FinalizerName)
	assert.Equal(t, "TransientError", status.Get(got.Status.Conditions, status.ConditionReady).Reason)
}

func TestFinalize_ReleaseOnly(t *testing.T) {
	adapter := newMemoryAdapter(seq.Alert{ID: "alert-5", Title: "x"})
	h := newHarness(t, adapter, nil, alert("phi", func(a *seqv1alpha1.SeqAlert) {
		deleting(a)
		a.Spec.Policy = []seqv1alpha1.PolicyOperation{seqv1alpha1.PolicyDelete}
		a.Status.ID = "alert-5"
	}))
	h.engine.ReleaseOnly = true

	_, err := h.reconcile(context.Background(), "phi")
	require.NoError(t, err)
	assert.Zero(t, adapter.count("delete"))
	assert.False(t, hasEvent(h.events(), constants.EventReasonLeaked))
}
