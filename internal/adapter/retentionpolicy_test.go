package adapter

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
	"github.com/dc-tec/seq-operator/internal/seq"
)

func signalObject(name, id string) *seqv1alpha1.SeqSignal {
	sig := &seqv1alpha1.SeqSignal{ObjectMeta: objectMeta(name)}
	sig.Status.ID = id
	return sig
}

func retentionAdapter(objs ...client.Object) *RetentionPolicy {
	return &RetentionPolicy{Reader: fake.NewClientBuilder().WithScheme(testScheme()).WithObjects(objs...).Build()}
}

func retentionObject() *seqv1alpha1.SeqRetentionPolicy {
	return &seqv1alpha1.SeqRetentionPolicy{ObjectMeta: objectMeta("debug-retention")}
}

func TestRetentionPolicy_CreateWithSignalRef(t *testing.T) {
	server, conn := newServer(t)
	a := retentionAdapter(signalObject("debug", "signal-42"))
	ctx := context.Background()
	s := scopeFor(conn, retentionObject())

	conf := &seqv1alpha1.RetentionPolicyConf{
		RetentionTime: &metav1.Duration{Duration: 72 * time.Hour},
		SignalRef:     &corev1.LocalObjectReference{Name: "debug"},
	}
	require.NoError(t, a.ValidateCreate(conf))
	id, err := a.Create(ctx, s, conf)
	require.NoError(t, err)

	var stored seq.RetentionPolicy
	require.True(t, server.Get(constants.APIPathRetentionPolicies, id, &stored))
	assert.Equal(t, "3.00:00:00", stored.RetentionTime)
	assert.Equal(t, "signal-42", stored.SignalID())

	found, err := a.Find(ctx, s, &seqv1alpha1.RetentionPolicyFind{SignalID: ptr.To("signal-42")})
	require.NoError(t, err)
	assert.Equal(t, id, found)

	current, err := a.Get(ctx, s, id)
	require.NoError(t, err)
	info, err := a.Observe(current)
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, info.RetentionTime.Duration)
	assert.Equal(t, "signal-42", info.SignalID)
}

func TestRetentionPolicy_UnboundSignalIsPrerequisite(t *testing.T) {
	_, conn := newServer(t)
	ctx := context.Background()
	s := scopeFor(conn, retentionObject())
	conf := &seqv1alpha1.RetentionPolicyConf{
		RetentionTime: &metav1.Duration{Duration: time.Hour},
		SignalRef:     &corev1.LocalObjectReference{Name: "debug"},
	}

	_, err := retentionAdapter(signalObject("debug", "")).Create(ctx, s, conf)
	require.ErrorIs(t, err, operatorerrors.ErrPermanentPrerequisitesMissing)
	assert.Equal(t, operatorerrors.KindRetryable, operatorerrors.Classify(err))

	_, err = retentionAdapter().Create(ctx, s, conf)
	require.ErrorIs(t, err, operatorerrors.ErrPermanentPrerequisitesMissing)
}

func TestRetentionPolicy_UpdateComparesDurations(t *testing.T) {
	server, conn := newServer(t)
	id := server.Seed(constants.APIPathRetentionPolicies, seq.RetentionPolicy{RetentionTime: "1.00:00:00.0000000"})
	a := retentionAdapter()
	ctx := context.Background()
	s := scopeFor(conn, retentionObject())

	current, err := a.Get(ctx, s, id)
	require.NoError(t, err)

	changed, err := a.Update(ctx, s, current, &seqv1alpha1.RetentionPolicyConf{RetentionTime: &metav1.Duration{Duration: 24 * time.Hour}})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, server.Calls(http.MethodPut, constants.APIPathRetentionPolicies))

	changed, err = a.Update(ctx, s, current, &seqv1alpha1.RetentionPolicyConf{RetentionTime: &metav1.Duration{Duration: 48 * time.Hour}})
	require.NoError(t, err)
	assert.True(t, changed)

	var stored seq.RetentionPolicy
	require.True(t, server.Get(constants.APIPathRetentionPolicies, id, &stored))
	assert.Equal(t, "2.00:00:00", stored.RetentionTime)
	assert.Empty(t, stored.SignalID(), "an undeclared signal is left untouched")
}

func TestRetentionPolicy_ValidateCreate(t *testing.T) {
	a := &RetentionPolicy{}
	assert.Error(t, a.ValidateCreate(&seqv1alpha1.RetentionPolicyConf{}))
	assert.Error(t, a.ValidateCreate(&seqv1alpha1.RetentionPolicyConf{RetentionTime: &metav1.Duration{}}))
}

func TestRetentionPolicy_FindWithoutCriteria(t *testing.T) {
	_, conn := newServer(t)
	got, err := retentionAdapter().Find(context.Background(), scopeFor(conn, retentionObject()), &seqv1alpha1.RetentionPolicyFind{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRetentionPolicy_UpdateKeepsUnmodeledFields(t *testing.T) {
	server, conn := newServer(t)
	id := server.Seed(constants.APIPathRetentionPolicies, map[string]any{
		"RetentionTime":           "1.00:00:00",
		"RemovedSignalExpression": nil,
		"LastApplied":             "2026-10-01T00:00:00Z",
	})
	a := retentionAdapter()
	ctx := context.Background()
	s := scopeFor(conn, retentionObject())

	current, err := a.Get(ctx, s, id)
	require.NoError(t, err)

	changed, err := a.Update(ctx, s, current, &seqv1alpha1.RetentionPolicyConf{RetentionTime: &metav1.Duration{Duration: 7 * 24 * time.Hour}})
	require.NoError(t, err)
	require.True(t, changed)

	var stored map[string]any
	require.True(t, server.Get(constants.APIPathRetentionPolicies, id, &stored))
	assert.Equal(t, "7.00:00:00", stored["RetentionTime"])
	assert.Equal(t, "2026-10-01T00:00:00Z", stored["LastApplied"])
}
