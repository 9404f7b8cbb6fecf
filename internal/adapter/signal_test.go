package adapter

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	"github.com/dc-tec/seq-operator/internal/seq"
)

func TestSignal_Lifecycle(t *testing.T) {
	server, conn := newServer(t)
	ctx := context.Background()
	s := scopeFor(conn, &seqv1alpha1.SeqSignal{ObjectMeta: objectMeta("errors")})
	a := Signal{}

	conf := &seqv1alpha1.SignalConf{
		Title:             ptr.To("Errors"),
		Filters:           []seqv1alpha1.SignalFilter{{Filter: "@Level = 'Error'", Description: "errors"}},
		Columns:           []string{"Application"},
		Grouping:          ptr.To(seqv1alpha1.SignalGroupingExplicit),
		ExplicitGroupName: ptr.To("Levels"),
	}
	require.NoError(t, a.ValidateCreate(conf))

	id, err := a.Create(ctx, s, conf)
	require.NoError(t, err)

	found, err := a.Find(ctx, s, &seqv1alpha1.SignalFind{Title: "Errors"})
	require.NoError(t, err)
	assert.Equal(t, id, found)

	current, err := a.Get(ctx, s, id)
	require.NoError(t, err)
	info, err := a.Observe(current)
	require.NoError(t, err)
	assert.Equal(t, seqv1alpha1.SignalGroupingExplicit, info.Grouping)
	assert.Equal(t, "Levels", info.ExplicitGroupName)
	assert.Equal(t, []string{"Application"}, info.Columns)
	assert.Equal(t, conf.Filters, info.Filters)

	changed, err := a.Update(ctx, s, current, conf)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = a.Update(ctx, s, current, &seqv1alpha1.SignalConf{Grouping: ptr.To(seqv1alpha1.SignalGroupingNone)})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, server.Calls(http.MethodPut, constants.APIPathSignals))

	var stored seq.Signal
	require.True(t, server.Get(constants.APIPathSignals, id, &stored))
	assert.Equal(t, "None", stored.Grouping)
}

func TestSignal_ValidateCreate(t *testing.T) {
	a := Signal{}
	assert.Error(t, a.ValidateCreate(&seqv1alpha1.SignalConf{}))
	assert.Error(t, a.ValidateCreate(&seqv1alpha1.SignalConf{
		Title:    ptr.To("Errors"),
		Grouping: ptr.To(seqv1alpha1.SignalGroupingExplicit),
	}))
	assert.NoError(t, a.ValidateCreate(&seqv1alpha1.SignalConf{Title: ptr.To("Errors")}))
}

func TestSignal_UpdateKeepsUnmodeledFields(t *testing.T) {
	server, conn := newServer(t)
	id := server.Seed(constants.APIPathSignals, map[string]any{
		"Title":     "Errors",
		"Filters":   []any{map[string]any{"Filter": "@Level = 'Error'", "FilterNonStrict": "Error"}},
		"Columns":   []any{},
		"Grouping":  "Inferred",
		"ProjectId": "project-1",
	})
	ctx := context.Background()
	s := scopeFor(conn, &seqv1alpha1.SeqSignal{ObjectMeta: objectMeta("errors")})
	a := Signal{}

	current, err := a.Get(ctx, s, id)
	require.NoError(t, err)

	changed, err := a.Update(ctx, s, current, &seqv1alpha1.SignalConf{Description: ptr.To("all errors")})
	require.NoError(t, err)
	require.True(t, changed)

	var stored map[string]any
	require.True(t, server.Get(constants.APIPathSignals, id, &stored))
	assert.Equal(t, "all errors", stored["Description"])
	assert.Equal(t, "project-1", stored["ProjectId"])
	assert.Equal(t, []any{map[string]any{"Filter": "@Level = 'Error'", "FilterNonStrict": "Error"}}, stored["Filters"])
}
