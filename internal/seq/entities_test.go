package seq_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-tec/seq-operator/internal/constants"
	"github.com/dc-tec/seq-operator/internal/seq"
	"github.com/dc-tec/seq-operator/internal/seq/seqtest"
)

func TestEntities_AgainstFakeServer(t *testing.T) {
	server := seqtest.New(t)
	adminID := server.AddUser("admin", "primary", false)
	server.AddToken("admintoken", adminID)

	client, err := seq.NewClient(seq.ClientConfig{BaseURL: server.URL, APIKey: "admintoken"})
	require.NoError(t, err)
	ctx := context.Background()

	root, err := client.Root(ctx)
	require.NoError(t, err)
	assert.Equal(t, seqtest.Version, root.Version)

	tmpl, err := client.SignalTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Inferred", tmpl.Grouping)

	tmpl.Title = "Errors"
	tmpl.Filters = []seq.SignalFilter{{Filter: "@Level = 'Error'"}}
	created, err := client.CreateSignal(ctx, tmpl)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	shared, err := client.ListSignals(ctx, "")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "Errors", shared[0].Title)

	created.Description = "all errors"
	require.NoError(t, client.UpdateSignal(ctx, created))
	got, err := client.GetSignal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "all errors", got.Description)

	require.NoError(t, client.DeleteSignal(ctx, created.ID))
	_, err = client.GetSignal(ctx, created.ID)
	assert.True(t, seq.IsNotFound(err))
}

func TestAPIKeyTokenOnlyReturnedOnCreate(t *testing.T) {
	server := seqtest.New(t)
	adminID := server.AddUser("admin", "primary", false)
	server.AddToken("admintoken", adminID)

	client, err := seq.NewClient(seq.ClientConfig{BaseURL: server.URL, APIKey: "admintoken"})
	require.NoError(t, err)
	ctx := context.Background()

	created, err := client.CreateAPIKey(ctx, &seq.APIKey{Title: "ingest", AssignedPermissions: []string{"Ingest"}})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	assert.NotEmpty(t, created.TokenPrefix)

	got, err := client.GetAPIKey(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Token)
	assert.Equal(t, created.TokenPrefix, got.TokenPrefix)
}

func TestSettingsAndPasswordRotation(t *testing.T) {
	server := seqtest.New(t)
	server.AddUser("admin", "firstrun", true)

	client, err := seq.NewClient(seq.ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)
	ctx := context.Background()

	err = client.Login(ctx, "admin", "primary")
	require.True(t, seq.IsUnauthorized(err), "got %v", err)

	require.NoError(t, client.Login(ctx, "admin", "firstrun"))
	require.NoError(t, client.ChangePassword(ctx, "primary"))
	assert.Equal(t, "primary", server.Password("admin"))

	require.NoError(t, client.PutSetting(ctx, constants.SettingInstanceTitle, "Production"))
	s, err := client.GetSetting(ctx, constants.SettingInstanceTitle)
	require.NoError(t, err)
	assert.JSONEq(t, `"Production"`, string(s.Value))
}
