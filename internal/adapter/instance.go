package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// ServerState is the observed configuration of a Seq server.
type ServerState struct {
	Version                       string
	InstanceTitle                 string
	RequireAPIKeyForWritingEvents bool
	MinimumPasswordLength         int32
	ThemeStyles                   string
	IsAuthenticationEnabled       bool
}

// settingFields binds each managed setting to its field in ServerState.
func (st *ServerState) settingFields() map[string]any {
	return map[string]any{
		constants.SettingInstanceTitle:                 &st.InstanceTitle,
		constants.SettingRequireAPIKeyForWritingEvents: &st.RequireAPIKeyForWritingEvents,
		constants.SettingMinimumPasswordLength:         &st.MinimumPasswordLength,
		constants.SettingThemeStyles:                   &st.ThemeStyles,
		constants.SettingIsAuthenticationEnabled:       &st.IsAuthenticationEnabled,
	}
}

// Instance manages the settings of the server a SeqInstance points at. The server
// always exists: it is bound by Find and never created or deleted.
type Instance struct{}

var _ reconcile.Adapter[seqv1alpha1.InstanceConf, seqv1alpha1.InstanceFind, seqv1alpha1.InstanceInfo, ServerState] = Instance{}

func (Instance) Find(context.Context, reconcile.Scope, *seqv1alpha1.InstanceFind) (string, error) {
	return constants.InstanceObjectID, nil
}

func (Instance) ValidateCreate(*seqv1alpha1.InstanceConf) error { return nil }

func (Instance) Create(context.Context, reconcile.Scope, *seqv1alpha1.InstanceConf) (string, error) {
	return "", errors.New("a Seq server cannot be created through its API")
}

func (Instance) Get(ctx context.Context, s reconcile.Scope, id string) (*ServerState, error) {
	if id != constants.InstanceObjectID {
		return nil, nil
	}

	root, err := s.Conn.Root(ctx)
	if err != nil {
		return nil, err
	}
	state := &ServerState{Version: root.Version}

	for name, field := range state.settingFields() {
		setting, err := s.Conn.GetSetting(ctx, name)
		if err != nil {
			if seq.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if len(setting.Value) == 0 || string(setting.Value) == "null" {
			continue
		}
		if err := json.Unmarshal(setting.Value, field); err != nil {
			return nil, fmt.Errorf("failed to decode setting %s: %w", name, err)
		}
	}
	return state, nil
}

func (Instance) Observe(remote *ServerState) (*seqv1alpha1.InstanceInfo, error) {
	return &seqv1alpha1.InstanceInfo{
		Version:                       remote.Version,
		InstanceTitle:                 remote.InstanceTitle,
		RequireAPIKeyForWritingEvents: remote.RequireAPIKeyForWritingEvents,
		MinimumPasswordLength:         remote.MinimumPasswordLength,
		ThemeStyles:                   remote.ThemeStyles,
		IsAuthenticationEnabled:       remote.IsAuthenticationEnabled,
	}, nil
}

// Update writes each declared setting that differs, one request per setting.
func (Instance) Update(ctx context.Context, s reconcile.Scope, current *ServerState, conf *seqv1alpha1.InstanceConf) (bool, error) {
	desired := *current
	set(&desired.InstanceTitle, conf.InstanceTitle)
	set(&desired.RequireAPIKeyForWritingEvents, conf.RequireAPIKeyForWritingEvents)
	set(&desired.MinimumPasswordLength, conf.MinimumPasswordLength)
	set(&desired.ThemeStyles, conf.ThemeStyles)

	writes := []struct {
		name   string
		differ bool
		value  any
	}{
		{constants.SettingInstanceTitle, desired.InstanceTitle != current.InstanceTitle, desired.InstanceTitle},
		{constants.SettingRequireAPIKeyForWritingEvents, desired.RequireAPIKeyForWritingEvents != current.RequireAPIKeyForWritingEvents, desired.RequireAPIKeyForWritingEvents},
		{constants.SettingMinimumPasswordLength, desired.MinimumPasswordLength != current.MinimumPasswordLength, desired.MinimumPasswordLength},
		{constants.SettingThemeStyles, desired.ThemeStyles != current.ThemeStyles, desired.ThemeStyles},
	}

	if !differs(ctx, constants.InstanceObjectID, current, &desired) {
		return false, nil
	}
	for _, w := range writes {
		if !w.differ {
			continue
		}
		if err := s.Conn.PutSetting(ctx, w.name, w.value); err != nil {
			return false, fmt.Errorf("failed to update setting %s: %w", w.name, err)
		}
	}
	return true, nil
}

// Delete is a no-op: removing a SeqInstance never touches the server.
func (Instance) Delete(context.Context, reconcile.Scope, string) error { return nil }
