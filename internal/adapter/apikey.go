package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	"github.com/dc-tec/seq-operator/internal/kube"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// APIKey manages Seq API keys.
type APIKey struct {
	// Client writes the token Secret of newly created keys.
	Client client.Client
	Scheme *runtime.Scheme
}

var _ reconcile.Adapter[seqv1alpha1.APIKeyConf, seqv1alpha1.APIKeyFind, seqv1alpha1.APIKeyInfo, seq.APIKey] = (*APIKey)(nil)

func (a *APIKey) Find(ctx context.Context, s reconcile.Scope, find *seqv1alpha1.APIKeyFind) (string, error) {
	if find.Title == "" {
		return "", nil
	}
	keys, err := s.Conn.ListAPIKeys(ctx, find.OwnerID)
	if err != nil {
		return "", err
	}
	return findByTitle(keys, find.Title, func(k *seq.APIKey) (string, string) { return k.ID, k.Title }), nil
}

func (a *APIKey) ValidateCreate(conf *seqv1alpha1.APIKeyConf) error {
	if conf.Title == nil || *conf.Title == "" {
		return errors.New("title is required to create an API key")
	}
	return nil
}

func (a *APIKey) Create(ctx context.Context, s reconcile.Scope, conf *seqv1alpha1.APIKeyConf) (string, error) {
	doc, err := s.Conn.APIKeyTemplate(ctx)
	if err != nil {
		return "", err
	}
	if err := applyAPIKeyConf(doc, conf); err != nil {
		return "", err
	}
	created, err := s.Conn.CreateAPIKey(ctx, doc)
	if err != nil {
		return "", err
	}

	if conf.TokenSecretRef != nil {
		if err := a.writeToken(ctx, s, conf.TokenSecretRef.Name, created.Token); err != nil {
			// The token is only returned on create.
			if delErr := s.Conn.DeleteAPIKey(ctx, created.ID); delErr != nil {
				log.FromContext(ctx).Error(delErr, "Failed to delete API key after its token could not be stored", "id", created.ID)
			}
			return "", err
		}
	}
	return created.ID, nil
}

func (a *APIKey) writeToken(ctx context.Context, s reconcile.Scope, name, token string) error {
	if token == "" {
		return fmt.Errorf("server returned no token for the new API key")
	}
	key := types.NamespacedName{Namespace: s.Object.GetNamespace(), Name: name}
	labels := map[string]string{
		constants.LabelAppManagedBy: constants.LabelValueAppManagedBySeqOperator,
	}
	if o, ok := s.Object.(interface{ InstanceKey() types.NamespacedName }); ok {
		labels[constants.LabelSeqInstance] = o.InstanceKey().Name
	}
	return kube.WriteSecretFields(ctx, a.Client, a.Scheme, s.Object, key,
		map[string][]byte{seqv1alpha1.SecretKeyToken: []byte(token)}, labels)
}

func (a *APIKey) Get(ctx context.Context, s reconcile.Scope, id string) (*seq.APIKey, error) {
	return orNil(s.Conn.GetAPIKey(ctx, id))
}

func (a *APIKey) Observe(remote *seq.APIKey) (*seqv1alpha1.APIKeyInfo, error) {
	perms, err := permissions.declaredAll(remote.AssignedPermissions)
	if err != nil {
		return nil, err
	}
	level, err := logLevels.declared(remote.InputSettings.MinimumLevel)
	if err != nil {
		return nil, err
	}
	var props map[string]string
	if len(remote.InputSettings.AppliedProperties) > 0 {
		props = make(map[string]string, len(remote.InputSettings.AppliedProperties))
		for _, p := range remote.InputSettings.AppliedProperties {
			props[p.Name] = p.Value
		}
	}
	return &seqv1alpha1.APIKeyInfo{
		Title:               remote.Title,
		OwnerID:             remote.OwnerID,
		Permissions:         perms,
		MinimumLevel:        level,
		Filter:              remote.InputSettings.Filter,
		AppliedProperties:   props,
		UseServerTimestamps: remote.InputSettings.UseServerTimestamps,
		TokenPrefix:         remote.TokenPrefix,
	}, nil
}

// Seq does not guarantee the order of permissions or applied properties.
var apiKeyDiffOptions = []cmp.Option{
	cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	cmpopts.SortSlices(func(a, b seq.Property) bool { return a.Name < b.Name }),
}

func (a *APIKey) Update(ctx context.Context, s reconcile.Scope, current *seq.APIKey, conf *seqv1alpha1.APIKeyConf) (bool, error) {
	desired := *current
	desired.AssignedPermissions = append([]string(nil), current.AssignedPermissions...)
	desired.InputSettings.AppliedProperties = append([]seq.Property(nil), current.InputSettings.AppliedProperties...)
	if err := applyAPIKeyConf(&desired, conf); err != nil {
		return false, err
	}
	if !differs(ctx, current.ID, current, &desired, apiKeyDiffOptions...) {
		return false, nil
	}
	if err := s.Conn.UpdateAPIKey(ctx, &desired); err != nil {
		return false, err
	}
	return true, nil
}

func (a *APIKey) Delete(ctx context.Context, s reconcile.Scope, id string) error {
	return s.Conn.DeleteAPIKey(ctx, id)
}

func applyAPIKeyConf(doc *seq.APIKey, conf *seqv1alpha1.APIKeyConf) error {
	set(&doc.Title, conf.Title)
	set(&doc.OwnerID, conf.OwnerID)
	set(&doc.InputSettings.Filter, conf.Filter)
	set(&doc.InputSettings.UseServerTimestamps, conf.UseServerTimestamps)

	if conf.Permissions != nil {
		perms, err := permissions.remoteAll(conf.Permissions)
		if err != nil {
			return err
		}
		doc.AssignedPermissions = perms
	}
	if conf.MinimumLevel != nil {
		level, err := logLevels.remote(*conf.MinimumLevel)
		if err != nil {
			return err
		}
		doc.InputSettings.MinimumLevel = level
	}
	if conf.AppliedProperties != nil {
		names := make([]string, 0, len(conf.AppliedProperties))
		for name := range conf.AppliedProperties {
			names = append(names, name)
		}
		sort.Strings(names)
		props := make([]seq.Property, 0, len(names))
		for _, name := range names {
			props = append(props, seq.Property{Name: name, Value: conf.AppliedProperties[name]})
		}
		doc.InputSettings.AppliedProperties = props
	}
	return nil
}
