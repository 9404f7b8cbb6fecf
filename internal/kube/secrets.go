// Package kube provides Kubernetes-specific utilities and helpers.
package kube

import (
	"context"
	"errors"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// ErrFieldMissing indicates that a Secret exists but lacks a required field.
var ErrFieldMissing = errors.New("secret field missing")

// ReadSecretFields loads the data of a Secret.
// A missing Secret is returned unwrapped from the client so callers can test it with
// apierrors.IsNotFound. Cross-namespace references are resolved by the caller.
func ReadSecretFields(ctx context.Context, c client.Reader, key types.NamespacedName) (map[string][]byte, error) {
	secret := &corev1.Secret{}
	if err := c.Get(ctx, key, secret); err != nil {
		return nil, fmt.Errorf("failed to get Secret %s: %w", key, err)
	}
	if secret.Data == nil {
		return map[string][]byte{}, nil
	}
	return secret.Data, nil
}

// RequireFields checks that every field is present and non-empty.
func RequireFields(data map[string][]byte, key types.NamespacedName, fields ...string) error {
	for _, f := range fields {
		if len(data[f]) == 0 {
			return fmt.Errorf("secret %s must contain %q: %w", key, f, ErrFieldMissing)
		}
	}
	return nil
}

// WriteSecretFields creates the Secret or merges fields into an existing one.
// When owner is set, the Secret is garbage-collected with it.
func WriteSecretFields(
	ctx context.Context,
	c client.Client,
	scheme *runtime.Scheme,
	owner client.Object,
	key types.NamespacedName,
	fields map[string][]byte,
	labels map[string]string,
) error {
	secret := &corev1.Secret{}
	secret.Name = key.Name
	secret.Namespace = key.Namespace

	_, err := controllerutil.CreateOrUpdate(ctx, c, secret, func() error {
		if secret.Labels == nil {
			secret.Labels = map[string]string{}
		}
		for k, v := range labels {
			secret.Labels[k] = v
		}
		if secret.Data == nil {
			secret.Data = map[string][]byte{}
		}
		for k, v := range fields {
			secret.Data[k] = v
		}
		if secret.ResourceVersion == "" {
			secret.Type = corev1.SecretTypeOpaque
		}
		if owner != nil {
			return controllerutil.SetOwnerReference(owner, secret, scheme)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write Secret %s: %w", key, err)
	}
	return nil
}
