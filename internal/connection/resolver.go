package connection

import (
	"context"
	"errors"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/constants"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
	"github.com/dc-tec/seq-operator/internal/kube"
	"github.com/dc-tec/seq-operator/internal/logging"
	"github.com/dc-tec/seq-operator/internal/seq"
)

type strategyKind string

const (
	strategyToken strategyKind = "token"
	strategyLogin strategyKind = "login"
)

type strategy struct {
	kind     strategyKind
	secret   types.NamespacedName
	optional bool
}

type target struct {
	endpoint   string
	caSecret   *types.NamespacedName
	strategies []strategy
}

// Resolver turns a SeqInstance into a verified connection by trying its authentication
// strategies strictly in order.
type Resolver struct {
	Reader   client.Reader
	Clients  *seq.ClientManager
	Recorder record.EventRecorder
}

// Resolve implements ResolveFunc.
func (r *Resolver) Resolve(ctx context.Context, key types.NamespacedName) (*seq.Client, error) {
	logger := log.FromContext(ctx).WithValues("instance", key.String())

	instance := &seqv1alpha1.SeqInstance{}
	if err := r.Reader.Get(ctx, key, instance); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, operatorerrors.WrapInstanceUnresolved(fmt.Errorf("SeqInstance %s not found", key))
		}
		return nil, operatorerrors.WrapKubernetesAPI(fmt.Errorf("failed to get SeqInstance %s: %w", key, err))
	}

	t, err := targetFor(instance)
	if err != nil {
		connectionResolutionFailuresTotal.WithLabelValues(key.Namespace, key.Name).Inc()
		return nil, operatorerrors.WrapConnectionUnavailable(err)
	}

	var caCert []byte
	if t.caSecret != nil {
		data, err := kube.ReadSecretFields(ctx, r.Reader, *t.caSecret)
		if err == nil {
			err = kube.RequireFields(data, *t.caSecret, seqv1alpha1.SecretKeyCACert)
		}
		if err != nil {
			connectionResolutionFailuresTotal.WithLabelValues(key.Namespace, key.Name).Inc()
			return nil, operatorerrors.WrapConnectionUnavailable(operatorerrors.WrapPermanentConfig(err))
		}
		caCert = data[seqv1alpha1.SecretKeyCACert]
	}

	var errs []error
	for i, s := range t.strategies {
		var conn *seq.Client
		switch s.kind {
		case strategyToken:
			conn, err = r.tryToken(ctx, key, t.endpoint, caCert, s)
		case strategyLogin:
			conn, err = r.tryLogin(ctx, instance, t.endpoint, caCert, s)
		}
		if err == nil {
			logger.V(1).Info("Connection verified", "strategy", string(s.kind), "secret", s.secret.Name)
			return conn, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if s.optional && isMissingMaterial(err) {
			logger.V(1).Info("Skipping optional strategy without credential material",
				"strategy", string(s.kind), "secret", s.secret.Name)
			continue
		}
		if isMissingMaterial(err) {
			err = operatorerrors.WrapPermanentConfig(err)
		}
		errs = append(errs, fmt.Errorf("strategy %d (%s from Secret %s): %w", i, s.kind, s.secret.Name, err))
	}

	connectionResolutionFailuresTotal.WithLabelValues(key.Namespace, key.Name).Inc()
	if len(errs) == 0 {
		return nil, operatorerrors.WrapConnectionUnavailable(
			fmt.Errorf("no usable authentication strategy for SeqInstance %s", key))
	}
	return nil, operatorerrors.WrapConnectionUnavailable(errors.Join(errs...))
}

func targetFor(instance *seqv1alpha1.SeqInstance) (*target, error) {
	ns := instance.Namespace
	secretKey := func(ref corev1.LocalObjectReference) types.NamespacedName {
		return types.NamespacedName{Namespace: ns, Name: ref.Name}
	}

	if remote := instance.Spec.Remote; remote != nil {
		t := &target{endpoint: remote.URL}
		if remote.CASecretRef != nil {
			k := secretKey(*remote.CASecretRef)
			t.caSecret = &k
		}
		for _, a := range remote.Auth {
			switch {
			case a.Token != nil:
				t.strategies = append(t.strategies, strategy{kind: strategyToken, secret: secretKey(a.Token.SecretRef), optional: a.Token.Optional})
			case a.Login != nil:
				t.strategies = append(t.strategies, strategy{kind: strategyLogin, secret: secretKey(a.Login.SecretRef), optional: a.Login.Optional})
			}
		}
		return t, nil
	}

	dep := instance.Status.Deployment
	if dep == nil || dep.Endpoint == "" {
		return nil, fmt.Errorf("SeqInstance %s/%s declares no remote and has no deployed endpoint", ns, instance.Name)
	}
	t := &target{endpoint: dep.Endpoint}
	if dep.TokenSecretRef != nil {
		t.strategies = append(t.strategies, strategy{kind: strategyToken, secret: secretKey(*dep.TokenSecretRef)})
	}
	if dep.LoginSecretRef != nil {
		t.strategies = append(t.strategies, strategy{kind: strategyLogin, secret: secretKey(*dep.LoginSecretRef)})
	}
	return t, nil
}

func isMissingMaterial(err error) bool {
	return apierrors.IsNotFound(err) || errors.Is(err, kube.ErrFieldMissing)
}

func (r *Resolver) tryToken(ctx context.Context, key types.NamespacedName, endpoint string, caCert []byte, s strategy) (*seq.Client, error) {
	data, err := kube.ReadSecretFields(ctx, r.Reader, s.secret)
	if err != nil {
		return nil, err
	}
	if err := kube.RequireFields(data, s.secret, seqv1alpha1.SecretKeyToken); err != nil {
		return nil, err
	}

	conn, err := r.Clients.NewClient(key.String(), endpoint, caCert, string(data[seqv1alpha1.SecretKeyToken]))
	if err != nil {
		return nil, operatorerrors.WrapPermanentConfig(err)
	}
	if err := conn.Probe(ctx); err != nil {
		return nil, fmt.Errorf("token rejected or server unreachable: %w", err)
	}
	return conn, nil
}

func (r *Resolver) tryLogin(ctx context.Context, instance *seqv1alpha1.SeqInstance, endpoint string, caCert []byte, s strategy) (*seq.Client, error) {
	data, err := kube.ReadSecretFields(ctx, r.Reader, s.secret)
	if err != nil {
		return nil, err
	}
	if err := kube.RequireFields(data, s.secret, seqv1alpha1.SecretKeyUsername, seqv1alpha1.SecretKeyPassword); err != nil {
		return nil, err
	}
	username := string(data[seqv1alpha1.SecretKeyUsername])
	password := string(data[seqv1alpha1.SecretKeyPassword])

	instanceKey := types.NamespacedName{Namespace: instance.Namespace, Name: instance.Name}
	conn, err := r.Clients.NewClient(instanceKey.String(), endpoint, caCert, "")
	if err != nil {
		return nil, operatorerrors.WrapPermanentConfig(err)
	}

	loginErr := conn.Login(ctx, username, password)
	if loginErr != nil {
		firstRun := string(data[seqv1alpha1.SecretKeyFirstRun])
		if !seq.IsUnauthorized(loginErr) || firstRun == "" {
			return nil, fmt.Errorf("login as %s failed: %w", username, loginErr)
		}
		if err := r.rotateFirstRun(ctx, instance, conn, username, firstRun, password); err != nil {
			return nil, err
		}
	}

	if err := conn.Probe(ctx); err != nil {
		return nil, fmt.Errorf("session for %s could not be verified: %w", username, err)
	}
	return conn, nil
}

// rotateFirstRun logs in with the first-run password and replaces it with the primary one.
// A failed rotation fails the strategy; the next resolution tries again.
func (r *Resolver) rotateFirstRun(ctx context.Context, instance *seqv1alpha1.SeqInstance, conn *seq.Client, username, firstRun, password string) error {
	logger := log.FromContext(ctx).WithValues("instance", instance.Namespace+"/"+instance.Name)

	if err := conn.Login(ctx, username, firstRun); err != nil {
		return fmt.Errorf("login as %s rejected with both the primary and the first-run password: %w", username, err)
	}
	if err := conn.ChangePassword(ctx, password); err != nil {
		return fmt.Errorf("failed to rotate first-run password of %s: %w", username, err)
	}

	logging.LogAuditEvent(logger, logging.AuditEventCredentialRotated, map[string]string{
		"namespace": instance.Namespace,
		"name":      instance.Name,
		"username":  username,
	})
	credentialRotationsTotal.WithLabelValues(instance.Namespace, instance.Name).Inc()
	if r.Recorder != nil {
		r.Recorder.Eventf(instance, corev1.EventTypeNormal, constants.EventReasonCredentialRotated,
			"First-run password of %s replaced by the primary password", username)
	}
	return nil
}
