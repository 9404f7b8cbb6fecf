package adapter

import (
	"context"
	"errors"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// RetentionPolicy manages Seq retention policies.
type RetentionPolicy struct {
	// Reader resolves signalRef to the ID of a bound SeqSignal.
	Reader client.Reader
}

var _ reconcile.Adapter[seqv1alpha1.RetentionPolicyConf, seqv1alpha1.RetentionPolicyFind, seqv1alpha1.RetentionPolicyInfo, seq.RetentionPolicy] = (*RetentionPolicy)(nil)

// signal resolves the signal selector of a declaration. ok is false when neither
// signalId nor signalRef is set; signalRef takes precedence.
func (a *RetentionPolicy) signal(ctx context.Context, s reconcile.Scope, id *string, ref *corev1.LocalObjectReference) (string, bool, error) {
	if ref != nil {
		key := types.NamespacedName{Namespace: s.Object.GetNamespace(), Name: ref.Name}
		sig := &seqv1alpha1.SeqSignal{}
		if err := a.Reader.Get(ctx, key, sig); err != nil {
			if apierrors.IsNotFound(err) {
				return "", false, operatorerrors.WrapPermanentPrerequisitesMissing(fmt.Errorf("SeqSignal %s not found", key))
			}
			return "", false, operatorerrors.WrapKubernetesAPI(fmt.Errorf("failed to get SeqSignal %s: %w", key, err))
		}
		if sig.Status.ID == "" {
			return "", false, operatorerrors.WrapPermanentPrerequisitesMissing(fmt.Errorf("SeqSignal %s is not bound yet", key))
		}
		return sig.Status.ID, true, nil
	}
	if id != nil {
		return *id, true, nil
	}
	return "", false, nil
}

func (a *RetentionPolicy) Find(ctx context.Context, s reconcile.Scope, find *seqv1alpha1.RetentionPolicyFind) (string, error) {
	signalID, ok, err := a.signal(ctx, s, find.SignalID, find.SignalRef)
	if err != nil || !ok {
		return "", err
	}
	policies, err := s.Conn.ListRetentionPolicies(ctx)
	if err != nil {
		return "", err
	}
	for i := range policies {
		if policies[i].SignalID() == signalID {
			return policies[i].ID, nil
		}
	}
	return "", nil
}

func (a *RetentionPolicy) ValidateCreate(conf *seqv1alpha1.RetentionPolicyConf) error {
	if conf.RetentionTime == nil || conf.RetentionTime.Duration <= 0 {
		return errors.New("a positive retentionTime is required to create a retention policy")
	}
	return nil
}

func (a *RetentionPolicy) Create(ctx context.Context, s reconcile.Scope, conf *seqv1alpha1.RetentionPolicyConf) (string, error) {
	doc := &seq.RetentionPolicy{}
	if err := a.apply(ctx, s, doc, conf); err != nil {
		return "", err
	}
	created, err := s.Conn.CreateRetentionPolicy(ctx, doc)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (a *RetentionPolicy) Get(ctx context.Context, s reconcile.Scope, id string) (*seq.RetentionPolicy, error) {
	return orNil(s.Conn.GetRetentionPolicy(ctx, id))
}

func (a *RetentionPolicy) Observe(remote *seq.RetentionPolicy) (*seqv1alpha1.RetentionPolicyInfo, error) {
	d, err := seq.ParseTimeSpan(remote.RetentionTime)
	if err != nil {
		return nil, fmt.Errorf("retention policy %s: %w", remote.ID, err)
	}
	return &seqv1alpha1.RetentionPolicyInfo{
		RetentionTime: metav1.Duration{Duration: d},
		SignalID:      remote.SignalID(),
	}, nil
}

func (a *RetentionPolicy) Update(ctx context.Context, s reconcile.Scope, current *seq.RetentionPolicy, conf *seqv1alpha1.RetentionPolicyConf) (bool, error) {
	desired := *current
	if err := a.apply(ctx, s, &desired, conf); err != nil {
		return false, err
	}
	// Compare durations so that equivalent TimeSpan renderings do not cause writes.
	if conf.RetentionTime != nil {
		if d, err := seq.ParseTimeSpan(current.RetentionTime); err == nil && d == conf.RetentionTime.Duration {
			desired.RetentionTime = current.RetentionTime
		}
	}
	if !differs(ctx, current.ID, current, &desired) {
		return false, nil
	}
	if err := s.Conn.UpdateRetentionPolicy(ctx, &desired); err != nil {
		return false, err
	}
	return true, nil
}

func (a *RetentionPolicy) Delete(ctx context.Context, s reconcile.Scope, id string) error {
	return s.Conn.DeleteRetentionPolicy(ctx, id)
}

func (a *RetentionPolicy) apply(ctx context.Context, s reconcile.Scope, doc *seq.RetentionPolicy, conf *seqv1alpha1.RetentionPolicyConf) error {
	if conf.RetentionTime != nil {
		doc.RetentionTime = seq.FormatTimeSpan(conf.RetentionTime.Duration)
	}
	signalID, ok, err := a.signal(ctx, s, conf.SignalID, conf.SignalRef)
	if err != nil {
		return err
	}
	if ok {
		if signalID == "" {
			doc.RemovedSignalExpression = nil
		} else {
			doc.RemovedSignalExpression = &seq.SignalExpression{Kind: seq.SignalExpressionKindSignal, SignalID: signalID}
		}
	}
	return nil
}
