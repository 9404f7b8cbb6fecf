package reconcile

import (
	"context"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// Object is a declaration bound to one remote object on a SeqInstance.
// C is the configuration shape, F the find criteria and I the observed info.
type Object[C, F, I any] interface {
	client.Object

	InstanceKey() types.NamespacedName
	GetPolicy() seqv1alpha1.PolicySet
	GetManagedStatus() *seqv1alpha1.ManagedStatus
	GetInit() *C
	GetConf() *C
	GetFind() *F
	GetInfo() *I
	SetInfo(*I)
}

// Scope is passed to every adapter call.
type Scope struct {
	// Conn is a verified connection to the SeqInstance.
	Conn *seq.Client
	// Object is the declaration being reconciled. Adapters use it to resolve
	// namespaced references and as the owner of objects they create.
	Object client.Object
}

// Adapter performs the remote lifecycle operations of one kind. R is the remote
// document type.
type Adapter[C, F, I, R any] interface {
	// Find looks up an existing remote object. It returns "" without error when
	// nothing matches or find has no criteria.
	Find(ctx context.Context, s Scope, find *F) (string, error)
	// ValidateCreate rejects a configuration that cannot be used to create the object.
	ValidateCreate(conf *C) error
	// Create creates the remote object and returns its ID.
	Create(ctx context.Context, s Scope, conf *C) (string, error)
	// Get returns the remote object, or nil without error when it no longer exists.
	Get(ctx context.Context, s Scope, id string) (*R, error)
	// Observe converts a remote object into the observed info recorded in status.
	Observe(remote *R) (*I, error)
	// Update writes the fields of conf that are set and differ from current.
	// It reports whether a write was issued.
	Update(ctx context.Context, s Scope, current *R, conf *C) (bool, error)
	// Delete deletes the remote object.
	Delete(ctx context.Context, s Scope, id string) error
}

// Connector hands out verified connections to SeqInstances.
type Connector interface {
	Connect(ctx context.Context, key types.NamespacedName) (*seq.Client, error)
	Invalidate(key types.NamespacedName)
}

// Observer receives reconciliation outcomes, e.g. to record metrics.
type Observer interface {
	ReconcileFailed(obj client.Object, reason string)
	DriftDetected(obj client.Object)
}
