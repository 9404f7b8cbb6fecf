/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// PolicyOperation is a lifecycle operation the controller may perform on the remote object.
// +kubebuilder:validation:Enum=Create;Update;Delete
type PolicyOperation string

const (
	// PolicyCreate allows the controller to create the remote object when none is bound.
	PolicyCreate PolicyOperation = "Create"
	// PolicyUpdate allows the controller to write declared configuration to the remote object.
	PolicyUpdate PolicyOperation = "Update"
	// PolicyDelete allows the controller to delete the remote object when the declaration is removed.
	PolicyDelete PolicyOperation = "Delete"
)

// DefaultPolicy is applied when spec.policy is empty.
var DefaultPolicy = []PolicyOperation{PolicyCreate, PolicyUpdate}

// PolicySet is the effective set of permitted lifecycle operations.
type PolicySet map[PolicyOperation]struct{}

// NewPolicySet returns the effective policy for the declared operations.
// An empty declaration yields DefaultPolicy.
func NewPolicySet(ops []PolicyOperation) PolicySet {
	if len(ops) == 0 {
		ops = DefaultPolicy
	}
	set := make(PolicySet, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}

// Allows reports whether op is permitted.
func (p PolicySet) Allows(op PolicyOperation) bool {
	_, ok := p[op]
	return ok
}

// InstanceReference identifies the SeqInstance an entity is managed on.
type InstanceReference struct {
	// Name of the SeqInstance.
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`
	// Namespace of the SeqInstance. Defaults to the namespace of the referencing object.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// Key resolves the reference relative to the referencing object's namespace.
func (r InstanceReference) Key(defaultNamespace string) types.NamespacedName {
	ns := r.Namespace
	if ns == "" {
		ns = defaultNamespace
	}
	return types.NamespacedName{Namespace: ns, Name: r.Name}
}

// ManagedSpec holds the fields shared by every kind bound to a remote object on a SeqInstance.
type ManagedSpec struct {
	// InstanceRef is the SeqInstance the remote object lives on.
	InstanceRef InstanceReference `json:"instanceRef"`

	// Policy lists the lifecycle operations the controller may perform remotely.
	// Defaults to [Create, Update]. Without Delete the remote object is left behind
	// when this resource is deleted.
	// +optional
	Policy []PolicyOperation `json:"policy,omitempty"`
}

// ManagedStatus holds the status fields shared by every managed kind.
type ManagedStatus struct {
	// ID is the identifier of the bound remote object. Empty means unbound.
	// +optional
	ID string `json:"id,omitempty"`

	// ObservedGeneration is the generation last reconciled successfully.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions hold at most one entry per type (Ready, Healthy).
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// LogLevel is a declared event level.
// +kubebuilder:validation:Enum=verbose;debug;info;warning;error;fatal
type LogLevel string

const (
	LogLevelVerbose LogLevel = "verbose"
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
	LogLevelFatal   LogLevel = "fatal"
)
