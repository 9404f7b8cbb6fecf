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

// SignalGrouping controls how a signal is grouped in the UI.
// +kubebuilder:validation:Enum=inferred;explicit;none
type SignalGrouping string

const (
	SignalGroupingInferred SignalGrouping = "inferred"
	SignalGroupingExplicit SignalGrouping = "explicit"
	SignalGroupingNone     SignalGrouping = "none"
)

// SignalFilter is one filter expression of a signal.
type SignalFilter struct {
	// +kubebuilder:validation:MinLength=1
	Filter string `json:"filter"`
	// +optional
	Description string `json:"description,omitempty"`
}

// SignalConf is the declared configuration of a signal. Unset fields are left untouched.
type SignalConf struct {
	// +optional
	Title *string `json:"title,omitempty"`
	// +optional
	Description *string `json:"description,omitempty"`
	// +optional
	OwnerID *string `json:"ownerId,omitempty"`
	// +optional
	Filters []SignalFilter `json:"filters,omitempty"`
	// Columns are expressions shown as columns when the signal is selected.
	// +optional
	Columns []string `json:"columns,omitempty"`
	// +optional
	Grouping *SignalGrouping `json:"grouping,omitempty"`
	// ExplicitGroupName is used when grouping is "explicit".
	// +optional
	ExplicitGroupName *string `json:"explicitGroupName,omitempty"`
	// IsProtected prevents modification by non-administrators.
	// +optional
	IsProtected *bool `json:"isProtected,omitempty"`
}

// SignalFind locates an existing signal instead of creating one.
type SignalFind struct {
	Title string `json:"title"`
	// +optional
	OwnerID string `json:"ownerId,omitempty"`
}

// SignalInfo is the last observed state of the signal.
type SignalInfo struct {
	Title             string         `json:"title,omitempty"`
	Description       string         `json:"description,omitempty"`
	OwnerID           string         `json:"ownerId,omitempty"`
	Filters           []SignalFilter `json:"filters,omitempty"`
	Columns           []string       `json:"columns,omitempty"`
	Grouping          SignalGrouping `json:"grouping,omitempty"`
	ExplicitGroupName string         `json:"explicitGroupName,omitempty"`
	IsProtected       bool           `json:"isProtected,omitempty"`
}

// SeqSignalSpec defines the desired state of SeqSignal.
type SeqSignalSpec struct {
	ManagedSpec `json:",inline"`

	// +optional
	Init *SignalConf `json:"init,omitempty"`
	// +optional
	Conf *SignalConf `json:"conf,omitempty"`
	// +optional
	Find *SignalFind `json:"find,omitempty"`
}

// SeqSignalStatus defines the observed state of SeqSignal.
type SeqSignalStatus struct {
	ManagedStatus `json:",inline"`

	// +optional
	Info *SignalInfo `json:"info,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=seqsignal
// +kubebuilder:printcolumn:name="Instance",type="string",JSONPath=".spec.instanceRef.name"
// +kubebuilder:printcolumn:name="ID",type="string",JSONPath=".status.id"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"

// SeqSignal is a signal managed on a SeqInstance.
type SeqSignal struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SeqSignalSpec   `json:"spec,omitempty"`
	Status SeqSignalStatus `json:"status,omitempty"`
}

func (in *SeqSignal) InstanceKey() types.NamespacedName {
	return in.Spec.InstanceRef.Key(in.Namespace)
}

func (in *SeqSignal) GetPolicy() PolicySet { return NewPolicySet(in.Spec.Policy) }
func (in *SeqSignal) GetManagedStatus() *ManagedStatus { return &in.Status.ManagedStatus }
func (in *SeqSignal) GetInit() *SignalConf { return in.Spec.Init }
func (in *SeqSignal) GetConf() *SignalConf { return in.Spec.Conf }
func (in *SeqSignal) GetFind() *SignalFind { return in.Spec.Find }
func (in *SeqSignal) GetInfo() *SignalInfo { return in.Status.Info }
func (in *SeqSignal) SetInfo(info *SignalInfo) { in.Status.Info = info }

// +kubebuilder:object:root=true

// SeqSignalList contains a list of SeqSignal.
type SeqSignalList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SeqSignal `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SeqSignal{}, &SeqSignalList{})
}
