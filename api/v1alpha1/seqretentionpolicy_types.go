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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

// RetentionPolicyConf is the declared configuration of a retention policy.
// +kubebuilder:validation:XValidation:rule="!(has(self.signalId) && has(self.signalRef))",message="signalId and signalRef are mutually exclusive"
type RetentionPolicyConf struct {
	// RetentionTime is how long matching events are kept, e.g. "720h".
	// +optional
	RetentionTime *metav1.Duration `json:"retentionTime,omitempty"`

	// SignalID selects the events removed by the policy. Empty means all events.
	// +optional
	SignalID *string `json:"signalId,omitempty"`

	// SignalRef names a SeqSignal in the same namespace whose bound ID is used as SignalID.
	// +optional
	SignalRef *corev1.LocalObjectReference `json:"signalRef,omitempty"`
}

// RetentionPolicyFind locates an existing policy by the signal it applies to.
type RetentionPolicyFind struct {
	// +optional
	SignalID *string `json:"signalId,omitempty"`
	// +optional
	SignalRef *corev1.LocalObjectReference `json:"signalRef,omitempty"`
}

// RetentionPolicyInfo is the last observed state of the policy.
type RetentionPolicyInfo struct {
	RetentionTime metav1.Duration `json:"retentionTime,omitempty"`
	SignalID      string          `json:"signalId,omitempty"`
}

// SeqRetentionPolicySpec defines the desired state of SeqRetentionPolicy.
type SeqRetentionPolicySpec struct {
	ManagedSpec `json:",inline"`

	// +optional
	Init *RetentionPolicyConf `json:"init,omitempty"`
	// +optional
	Conf *RetentionPolicyConf `json:"conf,omitempty"`
	// +optional
	Find *RetentionPolicyFind `json:"find,omitempty"`
}

// SeqRetentionPolicyStatus defines the observed state of SeqRetentionPolicy.
type SeqRetentionPolicyStatus struct {
	ManagedStatus `json:",inline"`

	// +optional
	Info *RetentionPolicyInfo `json:"info,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=seqretention
// +kubebuilder:printcolumn:name="Instance",type="string",JSONPath=".spec.instanceRef.name"
// +kubebuilder:printcolumn:name="ID",type="string",JSONPath=".status.id"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"

// SeqRetentionPolicy is a retention policy managed on a SeqInstance.
type SeqRetentionPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SeqRetentionPolicySpec   `json:"spec,omitempty"`
	Status SeqRetentionPolicyStatus `json:"status,omitempty"`
}

func (in *SeqRetentionPolicy) InstanceKey() types.NamespacedName {
	return in.Spec.InstanceRef.Key(in.Namespace)
}

func (in *SeqRetentionPolicy) GetPolicy() PolicySet { return NewPolicySet(in.Spec.Policy) }
func (in *SeqRetentionPolicy) GetManagedStatus() *ManagedStatus {
	return &in.Status.ManagedStatus
}
func (in *SeqRetentionPolicy) GetInit() *RetentionPolicyConf { return in.Spec.Init }
func (in *SeqRetentionPolicy) GetConf() *RetentionPolicyConf { return in.Spec.Conf }
func (in *SeqRetentionPolicy) GetFind() *RetentionPolicyFind { return in.Spec.Find }
func (in *SeqRetentionPolicy) GetInfo() *RetentionPolicyInfo { return in.Status.Info }
func (in *SeqRetentionPolicy) SetInfo(info *RetentionPolicyInfo) {
	in.Status.Info = info
}

// +kubebuilder:object:root=true

// SeqRetentionPolicyList contains a list of SeqRetentionPolicy.
type SeqRetentionPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SeqRetentionPolicy `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SeqRetentionPolicy{}, &SeqRetentionPolicyList{})
}
