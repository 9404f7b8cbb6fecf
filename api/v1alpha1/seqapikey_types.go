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

// APIKeyPermission is a permission granted to an API key.
// +kubebuilder:validation:Enum=ingest;read;write;project;organization;system
type APIKeyPermission string

const (
	APIKeyPermissionIngest       APIKeyPermission = "ingest"
	APIKeyPermissionRead         APIKeyPermission = "read"
	APIKeyPermissionWrite        APIKeyPermission = "write"
	APIKeyPermissionProject      APIKeyPermission = "project"
	APIKeyPermissionOrganization APIKeyPermission = "organization"
	APIKeyPermissionSystem       APIKeyPermission = "system"
)

// APIKeyConf is the declared configuration of an API key. Unset fields are left untouched.
type APIKeyConf struct {
	// Title of the key.
	// +optional
	Title *string `json:"title,omitempty"`

	// OwnerID is the user that owns the key. Empty means a shared key.
	// +optional
	OwnerID *string `json:"ownerId,omitempty"`

	// Permissions assigned to the key.
	// +optional
	Permissions []APIKeyPermission `json:"permissions,omitempty"`

	// MinimumLevel drops ingested events below this level.
	// +optional
	MinimumLevel *LogLevel `json:"minimumLevel,omitempty"`

	// Filter drops ingested events that do not match.
	// +optional
	Filter *string `json:"filter,omitempty"`

	// AppliedProperties are added to every ingested event.
	// +optional
	AppliedProperties map[string]string `json:"appliedProperties,omitempty"`

	// UseServerTimestamps replaces client timestamps on ingested events.
	// +optional
	UseServerTimestamps *bool `json:"useServerTimestamps,omitempty"`

	// TokenSecretRef receives the generated token under the "token" field when
	// the key is created. Only consulted at creation.
	// +optional
	TokenSecretRef *corev1.LocalObjectReference `json:"tokenSecretRef,omitempty"`
}

// APIKeyFind locates an existing key instead of creating one.
type APIKeyFind struct {
	// Title must match exactly.
	Title string `json:"title"`

	// OwnerID restricts the search to keys of this user.
	// +optional
	OwnerID string `json:"ownerId,omitempty"`
}

// APIKeyInfo is the last observed state of the key.
type APIKeyInfo struct {
	Title               string             `json:"title,omitempty"`
	OwnerID             string             `json:"ownerId,omitempty"`
	Permissions         []APIKeyPermission `json:"permissions,omitempty"`
	MinimumLevel        LogLevel           `json:"minimumLevel,omitempty"`
	Filter              string             `json:"filter,omitempty"`
	AppliedProperties   map[string]string  `json:"appliedProperties,omitempty"`
	UseServerTimestamps bool               `json:"useServerTimestamps,omitempty"`
	TokenPrefix         string             `json:"tokenPrefix,omitempty"`
}

// SeqAPIKeySpec defines the desired state of SeqAPIKey.
type SeqAPIKeySpec struct {
	ManagedSpec `json:",inline"`

	// Init is used instead of Conf when the key is created.
	// +optional
	Init *APIKeyConf `json:"init,omitempty"`

	// Conf is applied on every reconciliation.
	// +optional
	Conf *APIKeyConf `json:"conf,omitempty"`

	// Find binds an existing key before falling back to creation.
	// +optional
	Find *APIKeyFind `json:"find,omitempty"`
}

// SeqAPIKeyStatus defines the observed state of SeqAPIKey.
type SeqAPIKeyStatus struct {
	ManagedStatus `json:",inline"`

	// +optional
	Info *APIKeyInfo `json:"info,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=seqkey
// +kubebuilder:printcolumn:name="Instance",type="string",JSONPath=".spec.instanceRef.name"
// +kubebuilder:printcolumn:name="ID",type="string",JSONPath=".status.id"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// SeqAPIKey is an API key managed on a SeqInstance.
type SeqAPIKey struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SeqAPIKeySpec   `json:"spec,omitempty"`
	Status SeqAPIKeyStatus `json:"status,omitempty"`
}

func (in *SeqAPIKey) InstanceKey() types.NamespacedName {
	return in.Spec.InstanceRef.Key(in.Namespace)
}

func (in *SeqAPIKey) GetPolicy() PolicySet { return NewPolicySet(in.Spec.Policy) }
func (in *SeqAPIKey) GetManagedStatus() *ManagedStatus { return &in.Status.ManagedStatus }
func (in *SeqAPIKey) GetInit() *APIKeyConf { return in.Spec.Init }
func (in *SeqAPIKey) GetConf() *APIKeyConf { return in.Spec.Conf }
func (in *SeqAPIKey) GetFind() *APIKeyFind { return in.Spec.Find }
func (in *SeqAPIKey) GetInfo() *APIKeyInfo { return in.Status.Info }
func (in *SeqAPIKey) SetInfo(info *APIKeyInfo) { in.Status.Info = info }

// +kubebuilder:object:root=true

// SeqAPIKeyList contains a list of SeqAPIKey.
type SeqAPIKeyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SeqAPIKey `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SeqAPIKey{}, &SeqAPIKeyList{})
}
