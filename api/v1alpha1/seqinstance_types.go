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

// SecretKey names used in credential Secrets.
const (
	SecretKeyUsername = "username"
	SecretKeyPassword = "password"
	SecretKeyFirstRun = "firstRun"
	SecretKeyToken    = "token"
	SecretKeyCACert   = "ca.crt"
)

// SecretAuth references a Secret holding credential material.
// The Secret must live in the namespace of the SeqInstance.
type SecretAuth struct {
	// SecretRef names the Secret.
	SecretRef corev1.LocalObjectReference `json:"secretRef"`

	// Optional skips the strategy silently when the Secret or a required field is absent.
	// +optional
	Optional bool `json:"optional,omitempty"`
}

// AuthStrategy is one way of authenticating to the remote server.
// Exactly one of Token or Login must be set.
// +kubebuilder:validation:XValidation:rule="has(self.token) != has(self.login)",message="exactly one of token or login must be set"
type AuthStrategy struct {
	// Token authenticates with the API key stored under the "token" field.
	// +optional
	Token *SecretAuth `json:"token,omitempty"`

	// Login authenticates with the "username" and "password" fields.
	// A "firstRun" field is used once to bootstrap a fresh server and is then
	// replaced remotely by "password".
	// +optional
	Login *SecretAuth `json:"login,omitempty"`
}

// RemoteSpec declares an explicit remote server.
type RemoteSpec struct {
	// URL of the server API, e.g. "https://seq.example.com".
	// +kubebuilder:validation:MinLength=1
	URL string `json:"url"`

	// CASecretRef optionally references a Secret with a "ca.crt" PEM bundle.
	// +optional
	CASecretRef *corev1.LocalObjectReference `json:"caSecretRef,omitempty"`

	// Auth strategies are tried strictly in order; the first verified connection wins.
	// +optional
	Auth []AuthStrategy `json:"auth,omitempty"`
}

// DeploymentSpec describes a locally provisioned server. It is consumed by the
// deployment subsystem, which reports connection material in status.deployment.
type DeploymentSpec struct {
	// Image is the server container image.
	// +optional
	Image string `json:"image,omitempty"`

	// StorageSize is the size of the data volume.
	// +optional
	StorageSize string `json:"storageSize,omitempty"`

	// AdminSecretRef names the Secret holding the initial admin credentials.
	// +optional
	AdminSecretRef *corev1.LocalObjectReference `json:"adminSecretRef,omitempty"`
}

// InstanceConf is the declared server-wide configuration. Unset fields are left untouched.
type InstanceConf struct {
	// InstanceTitle is shown in the UI header.
	// +optional
	InstanceTitle *string `json:"instanceTitle,omitempty"`

	// RequireAPIKeyForWritingEvents rejects unauthenticated ingestion.
	// +optional
	RequireAPIKeyForWritingEvents *bool `json:"requireApiKeyForWritingEvents,omitempty"`

	// MinimumPasswordLength applies to local user accounts.
	// +kubebuilder:validation:Minimum=0
	// +optional
	MinimumPasswordLength *int32 `json:"minimumPasswordLength,omitempty"`

	// ThemeStyles is custom CSS applied to the UI.
	// +optional
	ThemeStyles *string `json:"themeStyles,omitempty"`
}

// InstanceInfo is the last observed server configuration.
type InstanceInfo struct {
	Version                       string `json:"version,omitempty"`
	InstanceTitle                 string `json:"instanceTitle,omitempty"`
	RequireAPIKeyForWritingEvents bool   `json:"requireApiKeyForWritingEvents,omitempty"`
	MinimumPasswordLength         int32  `json:"minimumPasswordLength,omitempty"`
	ThemeStyles                   string `json:"themeStyles,omitempty"`
	IsAuthenticationEnabled       bool   `json:"isAuthenticationEnabled,omitempty"`
}

// InstanceFind has no criteria: a reachable server is always found.
type InstanceFind struct{}

// DeploymentStatus is the connection material reported by the deployment subsystem.
type DeploymentStatus struct {
	// Endpoint is the in-cluster URL of the deployed server.
	// +optional
	Endpoint string `json:"endpoint,omitempty"`

	// TokenSecretRef names a Secret with a "token" field.
	// +optional
	TokenSecretRef *corev1.LocalObjectReference `json:"tokenSecretRef,omitempty"`

	// LoginSecretRef names a Secret with "username", "password" and optionally "firstRun".
	// +optional
	LoginSecretRef *corev1.LocalObjectReference `json:"loginSecretRef,omitempty"`
}

// SeqInstanceSpec defines the desired state of SeqInstance.
type SeqInstanceSpec struct {
	// Remote declares an explicit remote server. When absent, connection
	// material is taken from status.deployment.
	// +optional
	Remote *RemoteSpec `json:"remote,omitempty"`

	// Deployment provisions a local server.
	// +optional
	Deployment *DeploymentSpec `json:"deployment,omitempty"`

	// Policy lists the lifecycle operations permitted on the server settings.
	// Only Update has an effect.
	// +optional
	Policy []PolicyOperation `json:"policy,omitempty"`

	// Conf is applied on every reconciliation.
	// +optional
	Conf *InstanceConf `json:"conf,omitempty"`
}

// SeqInstanceStatus defines the observed state of SeqInstance.
type SeqInstanceStatus struct {
	ManagedStatus `json:",inline"`

	// Info is the last observed server configuration.
	// +optional
	Info *InstanceInfo `json:"info,omitempty"`

	// Deployment is written by the deployment subsystem.
	// +optional
	Deployment *DeploymentStatus `json:"deployment,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=seqi
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="Version",type="string",JSONPath=".status.info.version"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// SeqInstance is a remote log server that other Seq kinds are managed on.
type SeqInstance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SeqInstanceSpec   `json:"spec,omitempty"`
	Status SeqInstanceStatus `json:"status,omitempty"`
}

// InstanceKey returns the instance itself: the server is managed on its own connection.
func (in *SeqInstance) InstanceKey() types.NamespacedName {
	return types.NamespacedName{Namespace: in.Namespace, Name: in.Name}
}

func (in *SeqInstance) GetPolicy() PolicySet { return NewPolicySet(in.Spec.Policy) }
func (in *SeqInstance) GetManagedStatus() *ManagedStatus { return &in.Status.ManagedStatus }
func (in *SeqInstance) GetInit() *InstanceConf { return nil }
func (in *SeqInstance) GetConf() *InstanceConf { return in.Spec.Conf }
func (in *SeqInstance) GetFind() *InstanceFind { return &InstanceFind{} }
func (in *SeqInstance) GetInfo() *InstanceInfo { return in.Status.Info }
func (in *SeqInstance) SetInfo(info *InstanceInfo) { in.Status.Info = info }

// +kubebuilder:object:root=true

// SeqInstanceList contains a list of SeqInstance.
type SeqInstanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SeqInstance `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SeqInstance{}, &SeqInstanceList{})
}
