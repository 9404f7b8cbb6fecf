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

// AlertColumn is a labelled expression in an alert query.
type AlertColumn struct {
	// +kubebuilder:validation:MinLength=1
	Value string `json:"value"`
	// +optional
	Label string `json:"label,omitempty"`
}

// AlertConf is the declared configuration of an alert. Unset fields are left untouched.
type AlertConf struct {
	// +optional
	Title *string `json:"title,omitempty"`
	// +optional
	Description *string `json:"description,omitempty"`
	// +optional
	OwnerID *string `json:"ownerId,omitempty"`

	// Where filters the events the alert query runs over.
	// +optional
	Where *string `json:"where,omitempty"`

	// Select lists the measured columns.
	// +optional
	Select []AlertColumn `json:"select,omitempty"`

	// GroupBy lists grouping expressions.
	// +optional
	GroupBy []string `json:"groupBy,omitempty"`

	// TimeGrouping is the measurement window, e.g. "1m".
	// +optional
	TimeGrouping *string `json:"timeGrouping,omitempty"`

	// Having is the condition that triggers the alert.
	// +optional
	Having *string `json:"having,omitempty"`

	// NotificationLevel is the level of the notification event.
	// +optional
	NotificationLevel *LogLevel `json:"notificationLevel,omitempty"`

	// SuppressionTime is the minimum time between notifications, e.g. "10m".
	// +optional
	SuppressionTime *string `json:"suppressionTime,omitempty"`

	// IsDisabled stops evaluation without deleting the alert.
	// +optional
	IsDisabled *bool `json:"isDisabled,omitempty"`

	// NotificationChannels lists app instance IDs notified when the alert triggers.
	// +optional
	NotificationChannels []string `json:"notificationChannels,omitempty"`
}

// AlertFind locates an existing alert instead of creating one.
type AlertFind struct {
	Title string `json:"title"`
	// +optional
	OwnerID string `json:"ownerId,omitempty"`
}

// AlertInfo is the last observed state of the alert.
type AlertInfo struct {
	Title                string        `json:"title,omitempty"`
	Description          string        `json:"description,omitempty"`
	OwnerID              string        `json:"ownerId,omitempty"`
	Where                string        `json:"where,omitempty"`
	Select               []AlertColumn `json:"select,omitempty"`
	GroupBy              []string      `json:"groupBy,omitempty"`
	TimeGrouping         string        `json:"timeGrouping,omitempty"`
	Having               string        `json:"having,omitempty"`
	NotificationLevel    LogLevel      `json:"notificationLevel,omitempty"`
	SuppressionTime      string        `json:"suppressionTime,omitempty"`
	IsDisabled           bool          `json:"isDisabled,omitempty"`
	NotificationChannels []string      `json:"notificationChannels,omitempty"`
}

// SeqAlertSpec defines the desired state of SeqAlert.
type SeqAlertSpec struct {
	ManagedSpec `json:",inline"`

	// +optional
	Init *AlertConf `json:"init,omitempty"`
	// +optional
	Conf *AlertConf `json:"conf,omitempty"`
	// +optional
	Find *AlertFind `json:"find,omitempty"`
}

// SeqAlertStatus defines the observed state of SeqAlert.
type SeqAlertStatus struct {
	ManagedStatus `json:",inline"`

	// +optional
	Info *AlertInfo `json:"info,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=seqalert
// +kubebuilder:printcolumn:name="Instance",type="string",JSONPath=".spec.instanceRef.name"
// +kubebuilder:printcolumn:name="ID",type="string",JSONPath=".status.id"
// +kubebuilder:printcolumn:name="Ready",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"

// SeqAlert is an alert managed on a SeqInstance.
type SeqAlert struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SeqAlertSpec   `json:"spec,omitempty"`
	Status SeqAlertStatus `json:"status,omitempty"`
}

func (in *SeqAlert) InstanceKey() types.NamespacedName {
	return in.Spec.InstanceRef.Key(in.Namespace)
}

func (in *SeqAlert) GetPolicy() PolicySet { return NewPolicySet(in.Spec.Policy) }
func (in *SeqAlert) GetManagedStatus() *ManagedStatus { return &in.Status.ManagedStatus }
func (in *SeqAlert) GetInit() *AlertConf { return in.Spec.Init }
func (in *SeqAlert) GetConf() *AlertConf { return in.Spec.Conf }
func (in *SeqAlert) GetFind() *AlertFind { return in.Spec.Find }
func (in *SeqAlert) GetInfo() *AlertInfo { return in.Status.Info }
func (in *SeqAlert) SetInfo(info *AlertInfo) { in.Status.Info = info }

// +kubebuilder:object:root=true

// SeqAlertList contains a list of SeqAlert.
type SeqAlertList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SeqAlert `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SeqAlert{}, &SeqAlertList{})
}
