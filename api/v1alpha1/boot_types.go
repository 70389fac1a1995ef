package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BootProfileSpec defines the desired state of a BootProfile.
type BootProfileSpec struct {
	// Kernel is the URL of the kernel image
	Kernel string `json:"kernel"`

	// Initrd lists URLs of initrd images, applied in order
	// +optional
	Initrd []string `json:"initrd,omitempty"`

	// Cmdline is the kernel command line template. The token {address}
	// is replaced with the bound claim address when a BootIntent carries
	// a claimRef.
	// +optional
	Cmdline string `json:"cmdline,omitempty"`

	// Arch restricts the profile to one architecture (e.g. amd64, arm64)
	// +optional
	Arch string `json:"arch,omitempty"`
}

// BootProfileStatus defines the observed state of a BootProfile.
type BootProfileStatus struct {
	ReconcileStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Kernel",type=string,JSONPath=`.spec.kernel`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`

// BootProfile declares a reusable network-boot configuration.
type BootProfile struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BootProfileSpec   `json:"spec,omitempty"`
	Status BootProfileStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (p *BootProfile) ReconcileStatus() *ReconcileStatus { return &p.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// BootProfileList contains a list of BootProfile.
type BootProfileList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BootProfile `json:"items"`
}

// BootIntentSpec defines the desired state of a BootIntent.
type BootIntentSpec struct {
	// DeviceRef names the Device this intent applies to
	DeviceRef ResourceReference `json:"deviceRef"`

	// ProfileRef names the BootProfile to boot the device with
	ProfileRef ResourceReference `json:"profileRef"`

	// ClaimRef optionally names an IPClaim whose bound address is
	// substituted into the profile's cmdline
	// +optional
	ClaimRef *ResourceReference `json:"claimRef,omitempty"`
}

// BootAssignment is the rendered boot configuration for a device.
type BootAssignment struct {
	// Kernel is the resolved kernel URL
	Kernel string `json:"kernel"`

	// Initrd lists the resolved initrd URLs
	// +optional
	Initrd []string `json:"initrd,omitempty"`

	// Cmdline is the rendered kernel command line
	// +optional
	Cmdline string `json:"cmdline,omitempty"`
}

// BootIntentStatus defines the observed state of a BootIntent.
type BootIntentStatus struct {
	ReconcileStatus `json:",inline"`

	// Assignment is the rendered boot configuration once all references
	// resolve
	// +optional
	Assignment *BootAssignment `json:"assignment,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Device",type=string,JSONPath=`.spec.deviceRef.name`
// +kubebuilder:printcolumn:name="Profile",type=string,JSONPath=`.spec.profileRef.name`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`

// BootIntent binds a Device to a BootProfile.
type BootIntent struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BootIntentSpec   `json:"spec,omitempty"`
	Status BootIntentStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (b *BootIntent) ReconcileStatus() *ReconcileStatus { return &b.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// BootIntentList contains a list of BootIntent.
type BootIntentList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BootIntent `json:"items"`
}
