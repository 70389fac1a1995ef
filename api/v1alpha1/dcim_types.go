package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DeviceInterface declares a network interface on a Device.
type DeviceInterface struct {
	// Name of the interface (e.g. eth0)
	Name string `json:"name"`

	// MAC is the hardware address of the interface
	// +kubebuilder:validation:Pattern=`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`
	// +optional
	MAC string `json:"mac,omitempty"`
}

// DeviceSpec defines the desired state of a Device.
type DeviceSpec struct {
	// Site is the backend site slug the device lives in
	Site string `json:"site"`

	// DeviceRole is the backend role slug (e.g. compute, leaf)
	DeviceRole string `json:"deviceRole"`

	// DeviceType is the backend device type slug
	DeviceType string `json:"deviceType"`

	// Serial is the hardware serial number
	// +optional
	Serial string `json:"serial,omitempty"`

	// Interfaces lists the device's declared network interfaces
	// +optional
	Interfaces []DeviceInterface `json:"interfaces,omitempty"`
}

// DeviceStatus defines the observed state of a Device.
type DeviceStatus struct {
	ReconcileStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Site",type=string,JSONPath=`.spec.site`
// +kubebuilder:printcolumn:name="Role",type=string,JSONPath=`.spec.deviceRole`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`

// Device declares a physical device that must exist in the DCIM backend.
type Device struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DeviceSpec   `json:"spec,omitempty"`
	Status DeviceStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (d *Device) ReconcileStatus() *ReconcileStatus { return &d.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// DeviceList contains a list of Device.
type DeviceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Device `json:"items"`
}
