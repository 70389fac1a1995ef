package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AggregateSpec defines the desired state of an Aggregate.
type AggregateSpec struct {
	// CIDR is the address block of the aggregate (e.g. 10.0.0.0/8)
	CIDR string `json:"cidr"`

	// RIR is the backend slug of the registry the aggregate belongs to
	RIR string `json:"rir"`

	// Description is copied onto the backend record
	// +optional
	Description string `json:"description,omitempty"`
}

// AggregateStatus defines the observed state of an Aggregate.
type AggregateStatus struct {
	ReconcileStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="CIDR",type=string,JSONPath=`.spec.cidr`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Aggregate declares an address block that must exist in the IPAM backend.
type Aggregate struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AggregateSpec   `json:"spec,omitempty"`
	Status AggregateStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (a *Aggregate) ReconcileStatus() *ReconcileStatus { return &a.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// AggregateList contains a list of Aggregate.
type AggregateList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Aggregate `json:"items"`
}

// PrefixSpec defines the desired state of a Prefix.
type PrefixSpec struct {
	// CIDR is the prefix in CIDR notation (e.g. 10.1.0.0/24)
	CIDR string `json:"cidr"`

	// AggregateRef optionally names the Aggregate this prefix belongs to
	// +optional
	AggregateRef *ResourceReference `json:"aggregateRef,omitempty"`

	// Site is the backend site slug the prefix is scoped to
	// +optional
	Site string `json:"site,omitempty"`

	// Role is the backend role slug of the prefix
	// +optional
	Role string `json:"role,omitempty"`

	// Description is copied onto the backend record
	// +optional
	Description string `json:"description,omitempty"`
}

// PrefixStatus defines the observed state of a Prefix.
type PrefixStatus struct {
	ReconcileStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="CIDR",type=string,JSONPath=`.spec.cidr`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Prefix declares a routed prefix that must exist in the IPAM backend.
type Prefix struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PrefixSpec   `json:"spec,omitempty"`
	Status PrefixStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (p *Prefix) ReconcileStatus() *ReconcileStatus { return &p.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// PrefixList contains a list of Prefix.
type PrefixList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Prefix `json:"items"`
}

// PoolSpec defines the desired state of a Pool.
type PoolSpec struct {
	// PrefixRef names the Prefix this pool draws addresses from
	PrefixRef ResourceReference `json:"prefixRef"`

	// Description is attached to allocations made from this pool
	// +optional
	Description string `json:"description,omitempty"`
}

// PoolStatus defines the observed state of a Pool.
//
// The counters are a projection of the backend's utilization, recomputed
// verbatim on every reconcile. They are never incremented in place.
type PoolStatus struct {
	ReconcileStatus `json:",inline"`

	// Total is the number of addresses in the backing prefix
	// +optional
	Total int `json:"total,omitempty"`

	// Allocated is the number of addresses in use
	// +optional
	Allocated int `json:"allocated,omitempty"`

	// Available is the number of addresses still free
	// +optional
	Available int `json:"available,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Prefix",type=string,JSONPath=`.spec.prefixRef.name`
// +kubebuilder:printcolumn:name="Available",type=integer,JSONPath=`.status.available`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`

// Pool scopes allocation to a slice of a Prefix.
type Pool struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PoolSpec   `json:"spec,omitempty"`
	Status PoolStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (p *Pool) ReconcileStatus() *ReconcileStatus { return &p.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// PoolList contains a list of Pool.
type PoolList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Pool `json:"items"`
}

// AllocationStrategy selects how the backend picks the next address.
type AllocationStrategy string

const (
	// StrategySequential binds the numerically lowest available address
	StrategySequential AllocationStrategy = "Sequential"
	// StrategyRandom binds any available address
	StrategyRandom AllocationStrategy = "Random"
)

// IPClaimSpec defines the desired state of an IPClaim.
type IPClaimSpec struct {
	// PoolRef names the Pool to allocate from
	PoolRef ResourceReference `json:"poolRef"`

	// Strategy selects the allocation strategy
	// +kubebuilder:validation:Enum=Sequential;Random
	// +kubebuilder:default=Sequential
	// +optional
	Strategy AllocationStrategy `json:"strategy,omitempty"`

	// Description is appended to the backend record's description
	// +optional
	Description string `json:"description,omitempty"`
}

// IPClaimStatus defines the observed state of an IPClaim.
type IPClaimStatus struct {
	ReconcileStatus `json:",inline"`

	// Address is the bound address in CIDR notation. Once set it is never
	// changed by a later reconcile; re-binding requires recreating the claim.
	// +optional
	Address string `json:"address,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Pool",type=string,JSONPath=`.spec.poolRef.name`
// +kubebuilder:printcolumn:name="Address",type=string,JSONPath=`.status.address`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`

// IPClaim requests exactly one address out of a Pool.
type IPClaim struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   IPClaimSpec   `json:"spec,omitempty"`
	Status IPClaimStatus `json:"status,omitempty"`
}

// ReconcileStatus returns the shared status block.
func (c *IPClaim) ReconcileStatus() *ReconcileStatus { return &c.Status.ReconcileStatus }

// +kubebuilder:object:root=true

// IPClaimList contains a list of IPClaim.
type IPClaimList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IPClaim `json:"items"`
}
