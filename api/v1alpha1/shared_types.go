package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ResourceReference points at another netfabric object by name.
// The reference is resolved at reconcile time, never cached: the referent
// may not exist yet or may be recreated independently.
type ResourceReference struct {
	// Name of the referenced object
	Name string `json:"name"`

	// Namespace of the referenced object. Defaults to the namespace of
	// the referencing object.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// String renders the reference relative to a default namespace.
func (r ResourceReference) String() string {
	if r.Namespace == "" {
		return r.Name
	}
	return r.Namespace + "/" + r.Name
}

// ResolvedNamespace returns the reference's namespace, falling back to the
// given default when unset.
func (r ResourceReference) ResolvedNamespace(def string) string {
	if r.Namespace != "" {
		return r.Namespace
	}
	return def
}

// ResourceState is the coarse per-object state reported by the reconciler.
type ResourceState string

const (
	// StatePending means the object has not yet converged against the backend
	StatePending ResourceState = "Pending"
	// StateReady means the backend matches the declared intent
	StateReady ResourceState = "Ready"
	// StateUnbound means an IPClaim has no address bound yet
	StateUnbound ResourceState = "Unbound"
	// StateAllocated means an IPClaim holds a bound address
	StateAllocated ResourceState = "Allocated"
)

// ReconcileStatus is the status block shared by every netfabric kind.
// It is owned exclusively by the reconciler and overwritten wholesale on
// each reconcile, successful or not.
type ReconcileStatus struct {
	// ExternalID is the identifier of the matching backend record
	// +optional
	ExternalID string `json:"externalID,omitempty"`

	// ExternalURL links to the backend record
	// +optional
	ExternalURL string `json:"externalURL,omitempty"`

	// State is the reconciled state of the object
	// +optional
	State ResourceState `json:"state,omitempty"`

	// Error holds the last reconcile error while retries continue
	// +optional
	Error *string `json:"error,omitempty"`

	// LastReconciled is when the reconciler last processed this object
	// +optional
	LastReconciled *metav1.Time `json:"lastReconciled,omitempty"`

	// ObservedGeneration is the generation last seen by the reconciler
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// SetError records err on the status, clearing it when err is nil.
func (s *ReconcileStatus) SetError(err error) {
	if err == nil {
		s.Error = nil
		return
	}
	msg := err.Error()
	s.Error = &msg
}

// StatusCarrier is implemented by every netfabric object so the dispatch
// loop can write the shared status fields without knowing the concrete kind.
type StatusCarrier interface {
	ReconcileStatus() *ReconcileStatus
}
