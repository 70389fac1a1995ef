// Package engine implements the reconciliation engine: the watch, queue,
// dispatch and backoff loop the per-kind reconcilers plug into.
package engine

import (
	"k8s.io/apimachinery/pkg/types"
)

// Kind names a reconciled resource kind.
type Kind string

// Resource kinds driven by the engine.
const (
	KindAggregate   Kind = "Aggregate"
	KindPrefix      Kind = "Prefix"
	KindPool        Kind = "Pool"
	KindIPClaim     Kind = "IPClaim"
	KindDevice      Kind = "Device"
	KindBootProfile Kind = "BootProfile"
	KindBootIntent  Kind = "BootIntent"
)

// Identity is the stable identity of a resource: the work-queue key.
// The queue deduplicates on it; the payload is always re-read at
// reconcile time, never trusted from the event.
type Identity struct {
	Kind Kind
	types.NamespacedName
}

func (id Identity) String() string {
	return string(id.Kind) + "/" + id.NamespacedName.String()
}
