package controller

import (
	"context"
	"fmt"
	"strings"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
	"github.com/netfabric-io/netfabric-operator/internal/platform/ipam"
)

// allocationTagPrefix marks backend address records owned by this operator.
const allocationTagPrefix = "netfabric:claim:"

// allocationTag encodes a claim's identity into the description of its
// backend address record. The tag is the only durable link between claim
// and allocation, and the basis of the idempotence check: the backend's
// record is trusted, not local memory.
func allocationTag(namespace, name string) string {
	return allocationTagPrefix + namespace + "/" + name
}

// matchesTag reports whether a record's description carries exactly this
// tag. The match must stop at a token boundary: the tag of claim-1 is a
// substring of the tag of claim-10, so a plain substring check would let
// one claim adopt or release another claim's allocation.
func matchesTag(description, tag string) bool {
	return description == tag || strings.HasPrefix(description, tag+" ")
}

// ClaimReconciler allocates exactly one backend address per IPClaim.
//
// No lock is held across claims: all claims against the same pool
// serialize only through the backend's own allocation semantics, so two
// operator replicas can never agree on the same "next free" address
// independently.
type ClaimReconciler struct {
	client  client.Client
	backend ipam.Client
}

// NewClaimReconciler creates the IPClaim reconciler.
func NewClaimReconciler(cl client.Client, backend ipam.Client) *ClaimReconciler {
	return &ClaimReconciler{client: cl, backend: backend}
}

var _ engine.Reconciler = (*ClaimReconciler)(nil)

// NewObject returns an empty IPClaim.
func (r *ClaimReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.IPClaim{}
}

// Reconcile runs the allocation algorithm. Safe to re-run at any point,
// including after a crash between the backend allocation call and the
// status write: the idempotence check finds the annotated record first.
func (r *ClaimReconciler) Reconcile(ctx context.Context, obj client.Object) (engine.Result, error) {
	claim := obj.(*netfabricv1alpha1.IPClaim)
	logger := log.FromContext(ctx).WithValues("claim", client.ObjectKeyFromObject(claim))

	if claim.Status.State == "" {
		claim.Status.State = netfabricv1alpha1.StateUnbound
	}

	// Step 1: resolve the pool reference.
	pool := &netfabricv1alpha1.Pool{}
	if err := resolveRef(ctx, r.client, claim.Spec.PoolRef, claim.Namespace, pool); err != nil {
		return engine.Result{}, err
	}

	// Step 2: resolve the pool's prefix through to the backend record.
	backendPrefix, err := r.resolveBackendPrefix(ctx, pool)
	if err != nil {
		return engine.Result{}, err
	}

	tag := allocationTag(claim.Namespace, claim.Name)

	// Step 3: idempotence check. An address annotated with this claim's
	// identity means a previous attempt already allocated; bind it and
	// never call allocate again.
	existing, err := r.findAllocation(ctx, backendPrefix.ID, tag)
	if err != nil {
		return engine.Result{}, err
	}
	if existing != nil {
		// A binding is write-once: if status already records a different
		// address than the backend's annotated record, something rebound
		// out of band. Surface it rather than silently switching.
		if claim.Status.Address != "" && claim.Status.Address != existing.Address {
			return engine.Result{}, fmt.Errorf("bound address %s conflicts with backend record %s", claim.Status.Address, existing.Address)
		}
		bind(claim, existing)
		logger.V(1).Info("claim already bound", "address", existing.Address)
		return engine.Result{Terminal: true}, nil
	}

	// A recorded binding whose backend record has vanished is never
	// silently replaced; rebinding requires recreating the claim.
	if claim.Status.Address != "" {
		return engine.Result{}, fmt.Errorf("allocation record for bound address %s missing from backend", claim.Status.Address)
	}

	// Step 4: allocate. The backend is the arbiter of uniqueness.
	description := tag
	if claim.Spec.Description != "" {
		description = tag + " " + claim.Spec.Description
	}
	addr, err := r.backend.AllocateNext(ctx, backendPrefix.ID, strategyOf(claim), description)
	if err != nil {
		// Exhaustion is recoverable: capacity may be freed later, and
		// the claim stays queued with the error visible in status.
		return engine.Result{}, err
	}

	// Step 5: record the binding.
	bind(claim, addr)
	logger.Info("claim bound", "address", addr.Address, "prefix", backendPrefix.CIDR)
	return engine.Result{Terminal: true}, nil
}

// Cleanup releases the claim's backend allocation after deletion.
// Best-effort: the record is found by its identity annotation.
func (r *ClaimReconciler) Cleanup(ctx context.Context, id engine.Identity) error {
	tag := allocationTag(id.Namespace, id.Name)

	addrs, err := r.backend.FindAddresses(ctx, ipam.AddressFilter{DescriptionContains: tag})
	if err != nil {
		return fmt.Errorf("find allocations of deleted claim %s: %w", id, err)
	}
	for _, a := range addrs {
		if !matchesTag(a.Description, tag) {
			continue
		}
		if err := r.backend.DeleteAddress(ctx, a.ID); err != nil && !ipam.IsNotFound(err) {
			return fmt.Errorf("release address %s of deleted claim %s: %w", a.Address, id, err)
		}
	}
	return nil
}

// resolveBackendPrefix follows pool -> Prefix object -> backend record.
func (r *ClaimReconciler) resolveBackendPrefix(ctx context.Context, pool *netfabricv1alpha1.Pool) (*ipam.Prefix, error) {
	prefix := &netfabricv1alpha1.Prefix{}
	if err := resolveRef(ctx, r.client, pool.Spec.PrefixRef, pool.Namespace, prefix); err != nil {
		return nil, err
	}

	backendPrefix, err := r.backend.LookupPrefix(ctx, prefix.Spec.CIDR)
	if err != nil {
		if ipam.IsNotFound(err) {
			// The Prefix object exists but its backend record does not
			// yet; the prefix reconciler will create it.
			return nil, engine.DependencyNotReady("backend prefix "+prefix.Spec.CIDR, err)
		}
		return nil, err
	}
	return backendPrefix, nil
}

// findAllocation looks for an address under the prefix annotated with tag.
func (r *ClaimReconciler) findAllocation(ctx context.Context, prefixID int64, tag string) (*ipam.Address, error) {
	addrs, err := r.backend.ListAddresses(ctx, prefixID, ipam.AddressFilter{DescriptionContains: tag})
	if err != nil {
		return nil, err
	}
	// The backend filter is a substring pre-filter; the exact match
	// happens here.
	for i := range addrs {
		if matchesTag(addrs[i].Description, tag) {
			return &addrs[i], nil
		}
	}
	return nil, nil
}

func strategyOf(claim *netfabricv1alpha1.IPClaim) ipam.Strategy {
	if claim.Spec.Strategy == netfabricv1alpha1.StrategyRandom {
		return ipam.StrategyRandom
	}
	return ipam.StrategySequential
}

func bind(claim *netfabricv1alpha1.IPClaim, addr *ipam.Address) {
	claim.Status.Address = addr.Address
	claim.Status.ExternalID = fmt.Sprintf("%d", addr.ID)
	claim.Status.ExternalURL = addr.URL
	claim.Status.State = netfabricv1alpha1.StateAllocated
}
