package controller

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
	"github.com/netfabric-io/netfabric-operator/internal/platform/ipam"
)

// PoolReconciler projects backend utilization onto Pool status.
//
// The counters are recomputed from the backend on every pass, never
// adjusted in place: they are a projection, not a source of truth.
type PoolReconciler struct {
	client  client.Client
	backend ipam.Client
}

// NewPoolReconciler creates the Pool reconciler.
func NewPoolReconciler(cl client.Client, backend ipam.Client) *PoolReconciler {
	return &PoolReconciler{client: cl, backend: backend}
}

var _ engine.Reconciler = (*PoolReconciler)(nil)

// NewObject returns an empty Pool.
func (r *PoolReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.Pool{}
}

// Reconcile refreshes the pool's counters from the backend.
func (r *PoolReconciler) Reconcile(ctx context.Context, obj client.Object) (engine.Result, error) {
	pool := obj.(*netfabricv1alpha1.Pool)
	logger := log.FromContext(ctx).WithValues("pool", client.ObjectKeyFromObject(pool))

	if pool.Status.State == "" {
		pool.Status.State = netfabricv1alpha1.StatePending
	}

	prefix := &netfabricv1alpha1.Prefix{}
	if err := resolveRef(ctx, r.client, pool.Spec.PrefixRef, pool.Namespace, prefix); err != nil {
		return engine.Result{}, err
	}

	backendPrefix, err := r.backend.LookupPrefix(ctx, prefix.Spec.CIDR)
	if err != nil {
		if ipam.IsNotFound(err) {
			return engine.Result{}, engine.DependencyNotReady("backend prefix "+prefix.Spec.CIDR, err)
		}
		return engine.Result{}, err
	}

	utilization, err := r.backend.PrefixUtilization(ctx, backendPrefix.ID)
	if err != nil {
		return engine.Result{}, err
	}

	pool.Status.ExternalID = fmt.Sprintf("%d", backendPrefix.ID)
	pool.Status.ExternalURL = backendPrefix.URL
	pool.Status.Total = utilization.Total
	pool.Status.Allocated = utilization.Allocated
	pool.Status.Available = utilization.Available()
	pool.Status.State = netfabricv1alpha1.StateReady

	logger.V(1).Info("pool counters refreshed",
		"total", utilization.Total, "allocated", utilization.Allocated)

	// Counters drift as claims come and go without an edit to the pool,
	// so re-check periodically.
	return engine.Result{RequeueAfter: poolRefreshInterval}, nil
}

// Cleanup is a no-op: pools own no backend state of their own.
func (r *PoolReconciler) Cleanup(context.Context, engine.Identity) error {
	return nil
}
