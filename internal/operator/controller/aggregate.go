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

// AggregateReconciler ensures a backend aggregate record exists for each
// Aggregate.
type AggregateReconciler struct {
	backend ipam.Client
}

// NewAggregateReconciler creates the Aggregate reconciler.
func NewAggregateReconciler(backend ipam.Client) *AggregateReconciler {
	return &AggregateReconciler{backend: backend}
}

var _ engine.Reconciler = (*AggregateReconciler)(nil)

// NewObject returns an empty Aggregate.
func (r *AggregateReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.Aggregate{}
}

// Reconcile resolves the aggregate in the backend, creating it when absent.
func (r *AggregateReconciler) Reconcile(ctx context.Context, obj client.Object) (engine.Result, error) {
	aggregate := obj.(*netfabricv1alpha1.Aggregate)
	logger := log.FromContext(ctx).WithValues("aggregate", client.ObjectKeyFromObject(aggregate))

	if aggregate.Status.State == "" {
		aggregate.Status.State = netfabricv1alpha1.StatePending
	}

	record, err := r.backend.LookupAggregate(ctx, aggregate.Spec.CIDR)
	if ipam.IsNotFound(err) {
		record, err = r.backend.CreateAggregate(ctx, ipam.Aggregate{
			CIDR:        aggregate.Spec.CIDR,
			RIR:         aggregate.Spec.RIR,
			Description: aggregate.Spec.Description,
		})
		if err == nil {
			logger.Info("created backend aggregate", "cidr", aggregate.Spec.CIDR, "id", record.ID)
		}
	}
	if err != nil {
		return engine.Result{}, err
	}

	aggregate.Status.ExternalID = fmt.Sprintf("%d", record.ID)
	aggregate.Status.ExternalURL = record.URL
	aggregate.Status.State = netfabricv1alpha1.StateReady

	return engine.Result{RequeueAfter: driftRefreshInterval}, nil
}

// Cleanup is a no-op: aggregates are left in the backend, prefixes may
// still exist under them.
func (r *AggregateReconciler) Cleanup(context.Context, engine.Identity) error {
	return nil
}
