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

// PrefixReconciler ensures a backend prefix record exists for each Prefix.
type PrefixReconciler struct {
	client  client.Client
	backend ipam.Client
}

// NewPrefixReconciler creates the Prefix reconciler.
func NewPrefixReconciler(cl client.Client, backend ipam.Client) *PrefixReconciler {
	return &PrefixReconciler{client: cl, backend: backend}
}

var _ engine.Reconciler = (*PrefixReconciler)(nil)

// NewObject returns an empty Prefix.
func (r *PrefixReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.Prefix{}
}

// Reconcile resolves the prefix in the backend, creating it when absent.
func (r *PrefixReconciler) Reconcile(ctx context.Context, obj client.Object) (engine.Result, error) {
	prefix := obj.(*netfabricv1alpha1.Prefix)
	logger := log.FromContext(ctx).WithValues("prefix", client.ObjectKeyFromObject(prefix))

	if prefix.Status.State == "" {
		prefix.Status.State = netfabricv1alpha1.StatePending
	}

	// A declared parent aggregate must exist, both as an object and as a
	// backend record, before the prefix is created under it.
	if prefix.Spec.AggregateRef != nil {
		aggregate := &netfabricv1alpha1.Aggregate{}
		if err := resolveRef(ctx, r.client, *prefix.Spec.AggregateRef, prefix.Namespace, aggregate); err != nil {
			return engine.Result{}, err
		}
		if _, err := r.backend.LookupAggregate(ctx, aggregate.Spec.CIDR); err != nil {
			if ipam.IsNotFound(err) {
				return engine.Result{}, engine.DependencyNotReady("backend aggregate "+aggregate.Spec.CIDR, err)
			}
			return engine.Result{}, err
		}
	}

	record, err := r.backend.LookupPrefix(ctx, prefix.Spec.CIDR)
	if ipam.IsNotFound(err) {
		record, err = r.backend.CreatePrefix(ctx, ipam.Prefix{
			CIDR:        prefix.Spec.CIDR,
			Site:        prefix.Spec.Site,
			Role:        prefix.Spec.Role,
			Description: prefix.Spec.Description,
		})
		if err == nil {
			logger.Info("created backend prefix", "cidr", prefix.Spec.CIDR, "id", record.ID)
		}
	}
	if err != nil {
		return engine.Result{}, err
	}

	prefix.Status.ExternalID = fmt.Sprintf("%d", record.ID)
	prefix.Status.ExternalURL = record.URL
	prefix.Status.State = netfabricv1alpha1.StateReady

	return engine.Result{RequeueAfter: driftRefreshInterval}, nil
}

// Cleanup is a no-op: prefix records are deliberately left in the backend
// since addresses may still be allocated under them.
func (r *PrefixReconciler) Cleanup(context.Context, engine.Identity) error {
	return nil
}
