package controller

import (
	"context"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/manager"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
	"github.com/netfabric-io/netfabric-operator/internal/platform/ipam"
)

// Operator wires the watch subscriptions, the queue and the per-kind
// reconcilers together and runs the dispatch loop under the manager.
type Operator struct {
	manager    manager.Manager
	queue      *engine.Queue
	controller *engine.Controller
}

// SetupWithManager builds the operator and registers it as a runnable.
func SetupWithManager(mgr manager.Manager, backend ipam.Client, opts ...engine.Option) (*Operator, error) {
	queue := engine.NewQueue()
	ctrl := engine.NewController(mgr.GetClient(), queue, ClassifyFailure,
		mgr.GetLogger().WithName("engine"), opts...)

	cl := mgr.GetClient()
	ctrl.Register(engine.KindAggregate, NewAggregateReconciler(backend))
	ctrl.Register(engine.KindPrefix, NewPrefixReconciler(cl, backend))
	ctrl.Register(engine.KindPool, NewPoolReconciler(cl, backend))
	ctrl.Register(engine.KindIPClaim, NewClaimReconciler(cl, backend))
	ctrl.Register(engine.KindDevice, NewDeviceReconciler(backend))
	ctrl.Register(engine.KindBootProfile, NewBootProfileReconciler())
	ctrl.Register(engine.KindBootIntent, NewBootIntentReconciler(cl))

	op := &Operator{
		manager:    mgr,
		queue:      queue,
		controller: ctrl,
	}
	if err := mgr.Add(op); err != nil {
		return nil, fmt.Errorf("add operator runnable: %w", err)
	}
	return op, nil
}

// Start subscribes the watchers and runs the dispatch loop until ctx is
// cancelled. The manager only calls this once the informer caches have
// synced. Implements manager.Runnable.
func (o *Operator) Start(ctx context.Context) error {
	watcher := engine.NewWatcher(o.manager.GetCache(), o.queue)

	watched := []struct {
		kind engine.Kind
		obj  client.Object
	}{
		{engine.KindAggregate, &netfabricv1alpha1.Aggregate{}},
		{engine.KindPrefix, &netfabricv1alpha1.Prefix{}},
		{engine.KindPool, &netfabricv1alpha1.Pool{}},
		{engine.KindIPClaim, &netfabricv1alpha1.IPClaim{}},
		{engine.KindDevice, &netfabricv1alpha1.Device{}},
		{engine.KindBootProfile, &netfabricv1alpha1.BootProfile{}},
		{engine.KindBootIntent, &netfabricv1alpha1.BootIntent{}},
	}
	for _, w := range watched {
		if err := watcher.Watch(ctx, w.kind, w.obj); err != nil {
			return err
		}
	}

	return o.controller.Start(ctx)
}

// NeedLeaderElection gates the dispatch loop on holding the lease so two
// replicas never race allocations against the backend.
func (o *Operator) NeedLeaderElection() bool {
	return true
}
