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

// DeviceReconciler ensures a backend DCIM device record exists for each
// Device.
type DeviceReconciler struct {
	backend ipam.Client
}

// NewDeviceReconciler creates the Device reconciler.
func NewDeviceReconciler(backend ipam.Client) *DeviceReconciler {
	return &DeviceReconciler{backend: backend}
}

var _ engine.Reconciler = (*DeviceReconciler)(nil)

// NewObject returns an empty Device.
func (r *DeviceReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.Device{}
}

// Reconcile resolves the device in the backend by name, creating it when
// absent. The backend record is keyed by the object's name.
func (r *DeviceReconciler) Reconcile(ctx context.Context, obj client.Object) (engine.Result, error) {
	device := obj.(*netfabricv1alpha1.Device)
	logger := log.FromContext(ctx).WithValues("device", client.ObjectKeyFromObject(device))

	if device.Status.State == "" {
		device.Status.State = netfabricv1alpha1.StatePending
	}

	record, err := r.backend.LookupDevice(ctx, device.Name)
	if ipam.IsNotFound(err) {
		record, err = r.backend.CreateDevice(ctx, ipam.DeviceCreate{
			Name:       device.Name,
			Site:       device.Spec.Site,
			DeviceRole: device.Spec.DeviceRole,
			DeviceType: device.Spec.DeviceType,
			Serial:     device.Spec.Serial,
		})
		if err == nil {
			logger.Info("created backend device", "name", device.Name, "id", record.ID)
		}
	}
	if err != nil {
		return engine.Result{}, err
	}

	device.Status.ExternalID = fmt.Sprintf("%d", record.ID)
	device.Status.ExternalURL = record.URL
	device.Status.State = netfabricv1alpha1.StateReady

	return engine.Result{RequeueAfter: driftRefreshInterval}, nil
}

// Cleanup is a no-op: device records are left in the backend for operator
// review rather than deleted automatically.
func (r *DeviceReconciler) Cleanup(context.Context, engine.Identity) error {
	return nil
}
