package controller

import (
	"context"
	"fmt"
	"net/url"

	"sigs.k8s.io/controller-runtime/pkg/client"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
)

// BootProfileReconciler validates boot profiles. Profiles have no backend
// record; boot delivery itself is outside the operator.
type BootProfileReconciler struct{}

// NewBootProfileReconciler creates the BootProfile reconciler.
func NewBootProfileReconciler() *BootProfileReconciler {
	return &BootProfileReconciler{}
}

var _ engine.Reconciler = (*BootProfileReconciler)(nil)

// NewObject returns an empty BootProfile.
func (r *BootProfileReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.BootProfile{}
}

// Reconcile validates the profile's artifact URLs.
func (r *BootProfileReconciler) Reconcile(_ context.Context, obj client.Object) (engine.Result, error) {
	profile := obj.(*netfabricv1alpha1.BootProfile)

	if profile.Status.State == "" {
		profile.Status.State = netfabricv1alpha1.StatePending
	}

	if err := validateBootURL("kernel", profile.Spec.Kernel); err != nil {
		return engine.Result{}, err
	}
	for i, initrd := range profile.Spec.Initrd {
		if err := validateBootURL(fmt.Sprintf("initrd[%d]", i), initrd); err != nil {
			return engine.Result{}, err
		}
	}

	profile.Status.State = netfabricv1alpha1.StateReady
	return engine.Result{Terminal: true}, nil
}

// Cleanup is a no-op: profiles own no external state.
func (r *BootProfileReconciler) Cleanup(context.Context, engine.Identity) error {
	return nil
}

func validateBootURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid URL %q: %w", field, raw, err)
	}
	switch u.Scheme {
	case "http", "https", "tftp":
	default:
		return fmt.Errorf("%s: unsupported URL scheme %q", field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: URL %q has no host", field, raw)
	}
	return nil
}
