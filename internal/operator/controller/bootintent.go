package controller

import (
	"context"
	"strings"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
)

// addressToken is replaced in a profile's cmdline with the bound claim
// address (without the prefix length).
const addressToken = "{address}"

// BootIntentReconciler renders the effective boot assignment for a device
// from its referenced profile, and optionally a bound claim address.
//
// References resolve lazily every pass; the intent stays in recoverable
// retry until device, profile and (if referenced) claim binding all exist.
type BootIntentReconciler struct {
	client client.Client
}

// NewBootIntentReconciler creates the BootIntent reconciler.
func NewBootIntentReconciler(cl client.Client) *BootIntentReconciler {
	return &BootIntentReconciler{client: cl}
}

var _ engine.Reconciler = (*BootIntentReconciler)(nil)

// NewObject returns an empty BootIntent.
func (r *BootIntentReconciler) NewObject() client.Object {
	return &netfabricv1alpha1.BootIntent{}
}

// Reconcile resolves the intent's references and renders the assignment.
func (r *BootIntentReconciler) Reconcile(ctx context.Context, obj client.Object) (engine.Result, error) {
	intent := obj.(*netfabricv1alpha1.BootIntent)
	logger := log.FromContext(ctx).WithValues("bootintent", client.ObjectKeyFromObject(intent))

	if intent.Status.State == "" {
		intent.Status.State = netfabricv1alpha1.StatePending
	}

	device := &netfabricv1alpha1.Device{}
	if err := resolveRef(ctx, r.client, intent.Spec.DeviceRef, intent.Namespace, device); err != nil {
		return engine.Result{}, err
	}

	profile := &netfabricv1alpha1.BootProfile{}
	if err := resolveRef(ctx, r.client, intent.Spec.ProfileRef, intent.Namespace, profile); err != nil {
		return engine.Result{}, err
	}
	if profile.Status.State != netfabricv1alpha1.StateReady {
		return engine.Result{}, engine.DependencyNotReady("boot profile "+intent.Spec.ProfileRef.String(), nil)
	}

	cmdline := profile.Spec.Cmdline
	if intent.Spec.ClaimRef != nil {
		claim := &netfabricv1alpha1.IPClaim{}
		if err := resolveRef(ctx, r.client, *intent.Spec.ClaimRef, intent.Namespace, claim); err != nil {
			return engine.Result{}, err
		}
		if claim.Status.Address == "" {
			return engine.Result{}, engine.DependencyNotReady("claim binding "+intent.Spec.ClaimRef.String(), nil)
		}
		cmdline = strings.ReplaceAll(cmdline, addressToken, bareAddress(claim.Status.Address))
	}

	intent.Status.Assignment = &netfabricv1alpha1.BootAssignment{
		Kernel:  profile.Spec.Kernel,
		Initrd:  append([]string(nil), profile.Spec.Initrd...),
		Cmdline: cmdline,
	}
	intent.Status.State = netfabricv1alpha1.StateReady

	logger.V(1).Info("boot assignment rendered", "device", device.Name, "kernel", profile.Spec.Kernel)

	// Referenced objects change without an edit to the intent; re-render
	// periodically to pick that up.
	return engine.Result{RequeueAfter: driftRefreshInterval}, nil
}

// Cleanup is a no-op: intents own no external state.
func (r *BootIntentReconciler) Cleanup(context.Context, engine.Identity) error {
	return nil
}

// bareAddress strips the prefix length from a CIDR-notation address.
func bareAddress(cidr string) string {
	if i := strings.IndexByte(cidr, '/'); i >= 0 {
		return cidr[:i]
	}
	return cidr
}
