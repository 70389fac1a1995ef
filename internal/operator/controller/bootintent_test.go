package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
)

func readyProfile(name string) *netfabricv1alpha1.BootProfile {
	profile := testProfile(name)
	profile.Status.State = netfabricv1alpha1.StateReady
	return profile
}

func testIntent(name string) *netfabricv1alpha1.BootIntent {
	return &netfabricv1alpha1.BootIntent{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
		Spec: netfabricv1alpha1.BootIntentSpec{
			DeviceRef:  netfabricv1alpha1.ResourceReference{Name: "leaf-1"},
			ProfileRef: netfabricv1alpha1.ResourceReference{Name: "profile-a"},
		},
	}
}

func TestBootIntentRendersAssignment(t *testing.T) {
	cl := newFakeClient(t, testDevice("leaf-1"), readyProfile("profile-a"))
	r := NewBootIntentReconciler(cl)

	intent := testIntent("intent-1")
	result, err := r.Reconcile(context.Background(), intent)
	require.NoError(t, err)

	require.NotNil(t, intent.Status.Assignment)
	assert.Equal(t, "https://boot.example.com/vmlinuz", intent.Status.Assignment.Kernel)
	assert.Equal(t, []string{"https://boot.example.com/initrd.img"}, intent.Status.Assignment.Initrd)
	// Without a claim the {address} token is passed through untouched.
	assert.Equal(t, "console=ttyS0 ip={address}", intent.Status.Assignment.Cmdline)
	assert.Equal(t, netfabricv1alpha1.StateReady, intent.Status.State)
	assert.Equal(t, driftRefreshInterval, result.RequeueAfter)
}

func TestBootIntentSubstitutesClaimAddress(t *testing.T) {
	claim := testClaim("claim-1", "pool-a")
	claim.Status.Address = "10.0.0.10/24"
	claim.Status.State = netfabricv1alpha1.StateAllocated

	cl := newFakeClient(t, testDevice("leaf-1"), readyProfile("profile-a"), claim)
	r := NewBootIntentReconciler(cl)

	intent := testIntent("intent-1")
	intent.Spec.ClaimRef = &netfabricv1alpha1.ResourceReference{Name: "claim-1"}

	_, err := r.Reconcile(context.Background(), intent)
	require.NoError(t, err)

	require.NotNil(t, intent.Status.Assignment)
	// The mask is stripped before substitution.
	assert.Equal(t, "console=ttyS0 ip=10.0.0.10", intent.Status.Assignment.Cmdline)
}

func TestBootIntentDefersOnMissingReferences(t *testing.T) {
	t.Run("missing device", func(t *testing.T) {
		cl := newFakeClient(t, readyProfile("profile-a"))
		r := NewBootIntentReconciler(cl)

		_, err := r.Reconcile(context.Background(), testIntent("intent-1"))
		require.Error(t, err)
		assert.True(t, engine.IsDependencyNotReady(err))
	})

	t.Run("missing profile", func(t *testing.T) {
		cl := newFakeClient(t, testDevice("leaf-1"))
		r := NewBootIntentReconciler(cl)

		_, err := r.Reconcile(context.Background(), testIntent("intent-1"))
		require.Error(t, err)
		assert.True(t, engine.IsDependencyNotReady(err))
	})

	t.Run("profile not ready", func(t *testing.T) {
		cl := newFakeClient(t, testDevice("leaf-1"), testProfile("profile-a"))
		r := NewBootIntentReconciler(cl)

		_, err := r.Reconcile(context.Background(), testIntent("intent-1"))
		require.Error(t, err)
		assert.True(t, engine.IsDependencyNotReady(err))
	})

	t.Run("claim not yet bound", func(t *testing.T) {
		claim := testClaim("claim-1", "pool-a")
		cl := newFakeClient(t, testDevice("leaf-1"), readyProfile("profile-a"), claim)
		r := NewBootIntentReconciler(cl)

		intent := testIntent("intent-1")
		intent.Spec.ClaimRef = &netfabricv1alpha1.ResourceReference{Name: "claim-1"}

		_, err := r.Reconcile(context.Background(), intent)
		require.Error(t, err)
		assert.True(t, engine.IsDependencyNotReady(err))
		assert.Nil(t, intent.Status.Assignment)
	})
}

func TestBareAddress(t *testing.T) {
	assert.Equal(t, "10.0.0.10", bareAddress("10.0.0.10/24"))
	assert.Equal(t, "10.0.0.10", bareAddress("10.0.0.10"))
	assert.Equal(t, "fd00::1", bareAddress("fd00::1/64"))
}
