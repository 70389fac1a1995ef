// Package controller contains the per-kind reconcilers for the netfabric
// operator and their wiring into the reconciliation engine.
package controller

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
	"github.com/netfabric-io/netfabric-operator/internal/engine"
	"github.com/netfabric-io/netfabric-operator/internal/platform/ipam"
)

const (
	// Pool counters drift as claims come and go, so pools re-check on a
	// short cadence even without an object edit.
	poolRefreshInterval = 1 * time.Minute

	// Ensure-exists kinds re-check occasionally to notice backend drift.
	driftRefreshInterval = 10 * time.Minute
)

// ClassifyFailure maps reconcile errors onto the engine's failure classes.
// Only requests the backend rejected as malformed get the slower retry
// cadence; everything else (network, 5xx, exhaustion, unresolved
// references) is plain transient.
func ClassifyFailure(err error) engine.FailureClass {
	if engine.IsDependencyNotReady(err) || ipam.IsExhausted(err) {
		return engine.ClassTransient
	}
	if ipam.IsValidation(err) {
		return engine.ClassMalformed
	}
	return engine.ClassTransient
}

// resolveRef fetches the object a ResourceReference points at, defaulting
// the namespace to the referencing object's. A missing referent is a
// recoverable missing-dependency failure, never terminal: creation order
// is not guaranteed.
func resolveRef(ctx context.Context, cl client.Client, ref netfabricv1alpha1.ResourceReference, defaultNamespace string, into client.Object) error {
	key := types.NamespacedName{
		Namespace: ref.ResolvedNamespace(defaultNamespace),
		Name:      ref.Name,
	}
	if err := cl.Get(ctx, key, into); err != nil {
		if apierrors.IsNotFound(err) {
			return engine.DependencyNotReady(key.String(), err)
		}
		return fmt.Errorf("resolve reference %s: %w", key, err)
	}
	return nil
}
