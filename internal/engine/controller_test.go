package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
)

// stubReconciler records calls and returns scripted results.
type stubReconciler struct {
	mu       sync.Mutex
	calls    int
	cleanups []Identity

	reconcile func(ctx context.Context, obj client.Object) (Result, error)
}

func (s *stubReconciler) NewObject() client.Object { return &netfabricv1alpha1.IPClaim{} }

func (s *stubReconciler) Reconcile(ctx context.Context, obj client.Object) (Result, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.reconcile != nil {
		return s.reconcile(ctx, obj)
	}
	return Result{Terminal: true}, nil
}

func (s *stubReconciler) Cleanup(_ context.Context, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanups = append(s.cleanups, id)
	return nil
}

func (s *stubReconciler) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubReconciler) cleanedUp() []Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Identity(nil), s.cleanups...)
}

func newTestScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	require.NoError(t, netfabricv1alpha1.AddToScheme(s))
	return s
}

func newTestClient(t *testing.T, objs ...client.Object) client.Client {
	t.Helper()
	return fake.NewClientBuilder().
		WithScheme(newTestScheme(t)).
		WithObjects(objs...).
		WithStatusSubresource(&netfabricv1alpha1.IPClaim{}).
		Build()
}

func classifyAlwaysTransient(error) FailureClass { return ClassTransient }

func startController(t *testing.T, c *Controller) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("controller did not stop")
		}
	})
	return cancel
}

func claimObject(name string) *netfabricv1alpha1.IPClaim {
	return &netfabricv1alpha1.IPClaim{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
	}
}

func TestControllerDispatchesAndWritesStatus(t *testing.T) {
	g := gomega.NewWithT(t)

	cl := newTestClient(t, claimObject("claim-a"))
	queue := NewQueue()
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(), WithWorkerCount(1))

	stub := &stubReconciler{
		reconcile: func(_ context.Context, obj client.Object) (Result, error) {
			claim := obj.(*netfabricv1alpha1.IPClaim)
			claim.Status.State = netfabricv1alpha1.StateAllocated
			return Result{Terminal: true}, nil
		},
	}
	ctrl.Register(KindIPClaim, stub)
	startController(t, ctrl)

	queue.Add(testIdentity("claim-a"))

	g.Eventually(func() netfabricv1alpha1.ResourceState {
		claim := &netfabricv1alpha1.IPClaim{}
		if err := cl.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "claim-a"}, claim); err != nil {
			return ""
		}
		return claim.Status.State
	}, 2*time.Second, 10*time.Millisecond).Should(gomega.Equal(netfabricv1alpha1.StateAllocated))

	claim := &netfabricv1alpha1.IPClaim{}
	require.NoError(t, cl.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "claim-a"}, claim))
	assert.NotNil(t, claim.Status.LastReconciled)
	assert.Nil(t, claim.Status.Error)
}

func TestControllerSurfacesErrorAndRetries(t *testing.T) {
	g := gomega.NewWithT(t)

	cl := newTestClient(t, claimObject("claim-a"))
	queue := NewQueue()
	// Tiny backoff so the retry lands inside the test window.
	policy := BackoffPolicy{
		TransientBase: 5 * time.Millisecond,
		MalformedBase: 5 * time.Millisecond,
		Multiplier:    2.0,
		Ceiling:       50 * time.Millisecond,
	}
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(),
		WithWorkerCount(1), WithBackoff(policy))

	stub := &stubReconciler{
		reconcile: func(context.Context, client.Object) (Result, error) {
			return Result{}, errors.New("backend unavailable")
		},
	}
	ctrl.Register(KindIPClaim, stub)
	startController(t, ctrl)

	queue.Add(testIdentity("claim-a"))

	// Retries keep arriving and the failure counter climbs.
	g.Eventually(stub.callCount, 2*time.Second, 10*time.Millisecond).
		Should(gomega.BeNumerically(">=", 3))
	assert.GreaterOrEqual(t, queue.Failures(testIdentity("claim-a")), 3)

	// The error is user-visible on status while retries continue.
	claim := &netfabricv1alpha1.IPClaim{}
	require.NoError(t, cl.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "claim-a"}, claim))
	require.NotNil(t, claim.Status.Error)
	assert.Contains(t, *claim.Status.Error, "backend unavailable")
}

func TestControllerSuccessResetsFailureCount(t *testing.T) {
	g := gomega.NewWithT(t)

	cl := newTestClient(t, claimObject("claim-a"))
	queue := NewQueue()
	policy := BackoffPolicy{
		TransientBase: 5 * time.Millisecond,
		MalformedBase: 5 * time.Millisecond,
		Multiplier:    2.0,
		Ceiling:       50 * time.Millisecond,
	}
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(),
		WithWorkerCount(1), WithBackoff(policy))

	var mu sync.Mutex
	failuresLeft := 2
	stub := &stubReconciler{
		reconcile: func(context.Context, client.Object) (Result, error) {
			mu.Lock()
			defer mu.Unlock()
			if failuresLeft > 0 {
				failuresLeft--
				return Result{}, errors.New("not yet")
			}
			return Result{Terminal: true}, nil
		},
	}
	ctrl.Register(KindIPClaim, stub)
	startController(t, ctrl)

	queue.Add(testIdentity("claim-a"))

	g.Eventually(stub.callCount, 2*time.Second, 10*time.Millisecond).
		Should(gomega.BeNumerically(">=", 3))
	g.Eventually(func() int {
		return queue.Failures(testIdentity("claim-a"))
	}, 2*time.Second, 10*time.Millisecond).Should(gomega.Equal(0))
}

func TestControllerRunsCleanupForDeletedObject(t *testing.T) {
	g := gomega.NewWithT(t)

	// No objects: the identity resolves to NotFound.
	cl := newTestClient(t)
	queue := NewQueue()
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(), WithWorkerCount(1))

	stub := &stubReconciler{}
	ctrl.Register(KindIPClaim, stub)
	startController(t, ctrl)

	id := testIdentity("claim-gone")
	queue.MarkFailure(id) // leftover backoff state from an earlier failure
	queue.Add(id)

	g.Eventually(func() []Identity {
		return stub.cleanedUp()
	}, 2*time.Second, 10*time.Millisecond).Should(gomega.ContainElement(id))

	// Reconcile never ran and the backoff state is gone.
	assert.Equal(t, 0, stub.callCount())
	assert.Equal(t, 0, queue.Failures(id))
}

func TestControllerRequeueAfter(t *testing.T) {
	g := gomega.NewWithT(t)

	cl := newTestClient(t, claimObject("claim-a"))
	queue := NewQueue()
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(), WithWorkerCount(1))

	stub := &stubReconciler{
		reconcile: func(context.Context, client.Object) (Result, error) {
			return Result{RequeueAfter: 10 * time.Millisecond}, nil
		},
	}
	ctrl.Register(KindIPClaim, stub)
	startController(t, ctrl)

	queue.Add(testIdentity("claim-a"))

	// The periodic requeue keeps reconciles coming without new events.
	g.Eventually(stub.callCount, 2*time.Second, 10*time.Millisecond).
		Should(gomega.BeNumerically(">=", 3))
}

func TestControllerTerminalResultDoesNotRequeue(t *testing.T) {
	g := gomega.NewWithT(t)

	cl := newTestClient(t, claimObject("claim-a"))
	queue := NewQueue()
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(), WithWorkerCount(1))

	stub := &stubReconciler{
		reconcile: func(context.Context, client.Object) (Result, error) {
			return Result{RequeueAfter: 5 * time.Millisecond, Terminal: true}, nil
		},
	}
	ctrl.Register(KindIPClaim, stub)
	startController(t, ctrl)

	queue.Add(testIdentity("claim-a"))

	g.Eventually(stub.callCount, 2*time.Second, 10*time.Millisecond).Should(gomega.Equal(1))
	g.Consistently(stub.callCount, 100*time.Millisecond, 10*time.Millisecond).Should(gomega.Equal(1))
}

func TestControllerUnregisteredKindIsDropped(t *testing.T) {
	g := gomega.NewWithT(t)

	cl := newTestClient(t)
	queue := NewQueue()
	ctrl := NewController(cl, queue, classifyAlwaysTransient, logr.Discard(), WithWorkerCount(1))
	startController(t, ctrl)

	id := Identity{Kind: KindDevice}
	id.Namespace = "default"
	id.Name = "dangling"
	queue.Add(id)

	g.Eventually(queue.Len, 2*time.Second, 10*time.Millisecond).Should(gomega.Equal(0))
}
