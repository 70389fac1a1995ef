package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	netfabricv1alpha1 "github.com/netfabric-io/netfabric-operator/api/v1alpha1"
)

const defaultWorkerCount = 4

// Reconciler is the per-kind reconcile capability the dispatch loop is
// generic over.
type Reconciler interface {
	// NewObject returns an empty object of the reconciler's kind.
	NewObject() client.Object

	// Reconcile converges the object against the external system and
	// updates the object's status fields in place. The dispatch loop
	// owns the status write-back.
	Reconcile(ctx context.Context, obj client.Object) (Result, error)

	// Cleanup releases external state for an already-deleted object.
	// Best effort: the identity is dropped afterwards either way.
	Cleanup(ctx context.Context, id Identity) error
}

// Classifier maps a reconcile error to its failure class.
type Classifier func(error) FailureClass

// Controller owns the queue, the watcher subscriptions and the set of
// per-kind reconcilers, and drives the dispatch loop.
//
// Distinct identities reconcile concurrently across the worker pool;
// the queue serializes reconciles of the same identity. No mutable state
// is shared between workers beyond the queue's own locking and the
// backend client's thread safety.
type Controller struct {
	client   client.Client
	queue    *Queue
	backoff  BackoffPolicy
	classify Classifier
	workers  int
	log      logr.Logger

	mu          sync.Mutex
	reconcilers map[Kind]Reconciler
}

// Option configures a Controller.
type Option func(*Controller)

// WithWorkerCount sets the size of the reconcile worker pool.
func WithWorkerCount(n int) Option {
	return func(c *Controller) {
		c.workers = n
	}
}

// WithBackoff overrides the backoff policy.
func WithBackoff(p BackoffPolicy) Option {
	return func(c *Controller) {
		c.backoff = p
	}
}

// NewController creates a controller draining the given queue.
func NewController(cl client.Client, queue *Queue, classify Classifier, log logr.Logger, opts ...Option) *Controller {
	c := &Controller{
		client:      cl,
		queue:       queue,
		backoff:     DefaultBackoff(),
		classify:    classify,
		workers:     defaultWorkerCount,
		log:         log,
		reconcilers: make(map[Kind]Reconciler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register installs the reconciler for a kind. Must be called before Start.
func (c *Controller) Register(kind Kind, r Reconciler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconcilers[kind] = r
}

// Start runs the worker pool until ctx is cancelled, then drains in-flight
// work. Implements manager.Runnable.
func (c *Controller) Start(ctx context.Context) error {
	c.log.Info("starting reconcile workers", "workers", c.workers)

	go func() {
		<-ctx.Done()
		// Stop accepting new work; the queued backlog and in-flight
		// reconciles drain before workers exit.
		c.queue.ShutDownWithDrain()
	}()

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c.processNext(ctx) {
			}
		}()
	}
	wg.Wait()

	c.log.Info("reconcile workers stopped")
	return nil
}

func (c *Controller) processNext(ctx context.Context) bool {
	id, shutdown := c.queue.Get()
	if shutdown {
		return false
	}
	defer c.queue.Done(id)

	queueDepth.Set(float64(c.queue.Len()))

	// In-flight work is allowed to outlive the shutdown signal so the
	// backend is never left with partial allocation state; the per-call
	// timeouts inside the gateway still bound every external call.
	c.reconcileOne(context.WithoutCancel(ctx), id)
	return true
}

func (c *Controller) reconcileOne(ctx context.Context, id Identity) {
	log := c.log.WithValues("kind", id.Kind, "namespace", id.Namespace, "name", id.Name)

	c.mu.Lock()
	rec, ok := c.reconcilers[id.Kind]
	c.mu.Unlock()
	if !ok {
		log.Error(nil, "no reconciler registered for kind, dropping")
		c.queue.Forget(id)
		return
	}

	start := time.Now()

	obj := rec.NewObject()
	if err := c.client.Get(ctx, id.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			// Deleted since enqueue: run cleanup, drop for good.
			if cleanupErr := rec.Cleanup(ctx, id); cleanupErr != nil {
				log.Error(cleanupErr, "cleanup after deletion failed")
			}
			c.queue.Forget(id)
			recordReconcile(string(id.Kind), "deleted", time.Since(start).Seconds())
			return
		}
		log.Error(err, "unable to fetch object")
		c.requeueFailure(id, err)
		recordReconcile(string(id.Kind), "error", time.Since(start).Seconds())
		return
	}

	result, reconcileErr := rec.Reconcile(ctx, obj)

	// Shared status fields are written on success and failure alike so
	// the error is user-visible while retries continue.
	if carrier, ok := obj.(netfabricv1alpha1.StatusCarrier); ok {
		st := carrier.ReconcileStatus()
		st.SetError(reconcileErr)
		st.LastReconciled = &metav1.Time{Time: time.Now()}
		st.ObservedGeneration = obj.GetGeneration()
	}
	if statusErr := c.client.Status().Update(ctx, obj); statusErr != nil {
		log.Error(statusErr, "failed to update status")
		if reconcileErr == nil {
			reconcileErr = fmt.Errorf("status update: %w", statusErr)
		}
	}

	if reconcileErr != nil {
		log.Info("reconcile failed, backing off", "error", reconcileErr.Error(),
			"attempts", c.queue.Failures(id)+1)
		c.requeueFailure(id, reconcileErr)
		recordReconcile(string(id.Kind), "error", time.Since(start).Seconds())
		return
	}

	c.queue.Forget(id)
	if result.RequeueAfter > 0 && !result.Terminal {
		c.queue.AddAfter(id, result.RequeueAfter)
	}
	recordReconcile(string(id.Kind), "success", time.Since(start).Seconds())
}

func (c *Controller) requeueFailure(id Identity, err error) {
	class := c.classify(err)
	attempt := c.queue.MarkFailure(id)
	delay := c.backoff.Delay(class, attempt)
	recordFailure(string(id.Kind), class.String())
	c.queue.AddAfter(id, delay)
}
