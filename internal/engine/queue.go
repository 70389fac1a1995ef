package engine

import (
	"sync"
	"time"

	"k8s.io/client-go/util/workqueue"
)

// Queue is the deduplicating, delay-aware work queue feeding the
// dispatch loop.
//
// Deduplication, delayed insertion and per-identity in-flight
// serialization come from client-go's workqueue: an identity added while
// being processed is re-queued only after Done, so reconcile N+1 for an
// identity never starts before reconcile N finished. The queue also owns
// the per-identity backoff state, reset on any successful reconcile and
// lost on restart (restart resumes at attempt 0; reconciliation is
// idempotent).
type Queue struct {
	inner workqueue.TypedDelayingInterface[Identity]

	mu       sync.Mutex
	failures map[Identity]int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		inner:    workqueue.NewTypedDelayingQueue[Identity](),
		failures: make(map[Identity]int),
	}
}

// Add enqueues an identity for reconciliation.
func (q *Queue) Add(id Identity) {
	q.inner.Add(id)
}

// AddAfter enqueues an identity no sooner than after d.
func (q *Queue) AddAfter(id Identity, d time.Duration) {
	q.inner.AddAfter(id, d)
}

// Get blocks for the next identity. The second return is true when the
// queue has shut down. Callers must call Done when finished.
func (q *Queue) Get() (Identity, bool) {
	id, shutdown := q.inner.Get()
	return id, shutdown
}

// Done marks an identity as processed, releasing it for re-queueing.
func (q *Queue) Done(id Identity) {
	q.inner.Done(id)
}

// MarkFailure increments the identity's attempt counter and returns the
// new count.
func (q *Queue) MarkFailure(id Identity) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.failures[id]++
	return q.failures[id]
}

// Failures returns the identity's consecutive failure count.
func (q *Queue) Failures(id Identity) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.failures[id]
}

// Forget resets the identity's backoff state after a success or once the
// identity is dropped for good.
func (q *Queue) Forget(id Identity) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.failures, id)
}

// Len returns the number of identities waiting (not in flight).
func (q *Queue) Len() int {
	return q.inner.Len()
}

// ShutDownWithDrain stops accepting adds and shuts down once in-flight
// work finishes. Identities already queued at shutdown are still handed
// out until the backlog empties; workqueue drains the queue, not just
// the in-flight set.
func (q *Queue) ShutDownWithDrain() {
	q.inner.ShutDownWithDrain()
}
