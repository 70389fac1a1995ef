package engine

import (
	"context"
	"fmt"

	toolscache "k8s.io/client-go/tools/cache"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// InformerSource hands out shared informers per object type. Satisfied by
// controller-runtime's cache.Cache.
type InformerSource interface {
	GetInformer(ctx context.Context, obj client.Object, opts ...cache.InformerGetOption) (cache.Informer, error)
}

// Watcher subscribes to change feeds for each kind and normalizes
// add/update/delete events into queue entries.
//
// The informer contract gives at-least-once delivery: a reconnect after a
// transient disconnect relists, so edits made during the gap still produce
// events. Payloads are discarded; only the identity is enqueued and the
// reconciler re-reads current state.
type Watcher struct {
	source InformerSource
	queue  *Queue
}

// NewWatcher creates a watcher feeding the given queue.
func NewWatcher(source InformerSource, queue *Queue) *Watcher {
	return &Watcher{source: source, queue: queue}
}

// Watch subscribes the given kind. The subscription lives as long as the
// informer cache does.
func (w *Watcher) Watch(ctx context.Context, kind Kind, obj client.Object) error {
	informer, err := w.source.GetInformer(ctx, obj)
	if err != nil {
		return fmt.Errorf("get informer for %s: %w", kind, err)
	}

	_, err = informer.AddEventHandler(toolscache.ResourceEventHandlerFuncs{
		AddFunc: func(o interface{}) {
			w.enqueue(kind, o)
		},
		UpdateFunc: func(_, newObj interface{}) {
			w.enqueue(kind, newObj)
		},
		DeleteFunc: func(o interface{}) {
			// Deletions enqueue like any other change; the dispatch
			// loop notices the missing object and runs cleanup.
			if tombstone, ok := o.(toolscache.DeletedFinalStateUnknown); ok {
				o = tombstone.Obj
			}
			w.enqueue(kind, o)
		},
	})
	if err != nil {
		return fmt.Errorf("add event handler for %s: %w", kind, err)
	}
	return nil
}

func (w *Watcher) enqueue(kind Kind, o interface{}) {
	obj, ok := o.(client.Object)
	if !ok {
		return
	}
	id := Identity{Kind: kind}
	id.Namespace = obj.GetNamespace()
	id.Name = obj.GetName()
	w.queue.Add(id)
}
