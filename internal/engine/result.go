package engine

import (
	"errors"
	"fmt"
	"time"
)

// Result is returned by every reconcile.
type Result struct {
	// RequeueAfter schedules a periodic re-check even though the reconcile
	// succeeded. Used for resources whose external state drifts without an
	// object edit, e.g. pool counters.
	RequeueAfter time.Duration

	// Terminal marks the resource as fully converged with no re-check
	// needed; it suppresses RequeueAfter.
	Terminal bool
}

// NotReadyError marks a reconcile blocked on a dependency that does not
// exist yet: a cross-object reference that fails to resolve, or a backend
// record still missing. Creation order of objects is not guaranteed, so
// this is always recoverable, never terminal.
type NotReadyError struct {
	Reference string
	Err       error
}

func (e *NotReadyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dependency %s not ready: %v", e.Reference, e.Err)
	}
	return fmt.Sprintf("dependency %s not ready", e.Reference)
}

func (e *NotReadyError) Unwrap() error {
	return e.Err
}

// DependencyNotReady wraps err as a recoverable missing-dependency failure.
func DependencyNotReady(reference string, err error) error {
	return &NotReadyError{Reference: reference, Err: err}
}

// IsDependencyNotReady reports whether err marks a missing dependency.
func IsDependencyNotReady(err error) bool {
	var nr *NotReadyError
	return errors.As(err, &nr)
}
