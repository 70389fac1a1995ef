package engine

import (
	"time"
)

// FailureClass partitions reconcile failures for backoff purposes.
type FailureClass int

const (
	// ClassTransient covers network errors, server-side failures,
	// exhaustion and unresolved references.
	ClassTransient FailureClass = iota
	// ClassMalformed covers requests the backend rejected as invalid.
	// Still retried: the cause may be an out-of-order creation on the
	// backend side, but it starts from a longer base delay.
	ClassMalformed
)

func (c FailureClass) String() string {
	if c == ClassMalformed {
		return "malformed"
	}
	return "transient"
}

// BackoffPolicy computes retry delays. It is a pure function of the
// failure class and the attempt count; the attempt counter itself lives
// in the queue.
type BackoffPolicy struct {
	// TransientBase is the first delay for transient failures.
	TransientBase time.Duration
	// MalformedBase is the first delay for malformed-request failures.
	MalformedBase time.Duration
	// Multiplier grows the delay per attempt.
	Multiplier float64
	// Ceiling caps the delay, bounding backend load during outages.
	Ceiling time.Duration
}

// DefaultBackoff returns the policy used by the operator.
func DefaultBackoff() BackoffPolicy {
	return BackoffPolicy{
		TransientBase: 2 * time.Second,
		MalformedBase: 10 * time.Second,
		Multiplier:    2.0,
		Ceiling:       5 * time.Minute,
	}
}

// Delay returns the delay before retry number attempt (1-based).
// It is non-decreasing in attempt and capped at the ceiling.
func (p BackoffPolicy) Delay(class FailureClass, attempt int) time.Duration {
	base := p.TransientBase
	if class == ClassMalformed {
		base = p.MalformedBase
	}
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(base)
	for i := 1; i < attempt; i++ {
		delay *= p.Multiplier
		if delay >= float64(p.Ceiling) {
			return p.Ceiling
		}
	}
	if delay > float64(p.Ceiling) {
		return p.Ceiling
	}
	return time.Duration(delay)
}
