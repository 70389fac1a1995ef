package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelayGrowsPerAttempt(t *testing.T) {
	p := DefaultBackoff()

	assert.Equal(t, 2*time.Second, p.Delay(ClassTransient, 1))
	assert.Equal(t, 4*time.Second, p.Delay(ClassTransient, 2))
	assert.Equal(t, 8*time.Second, p.Delay(ClassTransient, 3))
}

func TestBackoffClassBases(t *testing.T) {
	p := DefaultBackoff()

	// Malformed requests start from a longer base than transient failures.
	assert.Greater(t, p.Delay(ClassMalformed, 1), p.Delay(ClassTransient, 1))
	assert.Equal(t, 10*time.Second, p.Delay(ClassMalformed, 1))
}

func TestBackoffNonDecreasing(t *testing.T) {
	p := DefaultBackoff()

	for _, class := range []FailureClass{ClassTransient, ClassMalformed} {
		prev := time.Duration(0)
		for attempt := 1; attempt <= 30; attempt++ {
			d := p.Delay(class, attempt)
			assert.GreaterOrEqual(t, d, prev, "class %s attempt %d", class, attempt)
			prev = d
		}
	}
}

func TestBackoffCeiling(t *testing.T) {
	p := DefaultBackoff()

	// Far past the point where the exponential would overflow.
	assert.Equal(t, p.Ceiling, p.Delay(ClassTransient, 64))
	assert.Equal(t, p.Ceiling, p.Delay(ClassMalformed, 64))
}

func TestBackoffAttemptFloor(t *testing.T) {
	p := DefaultBackoff()

	// Attempt counts below 1 behave like the first attempt.
	assert.Equal(t, p.Delay(ClassTransient, 1), p.Delay(ClassTransient, 0))
	assert.Equal(t, p.Delay(ClassTransient, 1), p.Delay(ClassTransient, -3))
}

func TestFailureClassString(t *testing.T) {
	assert.Equal(t, "transient", ClassTransient.String())
	assert.Equal(t, "malformed", ClassMalformed.String())
}
