package ipam

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassificationHelpers(t *testing.T) {
	notFound := &APIError{StatusCode: http.StatusNotFound, Message: "gone"}
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized, Message: "bad token"}
	badRequest := &APIError{StatusCode: http.StatusBadRequest, Message: "bad cidr"}
	serverErr := &APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(badRequest))

	assert.True(t, IsAuth(unauthorized))
	assert.False(t, IsAuth(notFound))

	assert.True(t, IsValidation(badRequest))
	// 404 and auth failures are not validation failures.
	assert.False(t, IsValidation(notFound))
	assert.False(t, IsValidation(unauthorized))
	assert.False(t, IsValidation(serverErr))

	assert.True(t, IsTransient(serverErr))
	assert.False(t, IsTransient(badRequest))
	assert.False(t, IsTransient(nil))
}

func TestErrorClassificationUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("lookup prefix 10.0.0.0/24: %w",
		&APIError{StatusCode: http.StatusNotFound, Message: "x"})
	assert.True(t, IsNotFound(wrapped))

	exhausted := fmt.Errorf("allocate in prefix 7: %w", ErrPrefixExhausted)
	assert.True(t, IsExhausted(exhausted))

	assert.True(t, IsTransient(fmt.Errorf("call: %w", context.DeadlineExceeded)))

	var netErr net.Error = &net.DNSError{Err: "no such host", IsTemporary: false}
	assert.True(t, IsTransient(fmt.Errorf("call: %w", netErr)))

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsTransient(errors.New("plain")))
}
