package scribe

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("transient", func(t *testing.T) {
		err := NewTransientError("rate limited", 429, cause)
		assert.True(t, err.Retryable())
		assert.Equal(t, ErrorTransient, err.Category())
		assert.Equal(t, 429, err.StatusCode())
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
	})

	t.Run("transient with retry delay", func(t *testing.T) {
		err := NewTransientErrorWithRetry("overloaded", 503, 2*time.Second, nil)
		assert.Equal(t, 2*time.Second, err.RetryAfter())
		assert.Equal(t, 2*time.Second, RetryAfterOf(err))
	})

	t.Run("permanent", func(t *testing.T) {
		err := NewPermanentError("invalid api key", 401, nil)
		assert.False(t, err.Retryable())
		assert.True(t, IsPermanent(err))
		assert.Equal(t, 401, StatusCodeOf(err))
	})

	t.Run("user input", func(t *testing.T) {
		err := NewUserInputError("empty query", 400, nil)
		assert.Equal(t, ErrorUserInput, err.Category())
		assert.False(t, err.Retryable())
	})
}

func TestErrorMessage(t *testing.T) {
	withCause := NewPermanentError("model not found", 404, errors.New("no such model"))
	assert.Equal(t, "model not found: no such model", withCause.Error())

	withoutCause := NewPermanentError("model not found", 404, nil)
	assert.Equal(t, "model not found", withoutCause.Error())
}

func TestCategoryOfWrappedError(t *testing.T) {
	inner := NewTransientError("timeout", 0, nil)
	wrapped := fmt.Errorf("chat failed: %w", inner)

	assert.True(t, IsTransient(wrapped))
	assert.Equal(t, 0, StatusCodeOf(wrapped))

	assert.False(t, IsTransient(errors.New("plain")))
	assert.False(t, IsPermanent(nil))
	assert.Zero(t, RetryAfterOf(errors.New("plain")))
}
