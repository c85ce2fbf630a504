package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func TestExecute_ReturnsResult(t *testing.T) {
	cb := New(DefaultConfig("test"))

	got, err := Execute(cb, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestExecute_TripsAfterFailures(t *testing.T) {
	cfg := DefaultConfig("trip")
	cfg.Timeout = time.Minute
	cb := New(cfg)

	for i := 0; i < 3; i++ {
		_, err := Execute(cb, func() (string, error) { return "", errors.New("upstream down") })
		require.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())
	_, err := Execute(cb, func() (string, error) { return "unreachable", nil })
	assert.True(t, IsOpen(err))
	assert.Contains(t, err.Error(), "circuit breaker 'trip' is open")
}

func TestExecute_IgnoresSuccessfulErrors(t *testing.T) {
	cfg := DefaultConfig("lookups")
	cfg.IsSuccessful = func(err error) bool { return err == nil || errors.Is(err, errNotFound) }
	cb := New(cfg)

	for i := 0; i < 5; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, errNotFound })
		assert.ErrorIs(t, err, errNotFound)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestIsOpen(t *testing.T) {
	assert.False(t, IsOpen(errors.New("other")))
	assert.True(t, IsOpen(gobreaker.ErrTooManyRequests))
}
