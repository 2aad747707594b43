package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker(now *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker("scorebook", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	var transitions []string
	b.OnStateChange(func(name string, from, to CircuitState) {
		transitions = append(transitions, string(from)+"->"+string(to))
	})

	require.NoError(t, b.Allow())
	b.RecordFailure()
	assert.Equal(t, CircuitStateClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, CircuitStateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	now = now.Add(6 * time.Second)
	require.NoError(t, b.Allow())
	assert.Equal(t, CircuitStateHalfOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen, "only one probe in half-open")

	b.RecordSuccess()
	assert.Equal(t, CircuitStateClosed, b.State())
	assert.Equal(t, []string{"closed->open", "open->half_open", "half_open->closed"}, transitions)
}

func TestCircuitBreaker_ExecuteIgnoresNonFailures(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	errNotFound := errors.New("not found")
	errDown := errors.New("connection refused")
	isFailure := func(err error) bool { return !errors.Is(err, errNotFound) }

	for i := 0; i < 3; i++ {
		err := b.Execute(func() error { return errNotFound }, isFailure)
		assert.ErrorIs(t, err, errNotFound)
	}
	assert.Equal(t, CircuitStateClosed, b.State())

	_ = b.Execute(func() error { return errDown }, isFailure)
	_ = b.Execute(func() error { return errDown }, isFailure)
	assert.Equal(t, CircuitStateOpen, b.State())

	called := false
	err := b.Execute(func() error { called = true; return nil }, isFailure)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	b.RecordFailure()
	b.RecordFailure()
	now = now.Add(10 * time.Second)
	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, CircuitStateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreakerConfig_NormalizedKeepsEnabledFlag(t *testing.T) {
	got := CircuitBreakerConfig{FailureThreshold: -1, HalfOpenMaxReq: 3}.Normalized()

	assert.False(t, got.Enabled)
	assert.Equal(t, DefaultFailureThreshold, got.FailureThreshold)
	assert.Equal(t, DefaultOpenTimeout, got.OpenTimeout)
	assert.Equal(t, 3, got.HalfOpenMaxReq)
}
