package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
)

type countingPurger struct {
	calls atomic.Int64
	swept chan struct{}
}

func (p *countingPurger) PurgeExpiredSessions(context.Context) int {
	p.calls.Add(1)
	select {
	case p.swept <- struct{}{}:
	default:
	}
	return 1
}

func TestSessionJanitor_SweepsUntilStopped(t *testing.T) {
	t.Parallel()

	purger := &countingPurger{swept: make(chan struct{}, 1)}
	stop := startSessionJanitor(purger, 5*time.Millisecond, logging.NewNop())

	select {
	case <-purger.swept:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected janitor to sweep at least once")
	}

	if err := stop(); err != nil {
		t.Fatalf("stop janitor: %v", err)
	}
	after := purger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := purger.calls.Load(); got != after {
		t.Fatalf("expected no sweeps after stop, got %d more", got-after)
	}
}

func TestSessionJanitorInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ttl  time.Duration
		want time.Duration
	}{
		{ttl: 4 * time.Hour, want: time.Minute},
		{ttl: 90 * time.Second, want: 45 * time.Second},
		{ttl: time.Second, want: time.Second},
		{ttl: 0, want: time.Second},
	}
	for _, tt := range tests {
		if got := sessionJanitorInterval(tt.ttl); got != tt.want {
			t.Fatalf("sessionJanitorInterval(%s)=%s want=%s", tt.ttl, got, tt.want)
		}
	}
}
