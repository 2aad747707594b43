package resilience

import "time"

// Breaker defaults, mirrored by the SCOREBOOK_CIRCUIT_* settings: five
// transient scorebook failures in a row open the breaker for 15s, after which
// two trial requests decide whether it closes.
const (
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 15 * time.Second
	DefaultHalfOpenMaxReq   = 2
)

// CircuitBreakerConfig tunes a CircuitBreaker. A disabled breaker lets every
// call through and never changes state.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: DefaultFailureThreshold,
		OpenTimeout:      DefaultOpenTimeout,
		HalfOpenMaxReq:   DefaultHalfOpenMaxReq,
	}
}

// Normalized fills unset or out-of-range limits with the defaults and keeps Enabled as given.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	c.FailureThreshold = orDefault(c.FailureThreshold, DefaultFailureThreshold)
	c.HalfOpenMaxReq = orDefault(c.HalfOpenMaxReq, DefaultHalfOpenMaxReq)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = DefaultOpenTimeout
	}
	return c
}

func orDefault(v, def int) int {
	if v < 1 {
		return def
	}
	return v
}
