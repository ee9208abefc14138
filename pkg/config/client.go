package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// CatalogClientConfig configures callers of CatalogService.
type CatalogClientConfig struct {
	Addr           string               `koanf:"addr"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuitbreaker"`
}

// RetryConfig retries transient failures with exponential backoff.
// MaxAttempts counts the first call, so 1 disables retries.
type RetryConfig struct {
	MaxAttempts    uint          `koanf:"maxattempts"`
	InitialBackoff time.Duration `koanf:"initialbackoff"`
}

// CircuitBreakerConfig opens the breaker after ConsecutiveFailures transient failures in a row,
// or once more than ErrorRatePercent of the calls in the current window failed.
// HalfOpenRequests calls are let through after OpenTimeout to check whether the server recovered.
type CircuitBreakerConfig struct {
	ConsecutiveFailures uint32        `koanf:"consecutivefailures"`
	ErrorRatePercent    int           `koanf:"errorratepercent"`
	OpenTimeout         time.Duration `koanf:"opentimeout"`
	HalfOpenRequests    uint32        `koanf:"halfopenrequests"`
}

// DefaultCatalogClientConfig returns the settings used for addr when nothing else is configured.
func DefaultCatalogClientConfig(addr string) CatalogClientConfig {
	return CatalogClientConfig{
		Addr:    addr,
		Timeout: 3 * time.Second,
		Retry: RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: 100 * time.Millisecond,
		},
		CircuitBreaker: CircuitBreakerConfig{
			ConsecutiveFailures: 5,
			ErrorRatePercent:    60,
			OpenTimeout:         10 * time.Second,
			HalfOpenRequests:    3,
		},
	}
}

func (c *CatalogClientConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog Client ---\n")
	fmt.Fprintf(&b, "  addr: %s\n", c.Addr)
	fmt.Fprintf(&b, "  timeout: %s\n", c.Timeout)
	fmt.Fprintf(&b, "  retry: attempts=%d backoff=%v\n", c.Retry.MaxAttempts, c.Retry.InitialBackoff)
	fmt.Fprintf(&b, "  circuitbreaker: failures=%d rate=%d%% open=%v halfopen=%d\n",
		c.CircuitBreaker.ConsecutiveFailures, c.CircuitBreaker.ErrorRatePercent,
		c.CircuitBreaker.OpenTimeout, c.CircuitBreaker.HalfOpenRequests)
	return b.String()
}

func (c *CatalogClientConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("catalog address is not configured")
	}
	if !strings.Contains(c.Addr, "://") {
		if _, _, err := net.SplitHostPort(c.Addr); err != nil {
			return fmt.Errorf("invalid catalog address %q: %w", c.Addr, err)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("catalog call timeout is not configured")
	}
	if c.Retry.MaxAttempts == 0 {
		return fmt.Errorf("retry.maxattempts must be greater than 0")
	}
	if c.Retry.InitialBackoff <= 0 {
		return fmt.Errorf("retry.initialbackoff must be greater than 0")
	}
	cb := c.CircuitBreaker
	if cb.ConsecutiveFailures == 0 {
		return fmt.Errorf("circuitbreaker.consecutivefailures must be greater than 0")
	}
	if cb.ErrorRatePercent < 0 || cb.ErrorRatePercent > 100 {
		return fmt.Errorf("circuitbreaker.errorratepercent must be between 0 and 100")
	}
	if cb.OpenTimeout <= 0 {
		return fmt.Errorf("circuitbreaker.opentimeout must be greater than 0")
	}
	if cb.HalfOpenRequests == 0 {
		return fmt.Errorf("circuitbreaker.halfopenrequests must be greater than 0")
	}
	return nil
}
