package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) String() string {
	level := c.Level
	if level == "" {
		level = "info (default)"
	}
	return fmt.Sprintf("\n--- Log ---\n  level: %s\n", level)
}

func (c *LogConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level: %q", c.Level)
	}
}

// PProfConfig enables the net/http/pprof endpoints on a dedicated listener.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) String() string {
	if !c.Enabled {
		return "\n--- PProf ---\n  enabled: false\n"
	}
	return fmt.Sprintf("\n--- PProf ---\n  enabled: true\n  addr: %s\n", c.Addr)
}

func (c *PProfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Addr == "" {
		return fmt.Errorf("pprof is enabled but address is not configured")
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid pprof address %q: %w", c.Addr, err)
	}
	return nil
}

// ShutdownConfig bounds graceful shutdown. Drain is how long the gRPC health service
// reports NOT_SERVING before the listeners stop accepting calls; it may be zero.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
	Drain   time.Duration `koanf:"drain"`
}

func (c *ShutdownConfig) String() string {
	return fmt.Sprintf("\n--- Shutdown ---\n  timeout: %s\n  drain: %s\n", c.Timeout, c.Drain)
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	if c.Drain < 0 || c.Drain >= c.Timeout {
		return fmt.Errorf("shutdown drain must be in [0, %s): %s", c.Timeout, c.Drain)
	}
	return nil
}
