package config

import (
	"fmt"
	"strings"
	"time"
)

type NATSConfig struct {
	Enabled        bool          `koanf:"enabled"`
	Url            string        `koanf:"url"`
	Timeout        time.Duration `koanf:"timeout"`
	Queue          string        `koanf:"queue"`
	RequestTimeout time.Duration `koanf:"requesttimeout"`
	Events         EventsConfig  `koanf:"events"`
}

// EventsConfig controls publishing of product change events to JetStream.
type EventsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Stream  string `koanf:"stream"`
}

// String returns a string representation of the NATS configuration.
func (c *NATSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- NATS ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  url: %s\n", c.Url))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	b.WriteString(fmt.Sprintf("  queue: %s\n", c.Queue))
	b.WriteString(fmt.Sprintf("  requesttimeout: %s\n", c.RequestTimeout))
	b.WriteString(fmt.Sprintf("  events.enabled: %t\n", c.Events.Enabled))
	b.WriteString(fmt.Sprintf("  events.stream: %s\n", c.Events.Stream))
	return b.String()
}

func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Url == "" {
		return fmt.Errorf("NATS URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("nats dial timeout is not configured")
	}
	if c.Queue == "" {
		return fmt.Errorf("nats queue group is not configured")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("nats request timeout is not configured")
	}
	if c.Events.Enabled && c.Events.Stream == "" {
		return fmt.Errorf("nats events are enabled but stream is not configured")
	}
	return nil
}
