package config

import (
	"fmt"
	"time"
)

// TelemetryConfig configures OpenTelemetry tracing over OTLP/HTTP.
type TelemetryConfig struct {
	Enabled bool         `koanf:"enabled"`
	Traces  TracesConfig `koanf:"traces"`
}

// TracesConfig selects the exporter endpoint and the share of new root traces that are sampled.
// Incoming sampled parents are always honoured. A zero SampleRatio samples everything.
type TracesConfig struct {
	SampleRatio float64        `koanf:"sampleratio"`
	OtlpHttp    OtlpHttpConfig `koanf:"otlphttp"`
}

type OtlpHttpConfig struct {
	Endpoint string        `koanf:"endpoint"`
	Insecure bool          `koanf:"insecure"`
	Timeout  time.Duration `koanf:"timeout"`
}

// Ratio returns the effective sampling ratio.
func (c *TracesConfig) Ratio() float64 {
	if c.SampleRatio == 0 {
		return 1
	}
	return c.SampleRatio
}

func (c *TelemetryConfig) String() string {
	if !c.Enabled {
		return "\n--- Telemetry ---\n  enabled: false\n"
	}
	o := c.Traces.OtlpHttp
	return fmt.Sprintf("\n--- Telemetry ---\n  enabled: true\n  traces.otlphttp: endpoint=%s insecure=%t timeout=%v\n  traces.sampleratio: %g\n",
		o.Endpoint, o.Insecure, o.Timeout, c.Traces.Ratio())
}

func (c *TelemetryConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Traces.OtlpHttp.Endpoint == "" {
		return fmt.Errorf("OTel endpoint is not configured")
	}
	if c.Traces.OtlpHttp.Timeout <= 0 {
		return fmt.Errorf("telemetry timeout must be greater than 0")
	}
	if c.Traces.SampleRatio < 0 || c.Traces.SampleRatio > 1 {
		return fmt.Errorf("traces.sampleratio must be between 0 and 1: %g", c.Traces.SampleRatio)
	}
	return nil
}
