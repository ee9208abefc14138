package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDatabaseConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     DatabaseConfig
		driver  string
		wantErr string
	}{
		{
			name:   "postgres is the default driver",
			cfg:    DatabaseConfig{URL: "postgres://u:p@localhost:5432/catalog", Timeout: time.Second},
			driver: DriverPostgres,
		},
		{
			name:   "gorm over postgres",
			cfg:    DatabaseConfig{Driver: DriverGorm, URL: "postgresql://localhost/catalog", Timeout: time.Second},
			driver: DriverGorm,
		},
		{
			name:   "sqlite accepts a file path",
			cfg:    DatabaseConfig{Driver: DriverSQLite, URL: "catalog.db", Timeout: time.Second},
			driver: DriverSQLite,
		},
		{
			name:    "missing url",
			cfg:     DatabaseConfig{Timeout: time.Second},
			wantErr: "database URL is not configured",
		},
		{
			name:    "postgres driver with non postgres url",
			cfg:     DatabaseConfig{URL: "mysql://localhost", Timeout: time.Second},
			wantErr: "database URL must start with 'postgres://': ****",
		},
		{
			name:    "unknown driver",
			cfg:     DatabaseConfig{Driver: "oracle", URL: "x", Timeout: time.Second},
			wantErr: `unsupported database driver: "oracle"`,
		},
		{
			name:    "missing timeout",
			cfg:     DatabaseConfig{URL: "postgres://localhost/catalog"},
			wantErr: "database connect timeout is not configured",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()

			// then
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.driver, tc.cfg.Driver)
		})
	}
}

func TestNATSConfig_Validate(t *testing.T) {
	valid := func() NATSConfig {
		return NATSConfig{
			Enabled:        true,
			Url:            "nats://localhost:4222",
			Timeout:        time.Second,
			Queue:          "catalog",
			RequestTimeout: time.Second,
			Events:         EventsConfig{Enabled: true, Stream: "CATALOG_EVENTS"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *NATSConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*NATSConfig) {}},
		{name: "disabled skips checks", mutate: func(c *NATSConfig) { *c = NATSConfig{} }},
		{name: "missing url", mutate: func(c *NATSConfig) { c.Url = "" }, wantErr: "NATS URL is not configured"},
		{name: "missing queue", mutate: func(c *NATSConfig) { c.Queue = "" }, wantErr: "nats queue group is not configured"},
		{name: "missing request timeout", mutate: func(c *NATSConfig) { c.RequestTimeout = 0 }, wantErr: "nats request timeout is not configured"},
		{name: "events without stream", mutate: func(c *NATSConfig) { c.Events.Stream = "" }, wantErr: "nats events are enabled but stream is not configured"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := valid()
			tc.mutate(&cfg)

			// when
			err := cfg.Validate()

			// then
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestMaskURL(t *testing.T) {
	require.Equal(t, "<not configured>", MaskURL(""))
	require.Equal(t, "****@db:5432/catalog", MaskURL("postgres://user:secret@db:5432/catalog"))
	require.Equal(t, "file:catalog.db", MaskURL("file:catalog.db"))
	require.Equal(t, "****", MaskURL("postgres://db/catalog"))
}

func TestLogConfig_Validate(t *testing.T) {
	require.NoError(t, (&LogConfig{Level: "DEBUG"}).Validate())
	require.NoError(t, (&LogConfig{}).Validate())
	require.EqualError(t, (&LogConfig{Level: "verbose"}).Validate(), `unknown log level: "verbose"`)
}

func TestServerConfigs_Validate(t *testing.T) {
	httpCfg := HTTPConfig{Port: 8080}
	httpCfg.Timeout.Read = time.Second
	httpCfg.Timeout.Write = time.Second
	httpCfg.Timeout.Idle = time.Second
	httpCfg.Timeout.ReadHeader = time.Second
	require.NoError(t, httpCfg.Validate())
	require.Equal(t, ":8080", httpCfg.Addr())

	httpCfg.Timeout.Idle = 0
	require.EqualError(t, httpCfg.Validate(), "invalid HTTP server idle timeout: 0s")

	testCases := []struct {
		port    string
		wantErr string
	}{
		{port: "9090"},
		{port: "", wantErr: "gRPC port is not configured"},
		{port: "grpc", wantErr: `invalid gRPC server port: "grpc"`},
		{port: "70000", wantErr: "invalid gRPC server port: 70000"},
	}
	for _, tc := range testCases {
		t.Run("grpc port "+tc.port, func(t *testing.T) {
			cfg := GrpcServerConfig{Port: tc.port}
			if tc.wantErr == "" {
				require.NoError(t, cfg.Validate())
				require.Equal(t, ":"+tc.port, cfg.Addr())
			} else {
				require.EqualError(t, cfg.Validate(), tc.wantErr)
			}
		})
	}
}

func TestProcessConfigs_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     interface{ Validate() error }
		wantErr string
	}{
		{name: "pprof disabled", cfg: &PProfConfig{}},
		{name: "pprof address", cfg: &PProfConfig{Enabled: true, Addr: "localhost:6060"}},
		{name: "pprof without port", cfg: &PProfConfig{Enabled: true, Addr: "localhost"}, wantErr: `invalid pprof address "localhost"`},
		{name: "shutdown without drain", cfg: &ShutdownConfig{Timeout: time.Second}},
		{name: "shutdown drain", cfg: &ShutdownConfig{Timeout: 10 * time.Second, Drain: 2 * time.Second}},
		{name: "drain longer than timeout", cfg: &ShutdownConfig{Timeout: time.Second, Drain: time.Second}, wantErr: "shutdown drain must be in [0, 1s): 1s"},
		{name: "missing shutdown timeout", cfg: &ShutdownConfig{}, wantErr: "shutdown timeout is not configured"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()

			// then
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestCatalogClientConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *CatalogClientConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*CatalogClientConfig) {}},
		{name: "resolver target", mutate: func(c *CatalogClientConfig) { c.Addr = "dns:///catalog:9090" }},
		{name: "missing address", mutate: func(c *CatalogClientConfig) { c.Addr = "" }, wantErr: "catalog address is not configured"},
		{name: "address without port", mutate: func(c *CatalogClientConfig) { c.Addr = "catalog" }, wantErr: `invalid catalog address "catalog"`},
		{name: "no attempts", mutate: func(c *CatalogClientConfig) { c.Retry.MaxAttempts = 0 }, wantErr: "retry.maxattempts must be greater than 0"},
		{name: "error rate", mutate: func(c *CatalogClientConfig) { c.CircuitBreaker.ErrorRatePercent = 101 }, wantErr: "circuitbreaker.errorratepercent must be between 0 and 100"},
		{name: "half open", mutate: func(c *CatalogClientConfig) { c.CircuitBreaker.HalfOpenRequests = 0 }, wantErr: "circuitbreaker.halfopenrequests must be greater than 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := DefaultCatalogClientConfig("localhost:9090")
			tc.mutate(&cfg)

			// when
			err := cfg.Validate()

			// then
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestTelemetryConfig(t *testing.T) {
	cfg := TelemetryConfig{Enabled: true}
	cfg.Traces.OtlpHttp = OtlpHttpConfig{Endpoint: "localhost:4318", Timeout: time.Second}
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1.0, cfg.Traces.Ratio())

	cfg.Traces.SampleRatio = 0.25
	require.NoError(t, cfg.Validate())
	require.Equal(t, 0.25, cfg.Traces.Ratio())

	cfg.Traces.SampleRatio = 1.5
	require.EqualError(t, cfg.Validate(), "traces.sampleratio must be between 0 and 1: 1.5")

	require.NoError(t, (&TelemetryConfig{}).Validate())
}
