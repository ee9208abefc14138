// Package app contains the application setup for the catalog service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/catalog/internal/config"
	"github.com/abgdnv/catalog/internal/metrics"
	"github.com/abgdnv/catalog/internal/notify"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/internal/store"
	grpcImpl "github.com/abgdnv/catalog/internal/transport/grpc"
	natsImpl "github.com/abgdnv/catalog/internal/transport/nats"
	"github.com/abgdnv/catalog/internal/transport/rest"
	pb "github.com/abgdnv/catalog/pkg/api/gen/go/catalog/v1"
	"github.com/abgdnv/catalog/pkg/bootstrap"
	pkgconfig "github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/messaging"
	"github.com/abgdnv/catalog/pkg/server"
	"github.com/abgdnv/catalog/pkg/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// meterName is the instrumentation scope of the catalog instruments.
const meterName = "github.com/abgdnv/catalog"

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
	// MetricsPath and MetricsHandler are set when metrics are exposed over HTTP.
	MetricsPath    string
	MetricsHandler http.Handler
}

// Metrics bundles the meter used by the service decorator with the handler that serves it.
type Metrics struct {
	Meter    metric.Meter
	Handler  http.Handler
	Provider *metricsdk.MeterProvider
}

// NewMetrics builds a Prometheus registry with Go runtime collectors and an OTel meter
// exporting into it.
func NewMetrics(serviceName string) (*Metrics, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mp, err := telemetry.NewMeterProvider(serviceName, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create meter provider: %w", err)
	}
	return &Metrics{
		Meter:    mp.Meter(meterName),
		Handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Provider: mp,
	}, nil
}

// NewStore opens the product store selected by cfg.Driver and applies the schema when
// cfg.Migrate is set. The returned func releases the connection.
func NewStore(ctx context.Context, cfg pkgconfig.DatabaseConfig) (store.ProductStore, func(), error) {
	switch cfg.Driver {
	case pkgconfig.DriverPostgres, "":
		if cfg.Migrate {
			if err := store.Migrate(cfg.URL); err != nil {
				return nil, nil, err
			}
		}
		pool, err := bootstrap.NewDbPool(ctx, cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPgStore(pool), pool.Close, nil
	case pkgconfig.DriverGorm, pkgconfig.DriverSQLite:
		dialect := "postgres"
		if cfg.Driver == pkgconfig.DriverSQLite {
			dialect = "sqlite"
		}
		gdb, err := bootstrap.NewGormDB(ctx, dialect, cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		closeFn := func() { _ = sqlDB.Close() }
		gs := store.NewGormStore(gdb)
		if cfg.Migrate {
			if err := gs.AutoMigrate(); err != nil {
				closeFn()
				return nil, nil, err
			}
		}
		return gs, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// SetupDependencies builds the product service over productStore. Events are published
// when publisher is non-nil and operations are measured when m is non-nil; the metrics
// decorator is outermost so it also times event publishing.
func SetupDependencies(productStore store.ProductStore, publisher messaging.Publisher, m *Metrics, metricsPath string, logger *slog.Logger) (*Dependencies, error) {
	var svc service.ProductService = service.NewService(productStore)
	if publisher != nil {
		svc = notify.NewService(svc, publisher, logger)
	}
	deps := &Dependencies{Logger: logger}
	if m != nil {
		measured, err := metrics.NewService(svc, m.Meter)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics decorator: %w", err)
		}
		svc = measured
		deps.MetricsPath = metricsPath
		deps.MetricsHandler = m.Handler
	}
	deps.ProductService = svc
	return deps, nil
}

// SetupHttpHandler initializes the HTTP server and routes for the catalog application.
// Used by tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
	if deps.MetricsHandler != nil {
		mux.Method(http.MethodGet, deps.MetricsPath, deps.MetricsHandler)
	}
}

// SetupHttpServer creates and configures an HTTP server for the catalog application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Addr:           cfg.HTTPServer.Addr(),
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}

// SetupGrpcServer initializes the gRPC server for the catalog application.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) (*grpc.Server, *health.Server) {
	// Service registration function for gRPC server
	catalogRegisterFunc := func(s *grpc.Server) {
		pb.RegisterCatalogServiceServer(s, grpcImpl.NewServer(deps.ProductService, deps.Logger))
	}
	// create a new gRPC server with reflection if enabled
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, catalogRegisterFunc)
}

// SetupResponder creates the NATS request-reply transport over nc.
func SetupResponder(nc *nats.Conn, deps *Dependencies, cfg pkgconfig.NATSConfig) *natsImpl.Responder {
	return natsImpl.NewResponder(nc, deps.ProductService, cfg.Queue, cfg.RequestTimeout, deps.Logger)
}
