// Package metrics records per-operation counters and latencies for the product service.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

var _ service.ProductService = (*Service)(nil)

// Service decorates a ProductService with an operations counter and a duration histogram.
type Service struct {
	next       service.ProductService
	operations metric.Int64Counter
	duration   metric.Float64Histogram
}

func NewService(next service.ProductService, meter metric.Meter) (*Service, error) {
	operations, err := meter.Int64Counter("catalog.operations",
		metric.WithDescription("Number of product operations by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog.operations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("catalog.operation.duration",
		metric.WithDescription("Duration of product operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog.operation.duration histogram: %w", err)
	}
	return &Service{next: next, operations: operations, duration: duration}, nil
}

// Outcome classifies an operation result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, perrors.ErrProductNotFound):
		return OutcomeNotFound
	case errors.Is(err, perrors.ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, perrors.ErrStorage):
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}

func (s *Service) record(ctx context.Context, operation string, start time.Time, err error) {
	op := attribute.String("operation", operation)
	s.operations.Add(ctx, 1, metric.WithAttributes(op, attribute.String("outcome", Outcome(err))))
	s.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(op))
}

func (s *Service) Create(ctx context.Context, product service.ProductCreateDto) (*service.ProductDto, error) {
	start := time.Now()
	created, err := s.next.Create(ctx, product)
	s.record(ctx, "create", start, err)
	return created, err
}

func (s *Service) FindAll(ctx context.Context, page pagination.Request) (*pagination.Result[service.ProductDto], error) {
	start := time.Now()
	result, err := s.next.FindAll(ctx, page)
	s.record(ctx, "list", start, err)
	return result, err
}

func (s *Service) FindByID(ctx context.Context, id int64) (*service.ProductDto, error) {
	start := time.Now()
	found, err := s.next.FindByID(ctx, id)
	s.record(ctx, "get", start, err)
	return found, err
}

func (s *Service) Update(ctx context.Context, id int64, patch service.ProductUpdateDto) (*service.ProductDto, error) {
	start := time.Now()
	updated, err := s.next.Update(ctx, id, patch)
	s.record(ctx, "update", start, err)
	return updated, err
}

func (s *Service) Remove(ctx context.Context, id int64) (*service.RemovedDto, error) {
	start := time.Now()
	removed, err := s.next.Remove(ctx, id)
	s.record(ctx, "remove", start, err)
	return removed, err
}

func (s *Service) SoftDelete(ctx context.Context, id int64) (*service.ProductDto, error) {
	start := time.Now()
	updated, err := s.next.SoftDelete(ctx, id)
	s.record(ctx, "soft_delete", start, err)
	return updated, err
}

func (s *Service) ValidateProducts(ctx context.Context, ids []int64) ([]service.ProductDto, error) {
	start := time.Now()
	products, err := s.next.ValidateProducts(ctx, ids)
	s.record(ctx, "validate", start, err)
	return products, err
}
