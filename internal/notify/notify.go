// Package notify publishes product lifecycle events after successful mutations.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/pkg/messaging"
	"github.com/abgdnv/catalog/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var _ service.ProductService = (*Service)(nil)

// Service decorates a ProductService. A failed publish is logged and never
// fails the operation: the mutation is already committed.
type Service struct {
	next      service.ProductService
	publisher messaging.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(next service.ProductService, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		next:      next,
		publisher: publisher,
		logger:    logger.With("component", "notify"),
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, product service.ProductCreateDto) (*service.ProductDto, error) {
	created, err := s.next.Create(ctx, product)
	if err == nil {
		s.publish(ctx, events.ProductCreated, created.ID, created.Available)
	}
	return created, err
}

func (s *Service) FindAll(ctx context.Context, page pagination.Request) (*pagination.Result[service.ProductDto], error) {
	return s.next.FindAll(ctx, page)
}

func (s *Service) FindByID(ctx context.Context, id int64) (*service.ProductDto, error) {
	return s.next.FindByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, patch service.ProductUpdateDto) (*service.ProductDto, error) {
	updated, err := s.next.Update(ctx, id, patch)
	if err == nil {
		s.publish(ctx, events.ProductUpdated, updated.ID, updated.Available)
	}
	return updated, err
}

func (s *Service) Remove(ctx context.Context, id int64) (*service.RemovedDto, error) {
	removed, err := s.next.Remove(ctx, id)
	if err == nil {
		s.publish(ctx, events.ProductRemoved, removed.ProductID, false)
	}
	return removed, err
}

func (s *Service) SoftDelete(ctx context.Context, id int64) (*service.ProductDto, error) {
	updated, err := s.next.SoftDelete(ctx, id)
	if err == nil {
		s.publish(ctx, events.ProductSoftDeleted, updated.ID, updated.Available)
	}
	return updated, err
}

func (s *Service) ValidateProducts(ctx context.Context, ids []int64) ([]service.ProductDto, error) {
	return s.next.ValidateProducts(ctx, ids)
}

func (s *Service) publish(ctx context.Context, eventType events.ProductEventType, id int64, available bool) {
	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	event := events.ProductChangedEvent{
		Carrier:    carrier,
		Type:       eventType,
		ProductID:  id,
		Available:  available,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish product event", "subject", event.Subject(), "error", err)
	}
}
