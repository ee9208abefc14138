package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/catalog/pkg/messaging"
	"go.opentelemetry.io/otel/propagation"
)

// ProductEventType names a product lifecycle change.
type ProductEventType string

const (
	ProductCreated     ProductEventType = "created"
	ProductUpdated     ProductEventType = "updated"
	ProductSoftDeleted ProductEventType = "soft_deleted"
	ProductRemoved     ProductEventType = "removed"
)

// ProductChangedEvent is published after a product mutation has been committed.
// Carrier holds the trace context of the request that caused it.
type ProductChangedEvent struct {
	Carrier    propagation.MapCarrier `json:"carrier,omitempty"`
	Type       ProductEventType       `json:"type"`
	ProductID  int64                  `json:"product_id"`
	Available  bool                   `json:"available"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e ProductChangedEvent) Subject() string {
	return messaging.ProductEventSubject(string(e.Type))
}

func (e ProductChangedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
