// Package messaging defines the events the catalog emits and the publisher contract
// transports implement.
package messaging

import (
	"context"
)

// ProductEventsSubjectPrefix prefixes the subjects of product lifecycle events.
const ProductEventsSubjectPrefix = "catalog.events.products."

// ProductEventsSubjects matches every product lifecycle event; used as the stream filter.
const ProductEventsSubjects = ProductEventsSubjectPrefix + ">"

// ProductEventSubject returns the subject for one event type, e.g. catalog.events.products.created.
func ProductEventSubject(eventType string) string {
	return ProductEventsSubjectPrefix + eventType
}

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, event Event) error

func (f PublisherFunc) Publish(ctx context.Context, event Event) error {
	return f(ctx, event)
}
