// Package messaging defines the events a service emits and the publisher abstraction that delivers them.
package messaging

import (
	"context"
)

const (
	ProductsStream        = "PRODUCTS"
	ProductsSubjects      = "products.>"
	ProductCreatedSubject = "products.created"
	ProductUpdatedSubject = "products.updated"
	ProductDeletedSubject = "products.deleted"
)

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
