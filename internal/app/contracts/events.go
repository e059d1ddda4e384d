package contracts

import "context"

type EventPublisher interface {
	// Publish sends a JSON event to the broker under the given routing key.
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
