package events

import (
	"context"
	"time"
)

// ShipmentRequestCreated is emitted once a shipment request has been stored
const ShipmentRequestCreated = "shipment_request.created"

// Event is the envelope written to the broker
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// NewEvent wraps payload in an envelope stamped with the current time
func NewEvent(eventType string, payload interface{}) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher is used by services to publish events.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, key string, value interface{}) error { return nil }

func (NopPublisher) Close() error { return nil }
