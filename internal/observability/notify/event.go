package notify

import (
	"context"
	"time"
)

// DeliveryEventPayload captures the canonical data we emit for delivery
// lifecycle notifications received from the email provider.
type DeliveryEventPayload struct {
	DeliveryID string
	Event      string // provider event name, e.g. "email.delivered", "email.bounced"
	Recipient  string
	OccurredAt time.Time
}

// Sink describes a destination capable of consuming delivery lifecycle events.
// Sinks are fire-and-forget: a sink failure must never affect the send or
// list paths.
type Sink interface {
	SendDeliveryEvent(ctx context.Context, payload DeliveryEventPayload) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, payload DeliveryEventPayload) error

// SendDeliveryEvent implements the Sink interface.
func (f SinkFunc) SendDeliveryEvent(ctx context.Context, payload DeliveryEventPayload) error {
	if f == nil {
		return nil
	}
	return f(ctx, payload)
}
