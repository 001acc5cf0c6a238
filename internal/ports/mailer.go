package ports

import (
	"context"

	"github.com/loopwell/mailcheck-api/internal/domain/model"
)

// SendInput groups parameters for DeliveryGateway.Send.
// From is a fully rendered display string ("Name <address>").
type SendInput struct {
	From    string
	To      string
	Subject string
	Body    string
}

// DeliveryGateway wraps the hosted email provider. Send hands a message to the
// provider and returns its opaque delivery id; Status fetches the current
// lifecycle state for a previously returned id. Neither call is retried here:
// provider failures surface immediately to the caller.
type DeliveryGateway interface {
	Send(ctx context.Context, in SendInput) (string, error)
	Status(ctx context.Context, deliveryID string) (model.DeliveryStatus, error)
}
