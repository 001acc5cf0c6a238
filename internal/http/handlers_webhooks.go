package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/loopwell/mailcheck-api/internal/observability/notify"
)

// DeliveryNotifier dispatches delivery lifecycle events to configured sinks.
type DeliveryNotifier interface {
	NotifyDeliveryEvent(ctx context.Context, payload notify.DeliveryEventPayload)
}

// WebhookHandlers receives delivery lifecycle callbacks from the email provider.
type WebhookHandlers struct {
	Notifier DeliveryNotifier
	Logger   *slog.Logger
}

func (h *WebhookHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// resendWebhookEvent mirrors the provider webhook payload shape.
type resendWebhookEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Data      struct {
		EmailID string   `json:"email_id"`
		To      []string `json:"to"`
	} `json:"data"`
}

// HandleResendEvent handles delivery lifecycle webhooks.
// POST /api/webhooks/resend.
//
// The provider retries on non-2xx responses, and nothing downstream depends
// on these events, so every request is acknowledged with 204. Malformed
// payloads are logged and dropped.
func (h *WebhookHandlers) HandleResendEvent(w http.ResponseWriter, r *http.Request) {
	h.processEvent(r)
	w.WriteHeader(http.StatusNoContent)
}

func (h *WebhookHandlers) processEvent(r *http.Request) {
	var event resendWebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.logger().WarnContext(r.Context(), "malformed delivery webhook payload", "error", err)
		return
	}
	if event.Type == "" || event.Data.EmailID == "" {
		h.logger().WarnContext(r.Context(), "delivery webhook missing type or email id")
		return
	}

	recipient := ""
	if len(event.Data.To) > 0 {
		recipient = event.Data.To[0]
	}
	occurredAt := event.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	if h.Notifier != nil {
		h.Notifier.NotifyDeliveryEvent(r.Context(), notify.DeliveryEventPayload{
			DeliveryID: event.Data.EmailID,
			Event:      event.Type,
			Recipient:  recipient,
			OccurredAt: occurredAt,
		})
	}
}
