// Package logsink provides the reference event sink: it writes one structured
// log line per delivery lifecycle event and does nothing else.
package logsink

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/loopwell/mailcheck-api/internal/observability/notify"
)

// Sink logs delivery events via slog.
type Sink struct {
	logger *slog.Logger
}

var _ notify.Sink = (*Sink)(nil)

// New creates a logging sink. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{logger: logger.With("component", "delivery_events")}
}

// SendDeliveryEvent writes one log line for the event. The recipient's
// registrable domain is included to make deliverability triage greppable
// without exposing the full address in aggregations.
func (s *Sink) SendDeliveryEvent(ctx context.Context, payload notify.DeliveryEventPayload) error {
	s.logger.InfoContext(ctx, "delivery event",
		"delivery_id", payload.DeliveryID,
		"event", payload.Event,
		"recipient_domain", registrableDomain(payload.Recipient),
		"occurred_at", payload.OccurredAt,
	)
	return nil
}

// registrableDomain extracts the eTLD+1 of the recipient address, falling back
// to the raw host part when the public suffix list has no answer.
func registrableDomain(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 || at == len(address)-1 {
		return ""
	}
	host := strings.ToLower(address[at+1:])
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return etld1
}
