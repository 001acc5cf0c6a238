package logsink

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopwell/mailcheck-api/internal/observability/notify"
)

func TestSendDeliveryEvent_LogsStructuredLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	sink := New(slog.New(slog.NewTextHandler(&buf, nil)))

	err := sink.SendDeliveryEvent(context.Background(), notify.DeliveryEventPayload{
		DeliveryID: "re_abc123",
		Event:      "email.delivered",
		Recipient:  "someone@mail.example.co.uk",
		OccurredAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "delivery event")
	assert.Contains(t, out, "delivery_id=re_abc123")
	assert.Contains(t, out, "event=email.delivered")
	assert.Contains(t, out, "recipient_domain=example.co.uk")
	assert.Contains(t, out, "component=delivery_events")
	// The full address never appears in the log line.
	assert.NotContains(t, out, "someone@")
}

func TestRegistrableDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		address string
		want    string
	}{
		{"user@example.com", "example.com"},
		{"user@mail.example.co.uk", "example.co.uk"},
		{"user@localhost", "localhost"},
		{"no-at-sign", ""},
		{"trailing@", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, registrableDomain(tc.address), "address %q", tc.address)
	}
}
