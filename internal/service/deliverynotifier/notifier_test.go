package deliverynotifier

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopwell/mailcheck-api/internal/observability/notify"
)

func countingSink(count *atomic.Int64) notify.SinkFunc {
	return func(context.Context, notify.DeliveryEventPayload) error {
		count.Add(1)
		return nil
	}
}

func TestNotifyDeliveryEvent_FansOutToAllSinks(t *testing.T) {
	t.Parallel()
	var a, b atomic.Int64
	svc := NewService(Options{
		Sinks: []SinkRegistration{
			{Name: "a", Sink: countingSink(&a)},
			{Name: "b", Sink: countingSink(&b)},
		},
	})

	svc.NotifyDeliveryEvent(context.Background(), notify.DeliveryEventPayload{
		DeliveryID: "re_1",
		Event:      "email.sent",
	})

	assert.Equal(t, int64(1), a.Load())
	assert.Equal(t, int64(1), b.Load())
}

func TestNotifyDeliveryEvent_SinkErrorsDoNotPropagate(t *testing.T) {
	t.Parallel()
	var healthy atomic.Int64
	svc := NewService(Options{
		Sinks: []SinkRegistration{
			{Name: "broken", Sink: notify.SinkFunc(func(context.Context, notify.DeliveryEventPayload) error {
				return errors.New("sink down")
			})},
			{Name: "healthy", Sink: countingSink(&healthy)},
		},
	})

	// Must not panic and must still reach the healthy sink.
	svc.NotifyDeliveryEvent(context.Background(), notify.DeliveryEventPayload{DeliveryID: "re_1"})

	assert.Equal(t, int64(1), healthy.Load())
}

func TestNotifyDeliveryEvent_FilterBlocksEvent(t *testing.T) {
	t.Parallel()
	filter, err := notify.NewJMESPathFilter("event == 'email.bounced'")
	require.NoError(t, err)

	var count atomic.Int64
	svc := NewService(Options{
		Filter: filter,
		Sinks:  []SinkRegistration{{Name: "a", Sink: countingSink(&count)}},
	})

	ctx := context.Background()
	svc.NotifyDeliveryEvent(ctx, notify.DeliveryEventPayload{Event: "email.delivered"})
	assert.Equal(t, int64(0), count.Load())

	svc.NotifyDeliveryEvent(ctx, notify.DeliveryEventPayload{Event: "email.bounced"})
	assert.Equal(t, int64(1), count.Load())
}

type failingFilter struct{}

func (failingFilter) Matches(notify.DeliveryEventPayload) (bool, error) {
	return false, errors.New("filter blew up")
}

func TestNotifyDeliveryEvent_FilterErrorPassesEventThrough(t *testing.T) {
	t.Parallel()
	var count atomic.Int64
	svc := NewService(Options{
		Filter: failingFilter{},
		Sinks:  []SinkRegistration{{Name: "a", Sink: countingSink(&count)}},
	})

	svc.NotifyDeliveryEvent(context.Background(), notify.DeliveryEventPayload{Event: "email.sent"})

	assert.Equal(t, int64(1), count.Load())
}

func TestEnabled(t *testing.T) {
	t.Parallel()
	assert.False(t, NewService(Options{}).Enabled())
	assert.False(t, NewService(Options{
		Sinks: []SinkRegistration{{Name: "nil", Sink: nil}},
	}).Enabled())

	var count atomic.Int64
	assert.True(t, NewService(Options{
		Sinks: []SinkRegistration{{Name: "a", Sink: countingSink(&count)}},
	}).Enabled())
}
