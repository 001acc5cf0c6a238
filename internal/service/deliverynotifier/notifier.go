package deliverynotifier

import (
	"context"
	"log/slog"
	"sync"

	"github.com/loopwell/mailcheck-api/internal/observability/notify"
)

// SinkRegistration pairs a sink implementation with a human-readable name for logging.
type SinkRegistration struct {
	Name string
	Sink notify.Sink
}

// Options configures the delivery notifier service.
type Options struct {
	Logger *slog.Logger
	Filter notify.EventFilter
	Sinks  []SinkRegistration
}

// Service dispatches delivery lifecycle events to all registered sinks.
// It is strictly fire-and-forget: sink errors are logged and dropped, and the
// email send/list paths never depend on this service for correctness.
type Service struct {
	logger *slog.Logger
	filter notify.EventFilter
	sinks  []SinkRegistration
}

// NewService constructs a delivery notifier.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "delivery_notifier")
	}

	filter := opts.Filter
	if filter == nil {
		filter = notify.AllEvents{}
	}

	var sinks []SinkRegistration
	for _, entry := range opts.Sinks {
		if entry.Sink == nil {
			continue
		}
		name := entry.Name
		if name == "" {
			name = "sink"
		}
		sinks = append(sinks, SinkRegistration{
			Name: name,
			Sink: entry.Sink,
		})
	}

	return &Service{
		logger: logger,
		filter: filter,
		sinks:  sinks,
	}
}

// NotifyDeliveryEvent fans the payload out to all sinks.
func (s *Service) NotifyDeliveryEvent(ctx context.Context, payload notify.DeliveryEventPayload) {
	if len(s.sinks) == 0 {
		return
	}

	ok, err := s.filter.Matches(payload)
	if err != nil {
		s.logger.WarnContext(ctx, "event filter error, passing event through",
			"delivery_id", payload.DeliveryID,
			"error", err,
		)
		ok = true
	}
	if !ok {
		return
	}

	var wg sync.WaitGroup
	for _, entry := range s.sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sendErr := entry.Sink.SendDeliveryEvent(ctx, payload); sendErr != nil {
				s.logger.Error("delivery notifier sink error",
					"sink", entry.Name,
					"delivery_id", payload.DeliveryID,
					"event", payload.Event,
					"error", sendErr,
				)
			}
		}()
	}
	wg.Wait()
}

// Enabled reports whether the notifier has any active sinks.
func (s *Service) Enabled() bool {
	return len(s.sinks) > 0
}
