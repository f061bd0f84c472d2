package workers

import (
	"context"
	"log/slog"
	"time"

	"notify-lab/contract"
	"notify-lab/domain/event"
)

// EventFanout broadcasts verdict events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for observability and side effects (history, metrics,
// feeds), not for core decision logic.
type EventFanout struct {
	log         *slog.Logger
	sinks       []contract.EventSink
	verdicts    chan event.Event
	telemetry   chan event.Event
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, sinks []contract.EventSink,
	verdicts, telemetry chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		sinks:       sinks,
		verdicts:    verdicts,
		telemetry:   telemetry,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.verdicts:
			w.fanout(ctx, evt)
			select {
			case w.telemetry <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		}
	}
}

// fanout delivers the event to every sink, each under its own timeout.
// A slow or failing sink never blocks the others.
func (w *EventFanout) fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink rejected event", "error", err)
		}
		cancel()
	}
}
