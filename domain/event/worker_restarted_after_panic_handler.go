package event

import (
	"fmt"
	"log/slog"

	"notify-lab/errors"
)

// RestartCounter records worker restarts; satisfied by the stats
// aggregator.
type RestartCounter interface {
	IncrWorkerRestarts()
}

// WorkerRestartedAfterPanicHandler handles events when a worker panics and is restarted.
// It is triggered by the Supervisor when a worker recovers from a panic.
// Useful for monitoring reliability and resilience of the system.
type WorkerRestartedAfterPanicHandler struct {
	log     *slog.Logger
	counter RestartCounter
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, counter RestartCounter) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{
		log:     log,
		counter: counter,
	}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	switch event.Type {
	case RestartedAfterPanicType:
		payload, ok := event.Payload.(WorkerRestartedAfterPanic)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.IncrWorkerRestarts()
		h.log.Debug(fmt.Sprintf("Worker %s restarted after panic", payload.WorkerName))
	}
}
