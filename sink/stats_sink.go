package sink

import (
	"context"

	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/observability"
)

// StatsSink folds verdicts into the metrics aggregator.
type StatsSink struct {
	stats *observability.Stats
}

func NewStatsSink(stats *observability.Stats) *StatsSink {
	return &StatsSink{stats: stats}
}

func (s *StatsSink) Consume(_ context.Context, e event.Event) error {
	decided, ok := e.Payload.(event.NotificationDecided)
	if !ok {
		return nil
	}
	switch decided.Status {
	case domain.StatusSent:
		s.stats.IncrSent()
	case domain.StatusNotSent:
		s.stats.IncrSkipped(string(decided.Reason))
	case domain.StatusError:
		s.stats.IncrErrors()
	}
	return nil
}
