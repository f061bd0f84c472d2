// Package sink contains EventSink implementations fed by the fanout
// worker: persistence, metrics, and feeds.
package sink

import (
	"context"
	"log/slog"

	"notify-lab/domain/event"
	"notify-lab/repositories"
)

// HistorySink persists every notification verdict.
type HistorySink struct {
	repository repositories.IHistoryRepository
	log        *slog.Logger
}

func NewHistorySink(repository repositories.IHistoryRepository, log *slog.Logger) *HistorySink {
	return &HistorySink{repository: repository, log: log}
}

func (s *HistorySink) Consume(_ context.Context, e event.Event) error {
	decided, ok := e.Payload.(event.NotificationDecided)
	if !ok {
		return nil
	}
	return s.repository.Store(repositories.VerdictRecord{
		ID:        decided.ID,
		PostID:    decided.PostID,
		ChannelID: decided.ChannelID,
		UserID:    decided.UserID,
		Status:    decided.Status,
		Reason:    decided.Reason,
		Title:     decided.Title,
		Body:      decided.Body,
		At:        decided.At,
	})
}
