package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"notify-lab/contract"
	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/services"
)

// Ensure *NotifierWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*NotifierWorker)(nil)

// PostEvent is one queued notification attempt.
type PostEvent struct {
	Post  domain.Post
	Props domain.MessageProps
}

// NotifierWorker drains queued post events and runs the full decision
// flow for each. Several workers run in a pool, so notifications for
// different posts proceed concurrently while each individual pipeline
// run stays strictly sequential.
type NotifierWorker struct {
	service  services.INotificationService
	queued   chan PostEvent
	verdicts chan event.Event
	log      *slog.Logger
}

func NewNotifierWorker(service services.INotificationService,
	queued chan PostEvent, verdicts chan event.Event,
	log *slog.Logger) *NotifierWorker {
	return &NotifierWorker{
		service:  service,
		queued:   queued,
		verdicts: verdicts,
		log:      log,
	}
}

func (w *NotifierWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case evt, ok := <-w.queued:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			verdict := w.service.SendDesktopNotification(ctx, evt.Post, evt.Props)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.verdicts <- toDecidedEvent(evt, verdict):
			}
		}
	}
}

func toDecidedEvent(evt PostEvent, verdict domain.Verdict) event.Event {
	payload := event.NotificationDecided{
		ID:        uuid.New(),
		PostID:    evt.Post.ID,
		ChannelID: evt.Post.ChannelID,
		UserID:    evt.Post.UserID,
		Status:    verdict.Status,
		Reason:    verdict.Reason,
		Title:     stringData(verdict, "title"),
		Body:      stringData(verdict, "body"),
		At:        time.Now().UTC(),
	}
	return event.Event{
		Type:      event.DomainType,
		CreatedAt: payload.At,
		Payload:   payload,
	}
}

func stringData(verdict domain.Verdict, key string) string {
	if v, ok := verdict.Data[key].(string); ok {
		return v
	}
	return ""
}
