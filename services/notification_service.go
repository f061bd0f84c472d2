//go:generate go run go.uber.org/mock/mockgen -source=notification_service.go -destination=../mocks/mock_notification_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"notify-lab/contract"
	"notify-lab/dispatch"
	"notify-lab/domain"
	"notify-lab/errors"
	"notify-lab/pipeline"
)

var validate = validator.New()

// sendRequest is validated before any state is read; a malformed event
// from the transport layer yields an error verdict, never a panic.
type sendRequest struct {
	PostID    string `validate:"required,uuid"`
	ChannelID string `validate:"required"`
	AuthorID  string `validate:"required"`
}

type INotificationService interface {
	RunMessageWillBePostedHooks(ctx context.Context, post domain.Post) (domain.Post, error)
	RunMessageWillBeUpdatedHooks(ctx context.Context, newPost, oldPost domain.Post) (domain.Post, error)
	RunSlashCommandWillBePostedHooks(ctx context.Context, message string, args pipeline.CommandArgs) (pipeline.SlashCommand, error)
	RunMessageReceivedHooks(ctx context.Context, post domain.Post) (domain.Post, error)
	SendDesktopNotification(ctx context.Context, post domain.Post, props domain.MessageProps) domain.Verdict
}

// NotificationService is the surface the host application calls. It
// threads payloads through the registered hook pipelines and hands
// notification attempts to the dispatcher.
type NotificationService struct {
	log        *slog.Logger
	registry   contract.HookRegistry
	dispatcher *dispatch.Dispatcher
}

func NewNotificationService(log *slog.Logger, registry contract.HookRegistry,
	dispatcher *dispatch.Dispatcher) *NotificationService {
	return &NotificationService{log: log, registry: registry, dispatcher: dispatcher}
}

func (s *NotificationService) RunMessageWillBePostedHooks(ctx context.Context, post domain.Post) (domain.Post, error) {
	return pipeline.Run(ctx, s.registry.MessageWillBePosted(), post)
}

func (s *NotificationService) RunMessageWillBeUpdatedHooks(ctx context.Context, newPost, oldPost domain.Post) (domain.Post, error) {
	update, err := pipeline.Run(ctx, s.registry.MessageWillBeUpdated(),
		pipeline.PostUpdate{New: newPost, Old: oldPost})
	return update.New, err
}

func (s *NotificationService) RunSlashCommandWillBePostedHooks(ctx context.Context, message string, args pipeline.CommandArgs) (pipeline.SlashCommand, error) {
	return pipeline.Run(ctx, s.registry.SlashCommandWillBePosted(),
		pipeline.SlashCommand{Message: message, Args: args})
}

func (s *NotificationService) RunMessageReceivedHooks(ctx context.Context, post domain.Post) (domain.Post, error) {
	return pipeline.Run(ctx, s.registry.MessageReceived(), post)
}

// SendDesktopNotification decides and, if warranted, surfaces a desktop
// notification for the given post. Always returns a verdict; this call
// never panics the host.
func (s *NotificationService) SendDesktopNotification(ctx context.Context, post domain.Post, props domain.MessageProps) domain.Verdict {
	req := sendRequest{
		ChannelID: post.ChannelID,
		AuthorID:  post.UserID,
	}
	if post.ID != uuid.Nil {
		req.PostID = post.ID.String()
	}
	if err := validate.Struct(req); err != nil {
		err = fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
		s.log.Warn("Rejecting malformed notification request", "error", err)
		return domain.Erred(domain.ReasonInvalidRequest, map[string]any{"error": err.Error()})
	}
	return s.dispatcher.Send(ctx, post, props)
}
