//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/pipeline"
)

// StateReader provides a synchronous, consistent read of application
// state for one notification attempt. Implemented by the host's store.
type StateReader interface {
	CurrentUserID() string
	ReadSnapshot(currentUserID, channelID, postID string) (domain.Snapshot, error)
}

// HookRegistry exposes the ordered hook lists registered by plugins.
// The core only reads it; registration is the plugin system's concern.
type HookRegistry interface {
	MessageWillBePosted() []pipeline.Hook[domain.Post]
	MessageWillBeUpdated() []pipeline.Hook[pipeline.PostUpdate]
	SlashCommandWillBePosted() []pipeline.Hook[pipeline.SlashCommand]
	DesktopNotification() []pipeline.Hook[domain.NotificationArgs]
	MessageReceived() []pipeline.Hook[domain.Post]
}

// OSNotifier surfaces one desktop notification. Native shells receive
// the channel and team ids to route the notification themselves.
type OSNotifier interface {
	Show(ctx context.Context, args domain.NotificationArgs, channelID, teamID string) error
}

// SoundPlayer plays a notification sound. Fire-and-forget.
type SoundPlayer interface {
	Play(soundName string)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}
