package event

import (
	"time"

	"github.com/google/uuid"

	"notify-lab/domain"
)

type Type string

const (
	DomainType    Type = "DOMAIN"
	TechnicalType Type = "TECHNICAL"
)

// Event wraps a payload with routing metadata for the fanout and
// telemetry workers.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

const PostQueuedType Type = "POST_QUEUED"

// PostQueued is emitted when a post event enters the notification queue.
type PostQueued struct {
	PostID    uuid.UUID
	ChannelID string
	UserID    string
	At        time.Time
}

// NotificationDecided is emitted once per notification attempt with the
// terminal verdict. Title and Body are only set for sent notifications.
type NotificationDecided struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	ChannelID string
	UserID    string
	Status    domain.VerdictStatus
	Reason    domain.Reason
	Title     string
	Body      string
	At        time.Time
}
