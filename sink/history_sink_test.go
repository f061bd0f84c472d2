package sink

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/mocks"
	"notify-lab/repositories"
)

func TestHistorySink_PersistsDecidedEvents(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIHistoryRepository(ctrl)
	sink := NewHistorySink(repository, log)

	decided := event.NotificationDecided{
		ID:        uuid.New(),
		PostID:    uuid.New(),
		ChannelID: "channel-1",
		UserID:    "user-recipient",
		Status:    domain.StatusSent,
		Title:     "General",
		Body:      "@alice: hi",
		At:        time.Now().UTC(),
	}

	repository.EXPECT().Store(gomock.Any()).DoAndReturn(func(record repositories.VerdictRecord) error {
		req.Equal(decided.ID, record.ID)
		req.Equal(decided.PostID, record.PostID)
		req.Equal(domain.StatusSent, record.Status)
		req.Equal("General", record.Title)
		return nil
	})

	req.NoError(sink.Consume(context.Background(), event.Event{Type: event.DomainType, Payload: decided}))
}

func TestHistorySink_IgnoresTechnicalEvents(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIHistoryRepository(ctrl)
	sink := NewHistorySink(repository, log)

	// No Store expectation: technical events must not hit the repository.
	req.NoError(sink.Consume(context.Background(), event.Event{
		Type:    event.TechnicalType,
		Payload: event.ChannelCapacity{ChannelName: "queued"},
	}))
}

func TestHistorySink_PropagatesStorageErrors(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIHistoryRepository(ctrl)
	sink := NewHistorySink(repository, log)

	boom := errors.New("disk full")
	repository.EXPECT().Store(gomock.Any()).Return(boom)

	err := sink.Consume(context.Background(), event.Event{
		Type:    event.DomainType,
		Payload: event.NotificationDecided{ID: uuid.New()},
	})
	req.ErrorIs(err, boom)
}
