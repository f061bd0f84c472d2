package projection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"notify-lab/domain"
	"notify-lab/domain/event"
)

func decided(title string, status domain.VerdictStatus) event.Event {
	return event.Event{
		Type: event.DomainType,
		Payload: event.NotificationDecided{
			Title:     title,
			ChannelID: "channel-1",
			Status:    status,
		},
	}
}

func TestFeed_NewestFirst(t *testing.T) {
	req := require.New(t)
	feed := NewFeed(10)

	req.NoError(feed.Consume(context.Background(), decided("first", domain.StatusSent)))
	req.NoError(feed.Consume(context.Background(), decided("second", domain.StatusSent)))

	entries := feed.Entries()
	req.Len(entries, 2)
	req.Equal("second", entries[0].Title)
	req.Equal("first", entries[1].Title)
}

func TestFeed_BoundedRetention(t *testing.T) {
	req := require.New(t)
	feed := NewFeed(2)

	req.NoError(feed.Consume(context.Background(), decided("a", domain.StatusSent)))
	req.NoError(feed.Consume(context.Background(), decided("b", domain.StatusSent)))
	req.NoError(feed.Consume(context.Background(), decided("c", domain.StatusSent)))

	entries := feed.Entries()
	req.Len(entries, 2)
	req.Equal("c", entries[0].Title)
	req.Equal("b", entries[1].Title)
}

func TestFeed_IgnoresForeignEvents(t *testing.T) {
	req := require.New(t)
	feed := NewFeed(10)

	req.NoError(feed.Consume(context.Background(), event.Event{
		Type:    event.TechnicalType,
		Payload: event.ChannelCapacity{ChannelName: "queued"},
	}))
	req.Empty(feed.Entries())
}

func TestFeed_EntriesReturnsACopy(t *testing.T) {
	req := require.New(t)
	feed := NewFeed(10)
	req.NoError(feed.Consume(context.Background(), decided("original", domain.StatusSent)))

	entries := feed.Entries()
	entries[0].Title = "mutated"
	req.Equal("original", feed.Entries()[0].Title)
}
