package sink

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"notify-lab/domain"
	"notify-lab/domain/event"
	"notify-lab/observability"
)

func TestStatsSink_FoldsVerdictsIntoCounters(t *testing.T) {
	req := require.New(t)
	stats := observability.NewStats(slog.Default())
	sink := NewStatsSink(stats)

	consume := func(status domain.VerdictStatus, reason domain.Reason) {
		req.NoError(sink.Consume(context.Background(), event.Event{
			Type:    event.DomainType,
			Payload: event.NotificationDecided{Status: status, Reason: reason},
		}))
	}

	consume(domain.StatusSent, "")
	consume(domain.StatusSent, "")
	consume(domain.StatusNotSent, domain.ReasonChannelMuted)
	consume(domain.StatusNotSent, domain.ReasonOwnPost)
	consume(domain.StatusNotSent, domain.ReasonChannelMuted)
	consume(domain.StatusError, domain.ReasonNotificationAPI)

	snap := stats.Snapshot()
	req.Equal(uint64(2), snap.Sent)
	req.Equal(uint64(3), snap.Suppressed)
	req.Equal(uint64(1), snap.Errors)
	req.Equal(uint64(2), snap.SkippedByReason[string(domain.ReasonChannelMuted)])
	req.Equal(uint64(1), snap.SkippedByReason[string(domain.ReasonOwnPost)])
}
