package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"notify-lab/domain"
)

// setupRepository initializes a throwaway badger and bluge pair.
func setupRepository(t *testing.T, limitRecords *int) (*HistoryRepository, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	index, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)

	repo := NewHistoryRepository(db, index, slog.Default(), limitRecords)
	return repo, func() {
		_ = index.Close()
		_ = db.Close()
	}
}

func sentRecord(channelID, title, body string, at time.Time) VerdictRecord {
	return VerdictRecord{
		ID:        uuid.New(),
		PostID:    uuid.New(),
		ChannelID: channelID,
		UserID:    "user-recipient",
		Status:    domain.StatusSent,
		Title:     title,
		Body:      body,
		At:        at,
	}
}

func TestHistoryRepository_StoreAndList(t *testing.T) {
	req := require.New(t)
	repo, cleanup := setupRepository(t, nil)
	defer cleanup()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := sentRecord("channel-1", "General", "@alice: first", base)
	newer := sentRecord("channel-1", "General", "@alice: second", base.Add(time.Minute))
	elsewhere := sentRecord("channel-2", "Random", "@bob: hi", base)

	req.NoError(repo.Store(older))
	req.NoError(repo.Store(newer))
	req.NoError(repo.Store(elsewhere))

	records, _, err := repo.List("channel-1", nil)
	req.NoError(err)
	req.Len(records, 2, "records from other channels must not leak in")
	req.Equal(newer.ID, records[0].ID, "newest record comes first")
	req.Equal(older.ID, records[1].ID)
}

func TestHistoryRepository_ListPagination(t *testing.T) {
	req := require.New(t)
	repo, cleanup := setupRepository(t, lo.ToPtr(2))
	defer cleanup()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	var stored []VerdictRecord
	for i := 0; i < 5; i++ {
		record := sentRecord("channel-1", "General", "msg", base.Add(time.Duration(i)*time.Second))
		req.NoError(repo.Store(record))
		stored = append(stored, record)
	}

	// First page: the two newest records.
	page1, cursor, err := repo.List("channel-1", nil)
	req.NoError(err)
	req.Len(page1, 2)
	req.Equal(stored[4].ID, page1[0].ID)
	req.Equal(stored[3].ID, page1[1].ID)
	req.NotNil(cursor)

	// Second page resumes after the cursor.
	page2, cursor, err := repo.List("channel-1", cursor)
	req.NoError(err)
	req.Len(page2, 2)
	req.Equal(stored[2].ID, page2[0].ID)
	req.Equal(stored[1].ID, page2[1].ID)

	// Final page holds the single oldest record.
	page3, _, err := repo.List("channel-1", cursor)
	req.NoError(err)
	req.Len(page3, 1)
	req.Equal(stored[0].ID, page3[0].ID)
}

func TestHistoryRepository_ListEmptyChannel(t *testing.T) {
	req := require.New(t)
	repo, cleanup := setupRepository(t, nil)
	defer cleanup()

	records, _, err := repo.List("channel-without-history", nil)
	req.NoError(err)
	req.Empty(records)
}

func TestHistoryRepository_SearchFindsSentNotifications(t *testing.T) {
	req := require.New(t)
	repo, cleanup := setupRepository(t, nil)
	defer cleanup()

	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	deploy := sentRecord("channel-1", "Ops", "@bot: deployment finished", at)
	lunch := sentRecord("channel-1", "General", "@alice: lunch anyone", at.Add(time.Second))
	req.NoError(repo.Store(deploy))
	req.NoError(repo.Store(lunch))

	found, err := repo.Search(context.Background(), "deployment", 10)
	req.NoError(err)
	req.Len(found, 1)
	req.Equal(deploy.ID, found[0].ID)
}

func TestHistoryRepository_SearchIgnoresSuppressedVerdicts(t *testing.T) {
	req := require.New(t)
	repo, cleanup := setupRepository(t, nil)
	defer cleanup()

	suppressed := VerdictRecord{
		ID:        uuid.New(),
		PostID:    uuid.New(),
		ChannelID: "channel-1",
		UserID:    "user-recipient",
		Status:    domain.StatusNotSent,
		Reason:    domain.ReasonChannelMuted,
		Title:     "secret project update",
		At:        time.Now().UTC(),
	}
	req.NoError(repo.Store(suppressed))

	found, err := repo.Search(context.Background(), "secret", 10)
	req.NoError(err)
	req.Empty(found, "only surfaced notifications belong in the search index")
}
