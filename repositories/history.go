//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"notify-lab/domain"
)

type IHistoryRepository interface {
	Store(record VerdictRecord) error
	List(channelID string, cursor *string) ([]VerdictRecord, *string, error)
	Search(ctx context.Context, terms string, limit int) ([]VerdictRecord, error)
}

// HistoryRepository persists one record per notification attempt in
// BadgerDB and indexes sent notifications in bluge for text search.
type HistoryRepository struct {
	db           *badger.DB
	index        *bluge.Writer
	log          *slog.Logger
	limitRecords *int
}

func NewHistoryRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger, limitRecords *int) *HistoryRepository {
	return &HistoryRepository{db: db, index: index, log: log, limitRecords: limitRecords}
}

// VerdictRecord is the stored outcome of one notification attempt.
type VerdictRecord struct {
	ID        uuid.UUID            `json:"id"`
	PostID    uuid.UUID            `json:"post_id"`
	ChannelID string               `json:"channel_id"`
	UserID    string               `json:"user_id"`
	Status    domain.VerdictStatus `json:"status"`
	Reason    domain.Reason        `json:"reason"`
	Title     string               `json:"title,omitempty"`
	Body      string               `json:"body,omitempty"`
	At        time.Time            `json:"at"`
}

// Store persists a verdict record.
// The key is formatted as "verdict:{channel_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two verdicts
//     arrive at the same nanosecond.
//
// Sent notifications are additionally indexed for full-text search.
func (r *HistoryRepository) Store(record VerdictRecord) error {
	key := recordKey(record)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return err
	}

	if record.Status != domain.StatusSent {
		return nil
	}
	doc := bluge.NewDocument(key)
	doc.AddField(bluge.NewTextField("title", record.Title).StoreValue())
	doc.AddField(bluge.NewTextField("body", record.Body))
	return r.index.Update(doc.ID(), doc)
}

func recordKey(record VerdictRecord) string {
	return fmt.Sprintf("verdict:%s:%019d:%s",
		record.ChannelID,
		record.At.UnixNano(),
		record.ID,
	)
}

// List retrieves verdict records for a channel using a reverse prefix
// scan, newest first. Thanks to the padded timestamp in the key the
// records are naturally sorted by time. It stops collecting once the
// configured limitRecords is reached and returns an opaque cursor for
// the next page.
func (r *HistoryRepository) List(channelID string, cursor *string) ([]VerdictRecord, *string, error) {
	var rawRecords [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("verdict:%s:", channelID)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitRecords != nil && len(rawRecords) == *r.limitRecords {
				r.log.Debug(fmt.Sprintf("Maximum of %d records reached", *r.limitRecords))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				rawRecords = append(rawRecords, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	records := make([]VerdictRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		var record VerdictRecord
		if err = json.Unmarshal(raw, &record); err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}
	return records, &lastKey, nil
}

// Search runs a full-text query over sent notification titles and
// bodies and resolves the matching records from badger.
func (r *HistoryRepository) Search(ctx context.Context, terms string, limit int) ([]VerdictRecord, error) {
	reader, err := r.index.Reader()
	if err != nil {
		return nil, fmt.Errorf("index reader: %w", err)
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(terms).SetField("title")).
		AddShould(bluge.NewMatchQuery(terms).SetField("body"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	var keys []string
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				keys = append(keys, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	return r.fetch(keys)
}

func (r *HistoryRepository) fetch(keys []string) ([]VerdictRecord, error) {
	var records []VerdictRecord
	err := r.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if err != nil {
				// Index entries may outlive badger records; skip strays.
				r.log.Debug("Indexed record missing from store", "key", key)
				continue
			}
			err = item.Value(func(value []byte) error {
				var record VerdictRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}
