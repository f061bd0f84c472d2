// Package projection builds local read models from observed events.
// Handles ordering and bounded retention.
// Does not emit events or interact with the dispatcher directly.
package projection

import (
	"context"
	"sync"

	"notify-lab/domain"
	"notify-lab/domain/event"
)

// Entry is one surfaced notification in the recent feed.
type Entry struct {
	Title     string
	Body      string
	ChannelID string
	Status    domain.VerdictStatus
	Reason    domain.Reason
}

// Feed holds the most recent notification outcomes, newest first.
type Feed struct {
	mu      sync.RWMutex
	entries []Entry
	keep    int
}

func NewFeed(keep int) *Feed {
	return &Feed{keep: keep}
}

func (f *Feed) Consume(_ context.Context, e event.Event) error {
	decided, ok := e.Payload.(event.NotificationDecided)
	if !ok {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append([]Entry{{
		Title:     decided.Title,
		Body:      decided.Body,
		ChannelID: decided.ChannelID,
		Status:    decided.Status,
		Reason:    decided.Reason,
	}}, f.entries...)
	if len(f.entries) > f.keep {
		f.entries = f.entries[:f.keep]
	}
	return nil
}

func (f *Feed) Entries() []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}
