package state

import (
	"fmt"
	"sync"

	"notify-lab/domain"
)

// MemoryStore keeps the client-side view (channels, memberships,
// session, preferences) that the dispatcher reads when deciding a
// notification. It is fed from the ingest stream and mutated as state
// events arrive.
type MemoryStore struct {
	mu            sync.RWMutex
	currentUserID string
	config        domain.ServerConfig
	session       domain.UserSessionState
	prefs         domain.UserNotifyPrefs
	channels      map[string]domain.ChannelSnapshot
	memberships   map[string]domain.ChannelMembership
	users         map[string]domain.UserProfile
	byPost        map[string]domain.Snapshot
}

func NewMemoryStore(currentUserID string, config domain.ServerConfig) *MemoryStore {
	return &MemoryStore{
		currentUserID: currentUserID,
		config:        config,
		session:       domain.UserSessionState{UserID: currentUserID, Status: domain.StatusOnline},
		channels:      make(map[string]domain.ChannelSnapshot),
		memberships:   make(map[string]domain.ChannelMembership),
		users:         make(map[string]domain.UserProfile),
		byPost:        make(map[string]domain.Snapshot),
	}
}

func (s *MemoryStore) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID
}

// Put records a complete per-post snapshot, as carried on the ingest
// stream. It wins over the channel-level state for that post.
func (s *MemoryStore) Put(postID string, snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPost[postID] = snap
	s.channels[snap.Channel.ID] = snap.Channel
	if snap.Membership != nil {
		s.memberships[snap.Channel.ID] = *snap.Membership
	}
	if snap.Sender != nil {
		s.users[snap.Sender.ID] = *snap.Sender
	}
}

func (s *MemoryStore) SetSession(session domain.UserSessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *MemoryStore) SetPrefs(prefs domain.UserNotifyPrefs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
}

func (s *MemoryStore) SetChannel(snap domain.ChannelSnapshot, membership *domain.ChannelMembership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[snap.ID] = snap
	if membership != nil {
		s.memberships[snap.ID] = *membership
	}
}

// ReadSnapshot assembles the state needed to decide one notification.
// A per-post snapshot takes precedence; otherwise the channel-level
// state is combined with the live session and preferences.
func (s *MemoryStore) ReadSnapshot(currentUserID, channelID, postID string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if snap, ok := s.byPost[postID]; ok {
		snap.Session = s.session
		return snap, nil
	}

	channel, ok := s.channels[channelID]
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("no state recorded for channel %s", channelID)
	}

	snap := domain.Snapshot{
		Channel: channel,
		Session: s.session,
		Prefs:   s.prefs,
		Config:  s.config,
	}
	if membership, ok := s.memberships[channelID]; ok && membership.UserID == currentUserID {
		m := membership
		snap.Membership = &m
	}
	return snap, nil
}
