package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"notify-lab/domain"
)

func testConfig() domain.ServerConfig {
	return domain.ServerConfig{SiteURL: "https://chat.example.com", DefaultSound: "Bing"}
}

func TestMemoryStore_PerPostSnapshotWins(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore("user-recipient", testConfig())

	snap := domain.Snapshot{
		Channel:    domain.ChannelSnapshot{ID: "channel-1", Type: domain.ChannelOpen, DisplayName: "General"},
		Membership: &domain.ChannelMembership{ChannelID: "channel-1", UserID: "user-recipient", Muted: true},
		Config:     testConfig(),
	}
	store.Put("post-1", snap)

	got, err := store.ReadSnapshot("user-recipient", "channel-1", "post-1")
	req.NoError(err)
	req.Equal("General", got.Channel.DisplayName)
	req.NotNil(got.Membership)
	req.True(got.Membership.Muted)
}

func TestMemoryStore_SessionOverlaysPerPostSnapshot(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore("user-recipient", testConfig())

	store.Put("post-1", domain.Snapshot{
		Channel: domain.ChannelSnapshot{ID: "channel-1"},
	})
	store.SetSession(domain.UserSessionState{UserID: "user-recipient", Status: domain.StatusDND})

	got, err := store.ReadSnapshot("user-recipient", "channel-1", "post-1")
	req.NoError(err)
	req.Equal(domain.StatusDND, got.Session.Status, "the live session wins over the snapshot's")
}

func TestMemoryStore_ChannelLevelFallback(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore("user-recipient", testConfig())

	store.SetChannel(
		domain.ChannelSnapshot{ID: "channel-1", DisplayName: "General"},
		&domain.ChannelMembership{ChannelID: "channel-1", UserID: "user-recipient"},
	)
	store.SetPrefs(domain.UserNotifyPrefs{DesktopLevel: domain.NotifyMention})

	got, err := store.ReadSnapshot("user-recipient", "channel-1", "post-unknown")
	req.NoError(err)
	req.Equal("General", got.Channel.DisplayName)
	req.NotNil(got.Membership)
	req.Equal(domain.NotifyMention, got.Prefs.DesktopLevel)
	req.Equal("https://chat.example.com", got.Config.SiteURL)
}

func TestMemoryStore_MembershipOfAnotherUserIsNotReturned(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore("user-recipient", testConfig())

	store.SetChannel(
		domain.ChannelSnapshot{ID: "channel-1"},
		&domain.ChannelMembership{ChannelID: "channel-1", UserID: "user-other"},
	)

	got, err := store.ReadSnapshot("user-recipient", "channel-1", "post-unknown")
	req.NoError(err)
	req.Nil(got.Membership)
}

func TestMemoryStore_UnknownChannelIsAnError(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore("user-recipient", testConfig())

	_, err := store.ReadSnapshot("user-recipient", "channel-ghost", "post-ghost")
	req.Error(err)
}

func TestMemoryStore_CurrentUserID(t *testing.T) {
	store := NewMemoryStore("user-recipient", testConfig())
	require.Equal(t, "user-recipient", store.CurrentUserID())
}
