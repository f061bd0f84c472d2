package domain

import "time"

type ChannelType string

const (
	ChannelOpen    ChannelType = "O"
	ChannelPrivate ChannelType = "P"
	ChannelDirect  ChannelType = "D"
	ChannelGroup   ChannelType = "G"
)

// NotifyLevel is the desktop notification level, set per channel
// membership or per user. Default defers to the next level down the
// resolution chain.
type NotifyLevel string

const (
	NotifyAll     NotifyLevel = "all"
	NotifyMention NotifyLevel = "mention"
	NotifyNone    NotifyLevel = "none"
	NotifyDefault NotifyLevel = "default"
)

// SoundSetting is a tri-state sound toggle. Default defers to the
// user-level setting; an unset user-level setting means enabled.
type SoundSetting string

const (
	SoundOn      SoundSetting = "on"
	SoundOff     SoundSetting = "off"
	SoundDefault SoundSetting = "default"
)

// ChannelSnapshot is a read-only view of a channel supplied by the store.
type ChannelSnapshot struct {
	ID          string
	Type        ChannelType
	DisplayName string
	TeamID      string
}

// ChannelMembership holds the per-user notify preferences for one channel.
// Owned by the store; the core never writes it.
type ChannelMembership struct {
	ChannelID             string
	UserID                string
	NotifyLevel           NotifyLevel
	Sound                 SoundSetting
	SoundName             string // "default" defers to the user-level name
	Muted                 bool
	IgnoreChannelMentions bool
	LastViewedAt          time.Time
}

// UserProfile is the author-side view the builder needs.
type UserProfile struct {
	ID          string
	Username    string
	DisplayName string
}

// MentionKey is one token whose presence in a message counts as an
// explicit mention of the user. Case sensitivity is per key.
type MentionKey struct {
	Key           string
	CaseSensitive bool
}

// Channel-wide mention tokens. Excluded from matching when the
// membership administratively ignores channel mentions.
var ChannelWideMentions = []string{"@all", "@here", "@channel"}

// UserNotifyPrefs are the user-level notification preferences.
type UserNotifyPrefs struct {
	DesktopLevel NotifyLevel
	Sound        SoundSetting
	SoundName    string
	MentionKeys  []MentionKey
}
