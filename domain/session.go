package domain

// PresenceStatus is the user's availability as tracked by the server.
type PresenceStatus string

const (
	StatusOnline      PresenceStatus = "online"
	StatusAway        PresenceStatus = "away"
	StatusOffline     PresenceStatus = "offline"
	StatusDND         PresenceStatus = "dnd"
	StatusOutOfOffice PresenceStatus = "ooo"
)

// UserSessionState is a read-only snapshot of the recipient's client state
// at evaluation time.
type UserSessionState struct {
	UserID             string
	Status             PresenceStatus
	WindowFocused      bool
	ActiveChannelID    string // channel currently open in the viewport
	ActiveThreadRootID string // thread currently open, empty if none
	CollapsedThreads   bool
}

// ServerConfig is the slice of server configuration the core reads.
type ServerConfig struct {
	SiteURL            string
	DefaultSound       string
	AllowPropsOverride bool // integrations may override the sender display name
	NativeShell        bool // desktop/mobile shells own their sound playback
}

// Snapshot is a consistent read of application state for one
// notification attempt. Membership is nil when the store has no record,
// which the evaluator treats as inconsistent state rather than policy.
type Snapshot struct {
	Channel    ChannelSnapshot
	Membership *ChannelMembership
	Session    UserSessionState
	Prefs      UserNotifyPrefs
	Sender     *UserProfile
	Config     ServerConfig
}
