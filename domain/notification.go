package domain

// NotificationArgs is the payload threaded through the desktop
// notification hook pipeline. A hook that passes leaves every field
// unchanged from the previous stage.
type NotificationArgs struct {
	Title  string
	Body   string
	Silent bool
	Sound  string
	URL    string
	Notify bool
}

// IsZero reports whether no field was set at all. A hook returning a
// zero-value replacement is malformed, distinct from a Notify=false veto.
func (a NotificationArgs) IsZero() bool {
	return a == NotificationArgs{}
}

type VerdictStatus string

const (
	StatusSent    VerdictStatus = "sent"
	StatusNotSent VerdictStatus = "not_sent"
	StatusError   VerdictStatus = "error"
)

// Reason explains a terminal verdict. Values are stable and
// machine-checkable.
type Reason string

const (
	ReasonOwnPost            Reason = "own_post"
	ReasonSystemMessage      Reason = "system_message"
	ReasonNoMember           Reason = "no_member"
	ReasonChannelMuted       Reason = "channel_muted"
	ReasonUserStatus         Reason = "user_status"
	ReasonLevelNone          Reason = "notify_level_none"
	ReasonNotExplicitMention Reason = "not_explicitly_mentioned"
	ReasonNotMentioned       Reason = "not_mentioned"
	ReasonNotFollowingThread Reason = "not_following_thread"
	ReasonThreadIsOpen       Reason = "thread_is_open"
	ReasonChannelIsOpen      Reason = "channel_is_open"
	ReasonHookSuppressed     Reason = "desktop_notification_hook"
	ReasonEmptyHookArgs      Reason = "returned empty args"
	ReasonNotificationAPI    Reason = "notification_api"
	ReasonInvalidRequest     Reason = "invalid_request"
	ReasonStateRead          Reason = "state_read"
)

// Verdict is the terminal outcome of one notification attempt.
type Verdict struct {
	Status VerdictStatus
	Reason Reason
	Data   map[string]any // optional diagnostics
}

// Sent carries the final args as diagnostic data so downstream sinks
// (history, search index) can record what was surfaced.
func Sent(data map[string]any) Verdict {
	return Verdict{Status: StatusSent, Data: data}
}

func NotSent(reason Reason) Verdict {
	return Verdict{Status: StatusNotSent, Reason: reason}
}

func Erred(reason Reason, data map[string]any) Verdict {
	return Verdict{Status: StatusError, Reason: reason, Data: data}
}
