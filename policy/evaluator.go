// Package policy decides whether a post should surface a desktop
// notification at all. Evaluate is a pure function of its inputs so the
// rule table can be tested in isolation.
package policy

import (
	"slices"

	"notify-lab/domain"
	"notify-lab/errors"
)

type Outcome int

const (
	Proceed Outcome = iota
	Skip
	Error
)

// Input gathers everything the rules inspect. Membership is nil when
// the store has no record for this user/channel.
type Input struct {
	Post       domain.Post
	Props      domain.MessageProps
	Channel    domain.ChannelSnapshot
	Membership *domain.ChannelMembership
	Session    domain.UserSessionState
	Prefs      domain.UserNotifyPrefs
}

// Decision is the evaluator's verdict plus the override data later
// stages need: FollowedReply tells the builder this is a collapsed
// thread reply, Forced tells the dispatcher a hook veto is the only
// remaining suppression path.
type Decision struct {
	Outcome       Outcome
	Reason        domain.Reason
	Err           error
	FollowedReply bool
	Forced        bool
}

func skip(reason domain.Reason) Decision {
	return Decision{Outcome: Skip, Reason: reason}
}

// Evaluate applies the notification rules in order; the first matching
// rule wins.
func Evaluate(in Input) Decision {
	post := in.Post
	session := in.Session
	followedReply := session.CollapsedThreads && post.IsReply()

	if post.UserID == session.UserID && !post.IsFromWebhook() {
		return skip(domain.ReasonOwnPost)
	}

	if post.IsSystemMessage() && post.AddedUserID() != session.UserID {
		return skip(domain.ReasonSystemMessage)
	}

	if in.Membership == nil {
		return Decision{Outcome: Error, Reason: domain.ReasonNoMember, Err: errors.ErrNoMembership}
	}

	// Explicit re-engagement: mute, level and focus checks do not apply,
	// only a hook-level veto can still suppress the notification.
	if post.ForceNotification() {
		return Decision{Outcome: Proceed, FollowedReply: followedReply, Forced: true}
	}

	if in.Membership.Muted {
		return skip(domain.ReasonChannelMuted)
	}

	if session.Status == domain.StatusDND || session.Status == domain.StatusOutOfOffice {
		return skip(domain.ReasonUserStatus)
	}

	level := effectiveLevel(in.Channel.Type, in.Membership.NotifyLevel, in.Prefs.DesktopLevel)

	if level == domain.NotifyNone {
		return skip(domain.ReasonLevelNone)
	}

	if level == domain.NotifyMention {
		if in.Channel.Type == domain.ChannelGroup {
			if !MatchesExplicitMention(post, in.Prefs.MentionKeys, in.Membership.IgnoreChannelMentions) {
				return skip(domain.ReasonNotExplicitMention)
			}
		} else if !slices.Contains(in.Props.Mentions, session.UserID) && in.Channel.Type != domain.ChannelDirect {
			// DMs always count as addressed to the recipient.
			return skip(domain.ReasonNotMentioned)
		}
	}

	if level == domain.NotifyAll && followedReply && !slices.Contains(in.Props.Followers, session.UserID) {
		return skip(domain.ReasonNotFollowingThread)
	}

	if session.WindowFocused {
		if followedReply {
			if session.ActiveThreadRootID == post.RootID {
				return skip(domain.ReasonThreadIsOpen)
			}
		} else if session.ActiveChannelID == post.ChannelID {
			return skip(domain.ReasonChannelIsOpen)
		}
	}

	return Decision{Outcome: Proceed, FollowedReply: followedReply}
}

// effectiveLevel resolves the desktop notify level: the membership
// override wins unless it is "default", then the user preference, then
// "all". Group channels on a default membership promote a user-level
// "mention" to "all" since any group message is worth surfacing.
func effectiveLevel(channelType domain.ChannelType, membership, user domain.NotifyLevel) domain.NotifyLevel {
	if membership != domain.NotifyDefault && membership != "" {
		return membership
	}
	if channelType == domain.ChannelGroup && user == domain.NotifyMention {
		return domain.NotifyAll
	}
	if user != domain.NotifyDefault && user != "" {
		return user
	}
	return domain.NotifyAll
}
