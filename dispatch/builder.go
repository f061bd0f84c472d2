// Package dispatch builds default notification arguments and drives the
// hook pipeline and OS notifier for one notification attempt.
package dispatch

import (
	"fmt"

	"notify-lab/domain"
)

// Fallback phrases when a post has no usable text, in detection
// priority order.
const (
	bodyUploadedImage = "uploaded an image"
	bodyUploadedFile  = "uploaded a file"
	bodyPostedImage   = "posted an image"
	bodyGenericUpdate = "did something new"

	directMessageTitle = "Direct Message"
	fallbackSender     = "Someone"
)

// BuilderInput carries the resolved state the builder reads. It never
// mutates any of it.
type BuilderInput struct {
	Post          domain.Post
	Props         domain.MessageProps
	Channel       domain.ChannelSnapshot
	Membership    *domain.ChannelMembership
	Prefs         domain.UserNotifyPrefs
	Sender        *domain.UserProfile
	Config        domain.ServerConfig
	FollowedReply bool
}

// BuildArgs assembles the default title/body/sound/url for a
// notification before hook transformation.
func BuildArgs(in BuilderInput) domain.NotificationArgs {
	title := in.Channel.DisplayName
	if in.Channel.Type == domain.ChannelDirect {
		title = directMessageTitle
	}
	if in.FollowedReply {
		title = fmt.Sprintf("Reply in %s", title)
	}

	enabled := SoundEnabled(in.Membership, in.Prefs)

	return domain.NotificationArgs{
		Title:  title,
		Body:   fmt.Sprintf("@%s: %s", senderName(in), bodyText(in.Post)),
		Silent: !enabled,
		Sound:  SoundName(in.Membership, in.Prefs, in.Config.DefaultSound),
		URL:    targetURL(in),
		Notify: true,
	}
}

// senderName resolves the display name: integration override when the
// server permits it, then the author profile, then the transport hint,
// then a generic fallback.
func senderName(in BuilderInput) string {
	if in.Config.AllowPropsOverride {
		if override := in.Post.OverrideUsername(); override != "" {
			return override
		}
	}
	if in.Sender != nil && in.Sender.DisplayName != "" {
		return in.Sender.DisplayName
	}
	if in.Props.SenderName != "" {
		return in.Props.SenderName
	}
	return fallbackSender
}

// bodyText strips the post body down to plain text; an empty body falls
// back to the first attachment's text, then to a fixed phrase chosen by
// content type.
func bodyText(post domain.Post) string {
	text := stripMarkdown(post.Message)
	if text != "" {
		return text
	}

	for _, a := range post.Attachments() {
		for _, candidate := range []string{a.Fallback, a.Pretext, a.Text} {
			if stripped := stripMarkdown(candidate); stripped != "" {
				return stripped
			}
		}
	}

	switch {
	case post.HasImage():
		return bodyUploadedImage
	case post.HasOtherFile():
		return bodyUploadedFile
	case hasAttachmentImage(post):
		return bodyPostedImage
	default:
		return bodyGenericUpdate
	}
}

func hasAttachmentImage(post domain.Post) bool {
	for _, a := range post.Attachments() {
		if a.ImageURL != "" {
			return true
		}
	}
	return false
}

// targetURL points at the specific post for followed replies and at the
// channel otherwise.
func targetURL(in BuilderInput) string {
	if in.FollowedReply {
		return fmt.Sprintf("%s/%s/pl/%s", in.Config.SiteURL, in.Channel.TeamID, in.Post.ID)
	}
	return fmt.Sprintf("%s/%s/channels/%s", in.Config.SiteURL, in.Channel.TeamID, in.Channel.ID)
}
