// Package domain contains core concepts of the notification system.
// This file defines Post records and the property markers hooks
// and the policy evaluator rely on.
// Posts are immutable; hooks replace them, nothing mutates them in place.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Property keys carried in Post.Props. External producers (webhooks,
// plugins, the message composer) set these; the core only reads them.
const (
	PropFromWebhook       = "from_webhook"
	PropForceNotification = "force_notification"
	PropOverrideUsername  = "override_username"
	PropAddedUserID       = "added_user_id"
	PropAttachments       = "attachments"
	PropImage             = "image"
	PropOtherFile         = "other_file"
	PropPriority          = "priority"
)

// SystemMessagePrefix marks posts generated by the server rather than a user.
const SystemMessagePrefix = "system_"

// Post represents an immutable chat message event.
type Post struct {
	ID        uuid.UUID
	ChannelID string
	RootID    string // empty if not a reply
	UserID    string
	Message   string
	Type      string
	Props     map[string]any
	CreatedAt time.Time
}

// IsReply reports whether the post belongs to a thread.
func (p Post) IsReply() bool {
	return p.RootID != ""
}

// IsSystemMessage reports whether the post was generated by the server.
func (p Post) IsSystemMessage() bool {
	return strings.HasPrefix(p.Type, SystemMessagePrefix)
}

// IsFromWebhook reports whether the post carries the webhook marker.
// A webhook post authored under the current user's id must still notify.
func (p Post) IsFromWebhook() bool {
	return p.boolProp(PropFromWebhook)
}

// ForceNotification reports whether the post demands a notification
// regardless of mute, level and focus state.
func (p Post) ForceNotification() bool {
	return p.boolProp(PropForceNotification)
}

// AddedUserID returns the participant named by a system join message.
func (p Post) AddedUserID() string {
	if v, ok := p.Props[PropAddedUserID].(string); ok {
		return v
	}
	return ""
}

// OverrideUsername returns the display-name override set by integrations.
func (p Post) OverrideUsername() string {
	if v, ok := p.Props[PropOverrideUsername].(string); ok {
		return v
	}
	return ""
}

// Attachments returns the attachment list carried in the post properties.
func (p Post) Attachments() []Attachment {
	switch v := p.Props[PropAttachments].(type) {
	case []Attachment:
		return v
	case []any:
		var out []Attachment
		for _, item := range v {
			if a, ok := item.(Attachment); ok {
				out = append(out, a)
			}
		}
		return out
	}
	return nil
}

// HasImage reports whether the post carries the explicit image upload marker.
func (p Post) HasImage() bool {
	return p.boolProp(PropImage)
}

// HasOtherFile reports whether the post carries the explicit file upload marker.
func (p Post) HasOtherFile() bool {
	return p.boolProp(PropOtherFile)
}

// boolProp accepts both native booleans and the "true" strings
// webhook payloads tend to carry.
func (p Post) boolProp(key string) bool {
	switch v := p.Props[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Attachment is an integration-supplied rich content block.
// All text fields participate in explicit mention matching.
type Attachment struct {
	Fallback string
	Pretext  string
	Title    string
	Text     string
	Footer   string
	ImageURL string
	Fields   []AttachmentField
}

type AttachmentField struct {
	Title string
	Value string
}

// MessageProps carries the per-event metadata delivered alongside a post,
// resolved by the transport layer before the core sees the event.
type MessageProps struct {
	ChannelDisplayName string
	ChannelType        ChannelType
	TeamID             string
	SenderName         string   // display-name hint from the sender's client
	Mentions           []string // user ids addressed by the post
	Followers          []string // user ids following the post's thread
}
