package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"notify-lab/domain"
)

func baseBuilderInput() BuilderInput {
	return BuilderInput{
		Post: domain.Post{
			ID:        uuid.MustParse("11111111-2222-3333-4444-555555555555"),
			ChannelID: "channel-1",
			UserID:    "user-sender",
			Message:   "hello there",
		},
		Channel: domain.ChannelSnapshot{
			ID:          "channel-1",
			Type:        domain.ChannelOpen,
			DisplayName: "Town Square",
			TeamID:      "team-1",
		},
		Sender: &domain.UserProfile{ID: "user-sender", Username: "sender", DisplayName: "Sender"},
		Config: domain.ServerConfig{
			SiteURL:      "https://chat.example.com",
			DefaultSound: "Bing",
		},
	}
}

func TestBuildArgs_Defaults(t *testing.T) {
	req := require.New(t)

	args := BuildArgs(baseBuilderInput())
	req.Equal("Town Square", args.Title)
	req.Equal("@Sender: hello there", args.Body)
	req.False(args.Silent)
	req.Equal("Bing", args.Sound)
	req.Equal("https://chat.example.com/team-1/channels/channel-1", args.URL)
	req.True(args.Notify)
}

func TestBuildArgs_Title(t *testing.T) {
	tests := []struct {
		description string
		modify      func(in *BuilderInput)
		want        string
	}{
		{
			"Direct messages use a fixed label instead of the display name",
			func(in *BuilderInput) { in.Channel.Type = domain.ChannelDirect },
			"Direct Message",
		},
		{
			"Followed replies wrap the channel name",
			func(in *BuilderInput) { in.FollowedReply = true },
			"Reply in Town Square",
		},
		{
			"Followed replies in direct messages wrap the fixed label",
			func(in *BuilderInput) {
				in.Channel.Type = domain.ChannelDirect
				in.FollowedReply = true
			},
			"Reply in Direct Message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			in := baseBuilderInput()
			tt.modify(&in)
			require.Equal(t, tt.want, BuildArgs(in).Title, tt.description)
		})
	}
}

func TestBuildArgs_SenderResolution(t *testing.T) {
	tests := []struct {
		description string
		modify      func(in *BuilderInput)
		wantBody    string
	}{
		{
			"Integration override wins when the server allows it",
			func(in *BuilderInput) {
				in.Config.AllowPropsOverride = true
				in.Post.Props = map[string]any{domain.PropOverrideUsername: "Build Bot"}
			},
			"@Build Bot: hello there",
		},
		{
			"Integration override is ignored when the server forbids it",
			func(in *BuilderInput) {
				in.Post.Props = map[string]any{domain.PropOverrideUsername: "Build Bot"}
			},
			"@Sender: hello there",
		},
		{
			"Missing profile falls back to the transport hint",
			func(in *BuilderInput) {
				in.Sender = nil
				in.Props.SenderName = "wire-name"
			},
			"@wire-name: hello there",
		},
		{
			"No name anywhere falls back to a generic label",
			func(in *BuilderInput) { in.Sender = nil },
			"@Someone: hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			in := baseBuilderInput()
			tt.modify(&in)
			require.Equal(t, tt.wantBody, BuildArgs(in).Body, tt.description)
		})
	}
}

func TestBuildArgs_BodyFallbacks(t *testing.T) {
	tests := []struct {
		description string
		modify      func(in *BuilderInput)
		wantBody    string
	}{
		{
			"Markdown is stripped from the message",
			func(in *BuilderInput) { in.Post.Message = "check [this](https://x.example) **now**" },
			"@Sender: check this now",
		},
		{
			"Empty message uses the first attachment fallback",
			func(in *BuilderInput) {
				in.Post.Message = ""
				in.Post.Props = map[string]any{domain.PropAttachments: []domain.Attachment{
					{Fallback: "build failed on main"},
				}}
			},
			"@Sender: build failed on main",
		},
		{
			"Attachment pretext is used when fallback is empty",
			func(in *BuilderInput) {
				in.Post.Message = ""
				in.Post.Props = map[string]any{domain.PropAttachments: []domain.Attachment{
					{Pretext: "nightly report"},
				}}
			},
			"@Sender: nightly report",
		},
		{
			"Image upload marker yields a fixed phrase",
			func(in *BuilderInput) {
				in.Post.Message = ""
				in.Post.Props = map[string]any{domain.PropImage: true}
			},
			"@Sender: uploaded an image",
		},
		{
			"File upload marker yields a fixed phrase",
			func(in *BuilderInput) {
				in.Post.Message = ""
				in.Post.Props = map[string]any{domain.PropOtherFile: "true"}
			},
			"@Sender: uploaded a file",
		},
		{
			"Attachment image without text yields a fixed phrase",
			func(in *BuilderInput) {
				in.Post.Message = ""
				in.Post.Props = map[string]any{domain.PropAttachments: []domain.Attachment{
					{ImageURL: "https://example.com/p.png"},
				}}
			},
			"@Sender: posted an image",
		},
		{
			"No content at all yields the generic phrase",
			func(in *BuilderInput) { in.Post.Message = "" },
			"@Sender: did something new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			in := baseBuilderInput()
			tt.modify(&in)
			require.Equal(t, tt.wantBody, BuildArgs(in).Body, tt.description)
		})
	}
}

func TestBuildArgs_URL(t *testing.T) {
	req := require.New(t)

	in := baseBuilderInput()
	in.FollowedReply = true
	args := BuildArgs(in)
	req.Equal("https://chat.example.com/team-1/pl/11111111-2222-3333-4444-555555555555", args.URL,
		"followed replies link to the post permalink")
}

func TestBuildArgs_SilentFollowsSoundSetting(t *testing.T) {
	req := require.New(t)

	in := baseBuilderInput()
	in.Membership = &domain.ChannelMembership{Sound: domain.SoundOff}
	args := BuildArgs(in)
	req.True(args.Silent)
	// The name still resolves; Silent is what suppresses playback.
	req.Equal("Bing", args.Sound)
}
