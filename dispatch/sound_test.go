package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"notify-lab/domain"
)

func membershipWithSound(setting domain.SoundSetting, name string) *domain.ChannelMembership {
	return &domain.ChannelMembership{Sound: setting, SoundName: name}
}

func TestSoundEnabled(t *testing.T) {
	tests := []struct {
		description string
		membership  *domain.ChannelMembership
		prefs       domain.UserNotifyPrefs
		want        bool
	}{
		{
			"Channel-level on wins over user-level off",
			membershipWithSound(domain.SoundOn, ""),
			domain.UserNotifyPrefs{Sound: domain.SoundOff},
			true,
		},
		{
			"Channel-level off wins over user-level on",
			membershipWithSound(domain.SoundOff, ""),
			domain.UserNotifyPrefs{Sound: domain.SoundOn},
			false,
		},
		{
			"Channel default falls through to the user setting",
			membershipWithSound(domain.SoundDefault, ""),
			domain.UserNotifyPrefs{Sound: domain.SoundOff},
			false,
		},
		{
			"Unset everywhere means enabled",
			membershipWithSound(domain.SoundDefault, ""),
			domain.UserNotifyPrefs{},
			true,
		},
		{
			"Nil membership uses the user setting",
			nil,
			domain.UserNotifyPrefs{Sound: domain.SoundOn},
			true,
		},
		{
			"Nil membership and unset user setting means enabled",
			nil,
			domain.UserNotifyPrefs{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, SoundEnabled(tt.membership, tt.prefs), tt.description)
		})
	}
}

func TestSoundName(t *testing.T) {
	tests := []struct {
		description  string
		membership   *domain.ChannelMembership
		prefs        domain.UserNotifyPrefs
		defaultSound string
		want         string
	}{
		{
			"Channel-level name wins",
			membershipWithSound("", "Bing"),
			domain.UserNotifyPrefs{SoundName: "Crackle"},
			"Ding",
			"Bing",
		},
		{
			"Channel-level 'default' defers to the user name",
			membershipWithSound("", "default"),
			domain.UserNotifyPrefs{SoundName: "Crackle"},
			"Ding",
			"Crackle",
		},
		{
			"User-level 'default' defers to the server default",
			membershipWithSound("", "default"),
			domain.UserNotifyPrefs{SoundName: "default"},
			"Ding",
			"Ding",
		},
		{
			"Empty everywhere resolves to the server default",
			membershipWithSound("", ""),
			domain.UserNotifyPrefs{},
			"Ding",
			"Ding",
		},
		{
			"Nil membership uses the user name",
			nil,
			domain.UserNotifyPrefs{SoundName: "Crackle"},
			"Ding",
			"Crackle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, SoundName(tt.membership, tt.prefs, tt.defaultSound), tt.description)
		})
	}
}
