package dispatch

import "notify-lab/domain"

// SoundEnabled resolves the sound toggle: an explicit channel setting
// wins, then the user-level setting, then enabled. Note the chain
// differs from SoundName on purpose; the enabled flag treats an unset
// user setting as "on" while the name falls through to a fixed default.
func SoundEnabled(membership *domain.ChannelMembership, prefs domain.UserNotifyPrefs) bool {
	if membership != nil {
		switch membership.Sound {
		case domain.SoundOn:
			return true
		case domain.SoundOff:
			return false
		}
	}
	switch prefs.Sound {
	case domain.SoundOn:
		return true
	case domain.SoundOff:
		return false
	}
	return true
}

// SoundName resolves which sound to play: the channel membership name
// unless it is "default", then the user-level name unless "default",
// then the server's fixed default.
func SoundName(membership *domain.ChannelMembership, prefs domain.UserNotifyPrefs, defaultSound string) string {
	if membership != nil && membership.SoundName != "" && membership.SoundName != "default" {
		return membership.SoundName
	}
	if prefs.SoundName != "" && prefs.SoundName != "default" {
		return prefs.SoundName
	}
	return defaultSound
}
