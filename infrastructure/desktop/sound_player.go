package desktop

import (
	"fmt"
	"log/slog"
)

// LogSoundPlayer announces the selected sound instead of playing audio.
// Real playback depends on the host platform and is out of reach here;
// the resolution logic upstream is what matters.
type LogSoundPlayer struct {
	log *slog.Logger
}

func NewLogSoundPlayer(log *slog.Logger) *LogSoundPlayer {
	return &LogSoundPlayer{log: log}
}

func (p *LogSoundPlayer) Play(soundName string) {
	p.log.Info(fmt.Sprintf("Playing notification sound %q", soundName))
}
