package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gookit/color"

	"notify-lab/domain"
)

// TerminalNotifier renders desktop notifications as colored banners on
// stdout. It stands in for the OS notification center so the full flow
// can run headless.
type TerminalNotifier struct {
	log *slog.Logger
}

func NewTerminalNotifier(log *slog.Logger) *TerminalNotifier {
	return &TerminalNotifier{log: log}
}

func (n *TerminalNotifier) Show(ctx context.Context, args domain.NotificationArgs, channelID, teamID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notification dropped before display: %w", err)
	}

	title := color.New(color.BgBlack, color.FgGreen).Render(" " + args.Title + " ")
	body := color.New(color.FgWhite).Render(args.Body)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(body)
	if args.URL != "" {
		b.WriteString("\n")
		b.WriteString(color.New(color.FgCyan).Render(args.URL))
	}
	fmt.Println(b.String())

	n.log.Debug(fmt.Sprintf("Displayed notification for channel %s (team %s)", channelID, teamID))
	return nil
}
