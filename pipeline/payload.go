package pipeline

import "notify-lab/domain"

// PostUpdate is the payload of the message-will-be-updated pipeline.
// Hooks transform New; Old is the pre-edit post and stays constant
// across the run.
type PostUpdate struct {
	New domain.Post
	Old domain.Post
}

// CommandArgs is the execution context of a slash command.
type CommandArgs struct {
	ChannelID string
	TeamID    string
	RootID    string
}

// SlashCommand is the payload of the slash-command pipeline. A hook
// consuming the command terminates the run with an empty SlashCommand,
// which callers must distinguish from a transformed command.
type SlashCommand struct {
	Message string
	Args    CommandArgs
}

// IsEmpty reports whether the command was fully consumed by a hook.
func (c SlashCommand) IsEmpty() bool {
	return c == SlashCommand{}
}
