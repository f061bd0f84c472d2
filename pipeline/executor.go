package pipeline

import (
	"context"
	"fmt"
)

// Hook is one externally registered pipeline stage. Name is the
// registering plugin's identifier, used for diagnostics only.
type Hook[T any] struct {
	Name string
	Fn   func(ctx context.Context, payload T) HookResult[T]
}

// Run invokes hooks in registration order over payload.
//
// Each hook receives the current payload, not the original. Hooks never
// run concurrently with each other; the next hook is invoked only after
// the previous one returned. A Fail result stops the run and its error
// is final, later hooks are never invoked. A Pass result carries the
// previous payload forward. A Consume result stops the run with its
// value as final data.
//
// Cancellation is checked between hooks only; a hook already running is
// allowed to complete. With no hooks registered the initial payload is
// returned unchanged.
func Run[T any](ctx context.Context, hooks []Hook[T], payload T) (T, error) {
	current := payload
	for _, hook := range hooks {
		if err := ctx.Err(); err != nil {
			return current, err
		}
		result := hook.Fn(ctx, current)
		switch result.kind {
		case kindFail:
			return current, fmt.Errorf("hook %q: %w", hook.Name, result.err)
		case kindChange:
			current = result.value
		case kindConsume:
			return result.value, nil
		case kindPass:
			// unchanged, next hook sees the same payload
		}
	}
	return current, nil
}
