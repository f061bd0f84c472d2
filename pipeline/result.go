// Package pipeline runs ordered lists of externally registered hooks
// over a typed payload. The executor enforces one contract for every
// pipeline kind: sequential invocation, short-circuit on error, and
// pass-through when a hook declines to act.
package pipeline

type resultKind int

const (
	kindPass resultKind = iota
	kindChange
	kindFail
	kindConsume
)

// HookResult is the tagged outcome of a single hook invocation.
//
// Change replaces the payload for subsequent hooks. Pass carries the
// previous payload forward unmodified. Fail stops the run and
// propagates the error. Consume stops the run and returns its value as
// final data; only slash-command hooks produce it, signalling the
// command was fully handled.
type HookResult[T any] struct {
	kind  resultKind
	value T
	err   error
}

func Change[T any](value T) HookResult[T] {
	return HookResult[T]{kind: kindChange, value: value}
}

func Pass[T any]() HookResult[T] {
	return HookResult[T]{kind: kindPass}
}

func Fail[T any](err error) HookResult[T] {
	return HookResult[T]{kind: kindFail, err: err}
}

func Consume[T any](value T) HookResult[T] {
	return HookResult[T]{kind: kindConsume, value: value}
}

// Replacement returns the replacement payload when the result is a
// Change. Callers use it to validate hook output before it propagates.
func (r HookResult[T]) Replacement() (T, bool) {
	return r.value, r.kind == kindChange
}
