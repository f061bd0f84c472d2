package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrNoMembership   = fmt.Errorf("no channel membership for user")
	ErrEmptyHookArgs  = fmt.Errorf("returned empty args")
	ErrInvalidRequest = fmt.Errorf("invalid notification request")
	ErrInvalidPayload = fmt.Errorf("invalid event payload")
)
