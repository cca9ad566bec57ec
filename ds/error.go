package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode is panicked by exhaustive switches over closed
	// sets (station id kinds, drawing elements) when a value falls
	// outside them.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Value == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable case %v (%T)", r.Caller, r.Value, r.Value)
}
