package world

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("lane out of range")

// OutOfRangeError reports a query for a lane the window does not retain.
// Callers must only query inside [Lo, Hi); hitting this is a contract bug.
type OutOfRangeError struct {
	Lane int
	Lo   int // Lowest retained lane
	Hi   int // One past the highest generated lane
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("world: lane %d out of range [%d, %d)", e.Lane, e.Lo, e.Hi)
}

// Is lets errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// InvariantError reports broken window bookkeeping. It is never expected at
// runtime; generation panics with it.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "world: invariant violated: " + e.Reason
}
