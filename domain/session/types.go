package session

import (
	"context"
	"errors"
	"time"
)

// ErrStalled ends a session whose screen stopped changing, typically the
// game-over screen.
var ErrStalled = errors.New("session: screen unchanged")

// State enumerates the phases of one jump cycle.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateDetecting
	StatePressing
	StateResting
	StateSettling
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateDetecting:
		return "detecting"
	case StatePressing:
		return "pressing"
	case StateResting:
		return "resting"
	case StateSettling:
		return "settling"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Listener is called on each state transition.
type Listener func(prev, next State)

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
