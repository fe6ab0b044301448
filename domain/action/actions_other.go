//go:build !windows

package action

import (
	"context"
	"errors"
	"time"

	"github.com/soocke/jump-bot-go/domain/jump"
)

// ErrMouseUnsupported is returned by MouseGesture outside Windows.
var ErrMouseUnsupported = errors.New("action: desktop mouse press is only supported on windows")

// MouseGesture is the desktop press; only implemented on Windows.
type MouseGesture struct {
	offset jump.Coordinate
}

// NewMouseGesture returns a desktop Gesture that always fails on this platform.
func NewMouseGesture(offset jump.Coordinate) *MouseGesture {
	return &MouseGesture{offset: offset}
}

func (g *MouseGesture) Press(ctx context.Context, _, _ jump.Coordinate, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrMouseUnsupported
}
