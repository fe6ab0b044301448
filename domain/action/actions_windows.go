//go:build windows

package action

import (
	"context"
	"time"

	"golang.org/x/sys/windows"

	"github.com/soocke/jump-bot-go/domain/jump"
)

const (
	mouseeventfLeftDown = 0x0002
	mouseeventfLeftUp   = 0x0004
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procSetCursor  = user32.NewProc("SetCursorPos")
	procMouseEvent = user32.NewProc("mouse_event")
)

// MouseGesture presses the left mouse button on the desktop, e.g. over an
// emulator window captured by the screen source. Coordinates are screen
// pixels; offset shifts them from capture space to screen space.
type MouseGesture struct {
	offset jump.Coordinate
}

// NewMouseGesture returns a desktop Gesture. offset is the top-left of the
// captured selection.
func NewMouseGesture(offset jump.Coordinate) *MouseGesture {
	return &MouseGesture{offset: offset}
}

func (g *MouseGesture) Press(ctx context.Context, from, to jump.Coordinate, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	moveCursor(from.X+g.offset.X, from.Y+g.offset.Y)
	_, _, _ = procMouseEvent.Call(mouseeventfLeftDown, 0, 0, 0, 0)
	err := hold(ctx, d)
	if to != from {
		moveCursor(to.X+g.offset.X, to.Y+g.offset.Y)
	}
	// release even when cancelled so the button is never left down
	_, _, _ = procMouseEvent.Call(mouseeventfLeftUp, 0, 0, 0, 0)
	return err
}

// moveCursor moves the OS mouse pointer to (x, y).
func moveCursor(x, y int) {
	_, _, _ = procSetCursor.Call(uintptr(x), uintptr(y))
}
