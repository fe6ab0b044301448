package action

import (
	"context"
	"log/slog"
	"time"

	"github.com/soocke/jump-bot-go/domain/adb"
	"github.com/soocke/jump-bot-go/domain/jump"
)

// Gesture performs a press that starts at from, ends at to and lasts d.
// Jumps use from == to, i.e. a long press in place.
type Gesture interface {
	Press(ctx context.Context, from, to jump.Coordinate, d time.Duration) error
}

// ADBGesture injects the press with `adb shell input swipe`.
type ADBGesture struct {
	client *adb.Client
}

// NewADBGesture returns a Gesture backed by client.
func NewADBGesture(client *adb.Client) *ADBGesture { return &ADBGesture{client: client} }

func (g *ADBGesture) Press(ctx context.Context, from, to jump.Coordinate, d time.Duration) error {
	return g.client.Swipe(ctx, from.X, from.Y, to.X, to.Y, d)
}

// DryRun logs presses instead of performing them.
type DryRun struct {
	logger *slog.Logger
}

// NewDryRun returns a Gesture that only logs.
func NewDryRun(logger *slog.Logger) *DryRun { return &DryRun{logger: logger} }

func (g *DryRun) Press(ctx context.Context, from, to jump.Coordinate, d time.Duration) error {
	if g.logger != nil {
		g.logger.Info("dry-run press", "x", from.X, "y", from.Y, "to_x", to.X, "to_y", to.Y, "ms", d.Milliseconds())
	}
	return ctx.Err()
}

var (
	_ Gesture = (*ADBGesture)(nil)
	_ Gesture = (*DryRun)(nil)
	_ Gesture = (*MouseGesture)(nil)
)
