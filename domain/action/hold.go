package action

import (
	"context"
	"time"
)

// spinWindow is the tail of a hold spent polling instead of sleeping;
// timer wake-ups are too coarse for millisecond-accurate presses.
const spinWindow = 2 * time.Millisecond

// hold blocks for d. The bulk is a timer wait that honours ctx; the last
// spinWindow is a busy wait.
func hold(ctx context.Context, d time.Duration) error {
	start := time.Now()
	if d > spinWindow {
		t := time.NewTimer(d - spinWindow)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	for time.Since(start) < d {
	}
	return nil
}
