package capture

import (
	"context"
	"image"
	"time"
)

// Source produces one full frame per call. Frames may come from the frame
// pool; hand them back with RecycleFrame once no longer referenced.
type Source interface {
	Capture(ctx context.Context) (*image.RGBA, error)
}

// FrameSnapshot describes a captured frame without retaining its pixels,
// which belong to the consumer (and possibly the pool) after Capture returns.
type FrameSnapshot struct {
	Size       image.Point
	CapturedAt time.Time
	Sequence   uint64
}
