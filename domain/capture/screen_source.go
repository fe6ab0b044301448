package capture

import (
	"context"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenSource grabs the desktop, e.g. an emulator or mirroring window.
// An empty selection captures the whole active monitor.
type ScreenSource struct {
	selection image.Rectangle
}

// NewScreenSource returns a desktop capture Source limited to sel.
func NewScreenSource(sel image.Rectangle) *ScreenSource {
	return &ScreenSource{selection: sel.Canon()}
}

func (s *ScreenSource) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		img *image.RGBA
		err error
	)
	if s.selection.Empty() {
		img, err = screenshot.CaptureScreen()
	} else {
		img, err = screenshot.CaptureRect(s.selection)
	}
	if err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}
