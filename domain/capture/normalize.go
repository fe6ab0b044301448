package capture

import (
	"context"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

// Normalize rescales img to width pixels wide, keeping the aspect ratio.
// Detection thresholds are calibrated at a reference width; nearest-neighbour
// sampling keeps exact pixel colours so colour bands still match. It returns
// img unchanged when no scaling is needed.
func Normalize(img *image.RGBA, width int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || b.Dx() == width || b.Dx() == 0 {
		return img
	}
	h := (b.Dy()*width + b.Dx()/2) / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := acquireFrame(image.Rect(0, 0, width, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Normalizer wraps a Source and rescales its frames to a reference width.
type Normalizer struct {
	src    Source
	width  int
	logger *slog.Logger
	warned bool
}

// NewNormalizer returns a Source producing frames width pixels wide.
func NewNormalizer(src Source, width int, logger *slog.Logger) *Normalizer {
	return &Normalizer{src: src, width: width, logger: logger}
}

func (n *Normalizer) Capture(ctx context.Context) (*image.RGBA, error) {
	img, err := n.src.Capture(ctx)
	if err != nil {
		return nil, err
	}
	out := Normalize(img, n.width)
	if out != img {
		if !n.warned && n.logger != nil {
			n.logger.Info("rescaling frames to reference width", "from", img.Bounds().Dx(), "to", n.width)
			n.warned = true
		}
		RecycleFrame(img)
	}
	return out, nil
}
