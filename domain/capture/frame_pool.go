package capture

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// Frames decoded from PNG screenshots arrive as *image.NRGBA; they are
// converted into pooled RGBA buffers so a long session does not keep
// allocating a fresh full-resolution backing slice per jump. Consumers call
// RecycleFrame when a frame is no longer referenced; frames that are never
// recycled are simply garbage collected.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns a reusable RGBA image sized to rect. The returned Pix
// length exactly matches rect area * 4, and Stride is width*4.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// toRGBA returns src as a zero-origin *image.RGBA, copying into a pooled
// frame when src has another pixel layout.
func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := acquireFrame(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// RecycleFrame returns the frame to the pool for potential reuse. The frame
// must no longer be accessed by the caller after invoking RecycleFrame.
func RecycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
