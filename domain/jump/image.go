package jump

import "image"

// Image is the read-only pixel view the locators scan. Callers only pass
// coordinates inside [0, Width()) x [0, Height()).
type Image interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// rgbaView reads straight from an *image.RGBA backing slice.
type rgbaView struct {
	img  *image.RGBA
	w, h int
}

// FromRGBA wraps an *image.RGBA. Coordinates are relative to its bounds.
func FromRGBA(img *image.RGBA) Image {
	b := img.Bounds()
	return &rgbaView{img: img, w: b.Dx(), h: b.Dy()}
}

func (v *rgbaView) Width() int  { return v.w }
func (v *rgbaView) Height() int { return v.h }

func (v *rgbaView) RGB(x, y int) (uint8, uint8, uint8) {
	o := v.img.Rect.Min
	i := v.img.PixOffset(o.X+x, o.Y+y)
	p := v.img.Pix[i : i+3 : i+3]
	return p[0], p[1], p[2]
}
