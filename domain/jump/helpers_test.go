package jump

import (
	"image"
	"image/color"
)

var (
	background = color.RGBA{R: 220, G: 210, B: 240, A: 255}
	apex       = color.RGBA{R: 52, G: 52, B: 59, A: 255}
	platform   = color.RGBA{R: 100, G: 150, B: 200, A: 255}
	highlight  = color.RGBA{R: 254, G: 254, B: 254, A: 255}
)

// synthFrame creates a uniform RGBA image filled with c.
func synthFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// fillRect paints [x0,x1) x [y0,y1) with c.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
