package capture

import (
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeFrame decodes any registered format (png, jpeg, bmp, webp) into an RGBA frame.
func decodeFrame(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("capture: decode: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("capture: empty %s image", format)
	}
	return toRGBA(img), nil
}
