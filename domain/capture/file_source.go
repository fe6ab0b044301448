package capture

import (
	"context"
	"image"
	"os"
)

// FileSource re-reads an image file on every capture, which makes it usable
// both for one-shot analysis and for feeding frames written by another tool.
type FileSource struct {
	path string
}

// NewFileSource returns a Source backed by the image at path.
func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

func (s *FileSource) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeFrame(f)
}
