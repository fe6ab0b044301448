package debug

// Annotated frame dumps for calibrating thresholds. Each detection cycle can
// write the analysed frame with the scan start row, the piece base and the
// target marked, so a mis-detection can be inspected after the fact.

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"github.com/soocke/jump-bot-go/domain/jump"
)

var (
	scanLineColor = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	pieceColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	targetColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

const markerRadius = 12

// Dumper writes annotated frames into a directory.
type Dumper struct {
	dir     string
	scanRow int
	logger  *slog.Logger
	seq     int
}

// NewDumper returns a Dumper writing into dir; scanRow is drawn as a guide line.
func NewDumper(dir string, scanRow int, logger *slog.Logger) *Dumper {
	return &Dumper{dir: dir, scanRow: scanRow, logger: logger}
}

// Save writes frame annotated with res. When detectErr is set only the
// guide line is drawn and the file name is marked as a failure. The frame
// itself is not modified.
func (d *Dumper) Save(frame *image.RGBA, res jump.DetectionResult, detectErr error) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", err
	}
	b := frame.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), frame, b.Min, draw.Src)

	hline(out, d.scanRow, scanLineColor)
	suffix := "ok"
	if detectErr != nil {
		suffix = "fail"
	} else {
		cross(out, res.Piece.Base, pieceColor)
		cross(out, res.Target.Center, targetColor)
	}

	data, err := EncodePNG(out)
	if err != nil {
		return "", fmt.Errorf("debug: encode frame: %w", err)
	}
	d.seq++
	name := fmt.Sprintf("%s_%04d_%s.png", time.Now().Format("20060102_150405"), d.seq, suffix)
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	if d.logger != nil {
		d.logger.Debug("debug frame saved", "path", path, "error", detectErr)
	}
	return path, nil
}

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("debug: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hline(img *image.RGBA, y int, c color.RGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetRGBA(x, y, c)
	}
}

// cross draws a plus sign centred on p, clipped to the image.
func cross(img *image.RGBA, p jump.Coordinate, c color.RGBA) {
	b := img.Bounds()
	for i := -markerRadius; i <= markerRadius; i++ {
		if pt := image.Pt(p.X+i, p.Y); pt.In(b) {
			img.SetRGBA(pt.X, pt.Y, c)
		}
		if pt := image.Pt(p.X, p.Y+i); pt.In(b) {
			img.SetRGBA(pt.X, pt.Y, c)
		}
	}
}
