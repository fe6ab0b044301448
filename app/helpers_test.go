package app

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/soocke/jump-bot-go/config"
	"github.com/soocke/jump-bot-go/domain/jump"
)

var (
	background = color.RGBA{R: 220, G: 210, B: 240, A: 255}
	apex       = color.RGBA{R: 52, G: 52, B: 59, A: 255}
	platform   = color.RGBA{R: 100, G: 150, B: 200, A: 255}
	highlight  = color.RGBA{R: 254, G: 254, B: 254, A: 255}
)

func synthFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// sceneFrame has the piece base at (564,990) and a highlighted target at (305,750).
func sceneFrame() *image.RGBA {
	img := synthFrame(720, 1280, background)
	fillRect(img, 560, 800, 568, 801, apex)
	fillRect(img, 300, 720, 311, 721, platform)
	img.SetRGBA(305, 740, highlight)
	return img
}

// testConfig disables rescaling and the stall guard.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.ReferenceWidth = 0
	cfg.StallFrames = 0
	return cfg
}

// frameSource returns a fresh frame from next on every capture.
type frameSource struct {
	next     func() *image.RGBA
	err      error
	captures int
}

func (s *frameSource) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.captures++
	if s.err != nil {
		return nil, s.err
	}
	return s.next(), nil
}

type press struct {
	at jump.Coordinate
	d  time.Duration
}

type recordingGesture struct {
	mu      sync.Mutex
	presses []press
	hook    func()
}

func (g *recordingGesture) Press(ctx context.Context, from, to jump.Coordinate, d time.Duration) error {
	if from != to {
		return errors.New("expected press in place")
	}
	g.mu.Lock()
	g.presses = append(g.presses, press{at: from, d: d})
	g.mu.Unlock()
	if g.hook != nil {
		g.hook()
	}
	return ctx.Err()
}

type sleepLog struct {
	waits []time.Duration
}

func (s *sleepLog) sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return ctx.Err()
}

type statsCounter struct{ calls int }

func (s *statsCounter) LogStats() { s.calls++ }
