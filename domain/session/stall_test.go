package session

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

// checker renders a w x h checkerboard with the given cell size.
func checker(w, h, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 30, G: 30, B: 30, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 230, G: 230, B: 230, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// split renders a frame dark on one half and light on the other.
func split(w, h int, vertical bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dark := x < w/2
			if !vertical {
				dark = y < h/2
			}
			c := color.RGBA{R: 230, G: 230, B: 230, A: 255}
			if dark {
				c = color.RGBA{R: 30, G: 30, B: 30, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestStallGuard_IdenticalFramesStall(t *testing.T) {
	g := NewStallGuard(0, 3)
	frame := checker(64, 64, 8)
	var stalled bool
	for i := 0; i < 4; i++ {
		s, err := g.Observe(frame)
		if err != nil {
			t.Fatalf("observe: %v", err)
		}
		if i < 3 && s {
			t.Fatalf("stalled too early at frame %d", i)
		}
		stalled = s
	}
	if !stalled {
		t.Fatalf("expected stall after 3 repeats")
	}
}

func TestStallGuard_ChangingFramesResetCount(t *testing.T) {
	g := NewStallGuard(0, 2)
	a, b := split(64, 64, true), split(64, 64, false)
	for i, f := range []*image.RGBA{a, a, b, b, a} {
		s, err := g.Observe(f)
		if err != nil {
			t.Fatalf("observe: %v", err)
		}
		if s {
			t.Fatalf("unexpected stall at frame %d", i)
		}
	}
}

func TestStallGuard_DisabledAndReset(t *testing.T) {
	frame := checker(32, 32, 4)
	off := NewStallGuard(0, 0)
	for i := 0; i < 5; i++ {
		if s, _ := off.Observe(frame); s {
			t.Fatalf("disabled guard reported a stall")
		}
	}
	g := NewStallGuard(0, 1)
	_, _ = g.Observe(frame)
	g.Reset()
	if s, _ := g.Observe(frame); s {
		t.Fatalf("reset guard compared against a forgotten frame")
	}
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := Sleep(context.Background(), 0); err != nil {
		t.Fatalf("zero sleep: %v", err)
	}
}

func TestState_String(t *testing.T) {
	if StatePressing.String() != "pressing" || State(99).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
