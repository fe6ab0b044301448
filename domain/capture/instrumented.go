package capture

import (
	"context"
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

// Instrumented wraps a Source and records capture counts and latency.
type Instrumented struct {
	src          Source
	logger       *slog.Logger
	captures     atomic.Uint64
	failures     atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
	latest       atomic.Pointer[FrameSnapshot]
}

// NewInstrumented wraps src.
func NewInstrumented(src Source, logger *slog.Logger) *Instrumented {
	return &Instrumented{src: src, logger: logger}
}

func (s *Instrumented) Capture(ctx context.Context) (*image.RGBA, error) {
	start := time.Now()
	img, err := s.src.Capture(ctx)
	if err != nil {
		s.failures.Add(1)
		return nil, err
	}
	s.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.captures.Add(1)
	seq := s.sequence.Add(1)
	s.latest.Store(&FrameSnapshot{Size: img.Bounds().Size(), CapturedAt: time.Now(), Sequence: seq})
	return img, nil
}

// Latest returns metadata of the most recent successful capture.
func (s *Instrumented) Latest() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *Instrumented) Stats() CaptureStats {
	captures := s.captures.Load()
	var avg time.Duration
	if captures > 0 {
		avg = time.Duration(s.captureNanos.Load() / captures)
	}
	snap := s.Latest()
	return CaptureStats{
		Captures:    captures,
		Failures:    s.failures.Load(),
		AvgCapture:  avg,
		LastCapture: snap.CapturedAt,
		Sequence:    snap.Sequence,
	}
}

// LogStats writes the current counters at debug level.
func (s *Instrumented) LogStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"failures", stats.Failures,
		"avg_capture", stats.AvgCapture,
	)
}
