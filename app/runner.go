package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/jump-bot-go/config"
	"github.com/soocke/jump-bot-go/debug"
	"github.com/soocke/jump-bot-go/domain/action"
	"github.com/soocke/jump-bot-go/domain/capture"
	"github.com/soocke/jump-bot-go/domain/jump"
	"github.com/soocke/jump-bot-go/domain/session"
)

// StatsLogger is implemented by sources that keep capture counters.
type StatsLogger interface{ LogStats() }

// Deps are the collaborators of a Runner. Source and Gesture are required.
type Deps struct {
	Source  capture.Source
	Gesture action.Gesture
	Pacer   *session.Pacer
	Stall   *session.StallGuard
	Dumper  *debug.Dumper
	Stats   StatsLogger
	Sleep   func(context.Context, time.Duration) error
}

// Runner drives the jump cycle: capture, detect, press, then settle or rest.
// Run must not be called concurrently; State and listeners are safe to use
// from other goroutines.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	detector *jump.Detector
	deps     Deps

	mu        sync.Mutex
	state     session.State
	listeners []session.Listener
	jumps     int
}

// NewRunner returns a Runner in the idle state.
func NewRunner(cfg *config.Config, logger *slog.Logger, deps Deps) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if deps.Pacer == nil {
		deps.Pacer = session.NewPacer(cfg, nil)
	}
	if deps.Stall == nil {
		deps.Stall = session.NewStallGuard(cfg.StallHashDistance, cfg.StallFrames)
	}
	if deps.Sleep == nil {
		deps.Sleep = session.Sleep
	}
	return &Runner{
		cfg:      cfg,
		logger:   logger,
		detector: jump.NewDetector(cfg, logger),
		deps:     deps,
		state:    session.StateIdle,
	}
}

// AddListener registers l for state transitions.
func (r *Runner) AddListener(l session.Listener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	r.mu.Unlock()
}

// State returns the current state.
func (r *Runner) State() session.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Jumps returns the number of presses performed so far.
func (r *Runner) Jumps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jumps
}

// Run loops until ctx is cancelled, MaxJumps presses were made, the screen
// stalls, or a capture, press or repeated detection error occurs. A nil
// return means the jump limit was reached.
func (r *Runner) Run(ctx context.Context) error {
	defer r.transition(session.StateHalted)
	if r.deps.Source == nil || r.deps.Gesture == nil {
		return errors.New("app: runner needs a source and a gesture")
	}
	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.detectOnce(ctx)
		if err != nil {
			if !errors.Is(err, jump.ErrPieceNotFound) && !errors.Is(err, jump.ErrTargetNotFound) {
				return err
			}
			failures++
			if r.logger != nil {
				r.logger.Warn("detection failed", "error", err, "consecutive", failures)
			}
			if failures > r.cfg.MaxDetectFailures {
				return err
			}
			if err := r.settle(ctx); err != nil {
				return err
			}
			continue
		}
		failures = 0

		if err := r.press(ctx, res); err != nil {
			return err
		}
		if r.cfg.MaxJumps > 0 && r.Jumps() >= r.cfg.MaxJumps {
			if r.logger != nil {
				r.logger.Info("jump limit reached", "jumps", r.cfg.MaxJumps)
			}
			return nil
		}
		if rest, ok := r.deps.Pacer.Jumped(); ok {
			r.transition(session.StateResting)
			if r.deps.Stats != nil {
				r.deps.Stats.LogStats()
			}
			if r.logger != nil {
				r.logger.Info("resting", "seconds", rest.Seconds(), "jumps", r.Jumps(), "rest", r.deps.Pacer.Rests())
			}
			if err := r.deps.Sleep(ctx, rest); err != nil {
				return err
			}
			// an unchanged screen across a rest is expected
			r.deps.Stall.Reset()
		}
		if err := r.settle(ctx); err != nil {
			return err
		}
	}
}

// detectOnce captures a frame, feeds the stall guard and runs detection.
// The frame is recycled before returning.
func (r *Runner) detectOnce(ctx context.Context) (jump.DetectionResult, error) {
	r.transition(session.StateCapturing)
	frame, err := r.deps.Source.Capture(ctx)
	if err != nil {
		return jump.DetectionResult{}, fmt.Errorf("capture: %w", err)
	}
	defer capture.RecycleFrame(frame)

	stalled, err := r.deps.Stall.Observe(frame)
	if err != nil && r.logger != nil {
		r.logger.Warn("frame hash failed", "error", err)
	}

	r.transition(session.StateDetecting)
	res, detectErr := r.detector.Detect(jump.FromRGBA(frame))
	if r.deps.Dumper != nil {
		if _, err := r.deps.Dumper.Save(frame, res, detectErr); err != nil && r.logger != nil {
			r.logger.Warn("debug frame not saved", "error", err)
		}
	}
	if stalled {
		return jump.DetectionResult{}, session.ErrStalled
	}
	return res, detectErr
}

func (r *Runner) press(ctx context.Context, res jump.DetectionResult) error {
	r.transition(session.StatePressing)
	at := jump.Coordinate{X: r.cfg.PressX, Y: r.cfg.PressY}
	if err := r.deps.Gesture.Press(ctx, at, at, res.Press); err != nil {
		return fmt.Errorf("press: %w", err)
	}
	r.mu.Lock()
	r.jumps++
	n := r.jumps
	r.mu.Unlock()
	if r.logger != nil {
		r.logger.Info("jump",
			"n", n,
			"piece_x", res.Piece.Base.X, "piece_y", res.Piece.Base.Y,
			"target_x", res.Target.Center.X, "target_y", res.Target.Center.Y,
			"distance", res.Distance, "press_ms", res.Press.Milliseconds())
	}
	return nil
}

func (r *Runner) settle(ctx context.Context) error {
	r.transition(session.StateSettling)
	return r.deps.Sleep(ctx, r.deps.Pacer.Settle())
}

func (r *Runner) transition(next session.State) {
	r.mu.Lock()
	prev := r.state
	if prev == next {
		r.mu.Unlock()
		return
	}
	r.state = next
	listeners := append([]session.Listener(nil), r.listeners...)
	r.mu.Unlock()
	if r.logger != nil {
		r.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range listeners {
		l(prev, next)
	}
}
