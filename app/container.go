package app

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/soocke/jump-bot-go/config"
	"github.com/soocke/jump-bot-go/debug"
	"github.com/soocke/jump-bot-go/domain/action"
	"github.com/soocke/jump-bot-go/domain/adb"
	"github.com/soocke/jump-bot-go/domain/capture"
	"github.com/soocke/jump-bot-go/domain/jump"
	"github.com/soocke/jump-bot-go/domain/session"
)

// Options adjust container wiring beyond the config file.
type Options struct {
	DryRun bool
}

// Container assembles the capture source, gesture and runner for one session.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	ADB     *adb.Client // nil unless Source is "adb"
	Source  capture.Source
	Stats   *capture.Instrumented
	Gesture action.Gesture
	Runner  *Runner

	closers []io.Closer
}

// BuildContainer constructs all components. It does not touch the device;
// the first adb command runs on the first capture.
func BuildContainer(cfg *config.Config, logger *slog.Logger, opts Options) (*Container, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Container{Config: cfg, Logger: logger}

	var raw capture.Source
	switch cfg.Source {
	case "adb":
		c.ADB = adb.NewClient(cfg.ADBPath, cfg.DeviceSerial, logger)
		src := capture.NewADBSource(c.ADB, cfg.RemotePath, logger)
		c.closers = append(c.closers, src)
		raw = src
		c.Gesture = action.NewADBGesture(c.ADB)
	case "screen":
		sel := image.Rect(cfg.SelectionX, cfg.SelectionY, cfg.SelectionX+cfg.SelectionW, cfg.SelectionY+cfg.SelectionH)
		raw = capture.NewScreenSource(sel)
		c.Gesture = action.NewMouseGesture(jump.Coordinate{X: cfg.SelectionX, Y: cfg.SelectionY})
	case "file":
		if cfg.ImagePath == "" {
			return nil, errors.New("app: file source needs image_path")
		}
		raw = capture.NewFileSource(cfg.ImagePath)
		// nothing to press on a still image
		c.Gesture = action.NewDryRun(logger)
	default:
		return nil, fmt.Errorf("app: unknown source %q", cfg.Source)
	}
	if opts.DryRun {
		c.Gesture = action.NewDryRun(logger)
	}

	c.Stats = capture.NewInstrumented(capture.NewNormalizer(raw, cfg.ReferenceWidth, logger), logger)
	c.Source = c.Stats

	deps := Deps{
		Source:  c.Source,
		Gesture: c.Gesture,
		Pacer:   session.NewPacer(cfg, nil),
		Stall:   session.NewStallGuard(cfg.StallHashDistance, cfg.StallFrames),
		Stats:   c.Stats,
	}
	if cfg.Debug {
		deps.Dumper = debug.NewDumper(cfg.DebugDir, cfg.ScanStartRow, logger)
	}
	c.Runner = NewRunner(cfg, logger, deps)
	return c, nil
}

// Close releases resources held by the sources.
func (c *Container) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
