package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soocke/jump-bot-go/app"
	"github.com/soocke/jump-bot-go/config"
	"github.com/soocke/jump-bot-go/debug"
	"github.com/soocke/jump-bot-go/domain/session"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "jump-bot:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath    = flag.String("config", "config.json", "path to the JSON config file")
		imagePath  = flag.String("image", "", "analyse a single screenshot, print a JSON report and exit")
		dryRun     = flag.Bool("dry-run", false, "log presses instead of performing them")
		debugFlag  = flag.Bool("debug", false, "debug logging and annotated frame dumps")
		serial     = flag.String("serial", "", "adb device serial")
		source     = flag.String("source", "", "frame source: adb, screen or file")
		maxJumps   = flag.Int("max-jumps", 0, "stop after this many jumps (0 = unlimited)")
		saveConfig = flag.Bool("save-config", false, "write the effective config to -config and exit")
	)
	flag.Parse()

	// Base config from file; missing file yields defaults
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("config %s: %w", *cfgPath, err)
	}
	// Only flags set explicitly override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "serial":
			cfg.DeviceSerial = *serial
		case "source":
			cfg.Source = *source
		case "max-jumps":
			cfg.MaxJumps = *maxJumps
		}
	})
	_ = cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(os.Stderr, level)

	if *saveConfig {
		if err := cfg.Save(*cfgPath); err != nil {
			return err
		}
		logger.Info("config saved", "path", *cfgPath)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *imagePath != "" {
		return app.Analyze(ctx, cfg, logger, *imagePath, os.Stdout)
	}

	if cfg.Debug {
		debug.StartRuntimeLogger(ctx, 10*time.Second, logger)
	}

	c, err := app.BuildContainer(cfg, logger, app.Options{DryRun: *dryRun})
	if err != nil {
		return err
	}
	defer c.Close()

	logger.Info("session started", "source", cfg.Source, "serial", cfg.DeviceSerial, "dry_run", *dryRun)
	err = c.Runner.Run(ctx)
	logger.Info("session ended", "jumps", c.Runner.Jumps(), "error", err)
	if errors.Is(err, session.ErrStalled) {
		// game over screen; not a failure of the bot
		return nil
	}
	return err
}
