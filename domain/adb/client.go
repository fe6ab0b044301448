// Package adb drives a device through the adb command line tool.
package adb

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Runner executes name with args and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client issues adb commands against one device. An empty serial lets adb
// pick the only connected device.
type Client struct {
	path   string
	serial string
	logger *slog.Logger

	// Run executes the adb binary. Tests replace it.
	Run Runner
}

// NewClient returns a Client that shells out to the adb binary at path.
func NewClient(path, serial string, logger *slog.Logger) *Client {
	if path == "" {
		path = "adb"
	}
	return &Client{path: path, serial: serial, logger: logger, Run: execRunner}
}

// Serial returns the device serial, possibly empty.
func (c *Client) Serial() string { return c.serial }

func (c *Client) args(args ...string) []string {
	if c.serial == "" {
		return args
	}
	return append([]string{"-s", c.serial}, args...)
}

// Exec runs an adb subcommand and returns raw stdout.
func (c *Client) Exec(ctx context.Context, args ...string) ([]byte, error) {
	full := c.args(args...)
	if c.logger != nil {
		c.logger.Debug("adb", "args", strings.Join(full, " "))
	}
	out, err := c.Run(ctx, c.path, full...)
	if err != nil {
		return nil, fmt.Errorf("adb %s: %w", args[0], err)
	}
	return out, nil
}

// Shell runs a command through `adb shell`.
func (c *Client) Shell(ctx context.Context, cmd ...string) ([]byte, error) {
	return c.Exec(ctx, append([]string{"shell"}, cmd...)...)
}

// Screencap returns a PNG of the current screen via `exec-out`, which keeps
// the stream binary-safe.
func (c *Client) Screencap(ctx context.Context) ([]byte, error) {
	out, err := c.Exec(ctx, "exec-out", "screencap", "-p")
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("adb exec-out: empty screencap")
	}
	return out, nil
}

// ScreencapTo writes a PNG screenshot to remote on the device.
func (c *Client) ScreencapTo(ctx context.Context, remote string) error {
	_, err := c.Shell(ctx, "screencap", "-p", remote)
	return err
}

// Pull copies remote from the device to local.
func (c *Client) Pull(ctx context.Context, remote, local string) error {
	_, err := c.Exec(ctx, "pull", remote, local)
	return err
}

// Swipe injects a swipe from (x1,y1) to (x2,y2) lasting d. Equal end points
// make it a long press.
func (c *Client) Swipe(ctx context.Context, x1, y1, x2, y2 int, d time.Duration) error {
	_, err := c.Shell(ctx, "input", "swipe",
		strconv.Itoa(x1), strconv.Itoa(y1),
		strconv.Itoa(x2), strconv.Itoa(y2),
		strconv.FormatInt(d.Milliseconds(), 10))
	return err
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
