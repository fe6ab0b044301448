package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/soocke/jump-bot-go/domain/adb"
)

// ADBSource captures device screenshots over adb. It streams PNG bytes via
// exec-out and, if that fails once, switches for good to writing the
// screenshot on the device and pulling it into a temp directory.
type ADBSource struct {
	client *adb.Client
	remote string
	logger *slog.Logger

	mu      sync.Mutex
	usePull bool
	tempDir string
}

// NewADBSource returns a Source using client. remote is the on-device path
// used by the pull fallback.
func NewADBSource(client *adb.Client, remote string, logger *slog.Logger) *ADBSource {
	return &ADBSource{client: client, remote: remote, logger: logger}
}

func (s *ADBSource) Capture(ctx context.Context) (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.usePull {
		img, err := s.captureStream(ctx)
		if err == nil {
			return img, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if s.logger != nil {
			s.logger.Warn("exec-out screencap failed; switching to pull", "error", err)
		}
		s.usePull = true
	}
	return s.capturePulled(ctx)
}

func (s *ADBSource) captureStream(ctx context.Context) (*image.RGBA, error) {
	data, err := s.client.Screencap(ctx)
	if err != nil {
		return nil, err
	}
	return decodeFrame(bytes.NewReader(data))
}

func (s *ADBSource) capturePulled(ctx context.Context) (*image.RGBA, error) {
	if s.tempDir == "" {
		dir, err := os.MkdirTemp("", "jump-bot-screencap-*")
		if err != nil {
			return nil, fmt.Errorf("capture: temp dir: %w", err)
		}
		s.tempDir = dir
	}
	if err := s.client.ScreencapTo(ctx, s.remote); err != nil {
		return nil, err
	}
	local := filepath.Join(s.tempDir, filepath.Base(s.remote))
	if err := s.client.Pull(ctx, s.remote, local); err != nil {
		return nil, err
	}
	f, err := os.Open(local)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeFrame(f)
}

// Close removes the local temp directory used by the pull fallback.
func (s *ADBSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tempDir == "" {
		return nil
	}
	err := os.RemoveAll(s.tempDir)
	s.tempDir = ""
	return err
}
