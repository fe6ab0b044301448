package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/soocke/jump-bot-go/config"
	"github.com/soocke/jump-bot-go/domain/capture"
	"github.com/soocke/jump-bot-go/domain/jump"
)

// Report is the JSON document printed by an offline analysis.
type Report struct {
	Image       string           `json:"image"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Piece       *jump.Coordinate `json:"piece,omitempty"`
	Side        string           `json:"side,omitempty"`
	Target      *jump.Coordinate `json:"target,omitempty"`
	Highlighted bool             `json:"highlighted"`
	Distance    float64          `json:"distance"`
	PressMs     int64            `json:"press_ms"`
	Error       string           `json:"error,omitempty"`
	Stage       string           `json:"stage,omitempty"`
}

// Analyze runs one detection on the image at path and writes a Report to w.
// A detection failure is reported in the document and also returned.
func Analyze(ctx context.Context, cfg *config.Config, logger *slog.Logger, path string, w io.Writer) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	frame, err := capture.NewNormalizer(capture.NewFileSource(path), cfg.ReferenceWidth, logger).Capture(ctx)
	if err != nil {
		return err
	}
	defer capture.RecycleFrame(frame)

	rep := Report{Image: path, Width: frame.Bounds().Dx(), Height: frame.Bounds().Dy()}
	res, detectErr := jump.NewDetector(cfg, logger).Detect(jump.FromRGBA(frame))
	if detectErr != nil {
		rep.Error = detectErr.Error()
		var de *jump.DetectionError
		if errors.As(detectErr, &de) {
			rep.Stage = string(de.Stage)
		}
	} else {
		piece, target := res.Piece.Base, res.Target.Center
		rep.Piece = &piece
		rep.Side = res.Piece.Side.String()
		rep.Target = &target
		rep.Highlighted = res.Target.Highlighted
		rep.Distance = res.Distance
		rep.PressMs = res.Press.Milliseconds()
	}

	data, err := sonic.ConfigStd.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return detectErr
}
