package jump

import (
	"log/slog"

	"github.com/soocke/jump-bot-go/config"
)

// Detector runs piece and target location on one frame and derives the
// press duration. It holds no per-frame state; Detect may be called from
// any goroutine.
type Detector struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewDetector returns a Detector. If cfg is nil the default configuration is used.
func NewDetector(cfg *config.Config, logger *slog.Logger) *Detector {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Detector{cfg: cfg, logger: logger}
}

// Detect locates the piece and target in img. On failure the error wraps
// ErrPieceNotFound or ErrTargetNotFound and no duration is computed.
func (d *Detector) Detect(img Image) (DetectionResult, error) {
	piece, err := LocatePiece(img, d.cfg)
	if err != nil {
		return DetectionResult{}, err
	}
	target, err := LocateTarget(img, piece, d.cfg)
	if err != nil {
		if d.logger != nil {
			d.logger.Debug("target scan failed", "piece_x", piece.Base.X, "piece_y", piece.Base.Y, "side", piece.Side.String())
		}
		return DetectionResult{}, err
	}
	dist := Distance(piece.Base, target.Center)
	res := DetectionResult{
		Piece:    piece,
		Target:   target,
		Distance: dist,
		Press:    PressDuration(dist, d.cfg),
	}
	if d.logger != nil {
		d.logger.Debug("detection",
			"piece_x", piece.Base.X, "piece_y", piece.Base.Y,
			"target_x", target.Center.X, "target_y", target.Center.Y,
			"highlighted", target.Highlighted,
			"distance", dist, "press_ms", res.Press.Milliseconds())
	}
	return res, nil
}
