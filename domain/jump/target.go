package jump

import "github.com/soocke/jump-bot-go/config"

// LocateTarget finds the landing point on the platform opposite the piece.
// The half to scan follows from piece.Base alone; piece.Side is not consulted.
//
// Phase A walks each row from the screen edge toward the midline and looks
// for the first run of pixels that differ from the row's edge colour; the
// run's midpoint and row give a provisional point. Phase B looks below that
// point for the highlight marker and falls back to a fixed offset.
func LocateTarget(img Image, piece Piece, cfg *config.Config) (Target, error) {
	last := min(piece.Base.Y, img.Height())
	edge, ok := findPlatformEdge(img, sideOf(piece.Base, img.Width()).Opposite(), cfg, last)
	if !ok {
		return Target{}, &DetectionError{Stage: StageTarget, FromRow: max(cfg.ScanStartRow, 0), ToRow: last, Err: ErrTargetNotFound}
	}
	return refineCenter(img, edge, cfg), nil
}

// sideOf reports the half holding p; the midline column counts as left.
func sideOf(p Coordinate, w int) Side {
	if p.X > w/2 {
		return SideRight
	}
	return SideLeft
}

// columns is a half-open column walk: start, start+step, ... excluding stop.
// baseline is the outermost column of the other half, which holds background.
type columns struct{ start, stop, step, baseline int }

// platformColumns walks the given half from its outer edge to the midline.
func platformColumns(w int, side Side) columns {
	if side == SideLeft {
		return columns{start: 0, stop: w / 2, step: 1, baseline: w - 1}
	}
	return columns{start: w - 1, stop: w / 2, step: -1, baseline: 0}
}

func (c columns) empty() bool { return c.start == c.stop }

func findPlatformEdge(img Image, side Side, cfg *config.Config, lastRow int) (Coordinate, bool) {
	cols := platformColumns(img.Width(), side)
	if cols.empty() {
		return Coordinate{}, false
	}
	for y := max(cfg.ScanStartRow, 0); y < lastRow; y++ {
		if c, ok := scanEdgeRow(img, cols, y, cfg.BaselineTolerance); ok {
			return c, true
		}
	}
	return Coordinate{}, false
}

// scanEdgeRow compares each pixel with the baseline pixel of the row, taken
// from the piece's screen edge so a platform touching the scanned edge still
// registers. The first pixel off the baseline opens the edge, the next one
// back on it closes it. An edge still open at the midline reports its
// opening column.
func scanEdgeRow(img Image, cols columns, y, tol int) (Coordinate, bool) {
	br, bg, bb := img.RGB(cols.baseline, y)
	start, open := 0, false
	for x := cols.start; x != cols.stop; x += cols.step {
		r, g, b := img.RGB(x, y)
		same := near(r, br, tol) && near(g, bg, tol) && near(b, bb, tol)
		switch {
		case !open && !same:
			start, open = x, true
		case open && same:
			return Coordinate{X: (start + x) / 2, Y: y}, true
		}
	}
	if open {
		return Coordinate{X: start, Y: y}, true
	}
	return Coordinate{}, false
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func refineCenter(img Image, edge Coordinate, cfg *config.Config) Target {
	if y, ok := findHighlight(img, edge, cfg); ok {
		return Target{Center: Coordinate{X: edge.X, Y: y + cfg.HighlightOffset}, Highlighted: true}
	}
	return Target{Center: Coordinate{X: edge.X, Y: edge.Y + cfg.FallbackOffset}}
}

// findHighlight scans the edge column downward for an exact highlight pixel.
func findHighlight(img Image, from Coordinate, cfg *config.Config) (int, bool) {
	hc := cfg.HighlightColor
	last := min(from.Y+cfg.HighlightSearchRows, img.Height())
	for y := from.Y; y < last; y++ {
		if r, g, b := img.RGB(from.X, y); r == hc.R && g == hc.G && b == hc.B {
			return y, true
		}
	}
	return 0, false
}
