package jump

import "github.com/soocke/jump-bot-go/config"

// LocatePiece finds the piece base. Rows are scanned downward from
// cfg.ScanStartRow; within a row columns are visited from the midline
// outward, left mirror before right, and the first pixel inside
// cfg.PieceBand wins.
func LocatePiece(img Image, cfg *config.Config) (Piece, error) {
	h := img.Height()
	from := max(cfg.ScanStartRow, 0)
	for y := from; y < h; y++ {
		if p, ok := scanPieceRow(img, cfg, y); ok {
			return p, nil
		}
	}
	return Piece{}, &DetectionError{Stage: StagePiece, FromRow: from, ToRow: h, Err: ErrPieceNotFound}
}

var pieceSides = [...]Side{SideLeft, SideRight}

func scanPieceRow(img Image, cfg *config.Config, y int) (Piece, bool) {
	w := img.Width()
	for x := w / 2; x < w; x++ {
		for _, side := range pieceSides {
			col := side.mirror(w, x)
			if col < 0 || col >= w {
				continue
			}
			if r, g, b := img.RGB(col, y); cfg.PieceBand.Contains(r, g, b) {
				return Piece{
					Base: Coordinate{X: col + side.outward()*cfg.PieceHalfWidth, Y: y + cfg.PieceBaseOffset},
					Side: side,
				}, true
			}
		}
	}
	return Piece{}, false
}

// mirror maps the outward offset x (w/2 <= x < w) to a column on side s.
func (s Side) mirror(w, x int) int {
	if s == SideLeft {
		return w - x
	}
	return x
}

// outward is the x direction pointing away from the midline.
func (s Side) outward() int {
	if s == SideLeft {
		return -1
	}
	return 1
}
