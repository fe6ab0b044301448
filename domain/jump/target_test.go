package jump

import (
	"errors"
	"image"
	"testing"

	"github.com/soocke/jump-bot-go/config"
)

var rightPiece = Piece{Base: Coordinate{X: 600, Y: 950}, Side: SideRight}

// platformFrame has a platform top edge on row 720 spanning columns 300-310.
func platformFrame() *image.RGBA {
	img := synthFrame(720, 1000, background)
	fillRect(img, 300, 720, 311, 721, platform)
	return img
}

func TestLocateTarget_HighlightPresent(t *testing.T) {
	cfg := config.DefaultConfig()
	img := platformFrame()
	img.SetRGBA(305, 740, highlight)
	tg, err := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center != (Coordinate{X: 305, Y: 750}) || !tg.Highlighted {
		t.Fatalf("expected highlighted (305,750), got %+v", tg)
	}
}

func TestLocateTarget_HighlightAbsentFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	tg, err := LocateTarget(FromRGBA(platformFrame()), rightPiece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center != (Coordinate{X: 305, Y: 820}) || tg.Highlighted {
		t.Fatalf("expected fallback (305,820), got %+v", tg)
	}
}

func TestLocateTarget_HighlightWindowIsHalfOpen(t *testing.T) {
	cfg := config.DefaultConfig()
	img := platformFrame()
	img.SetRGBA(305, 720+150, highlight)
	tg, _ := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if tg.Highlighted {
		t.Fatalf("highlight 150 rows below must be outside the window")
	}
	img.SetRGBA(305, 720+149, highlight)
	tg, _ = LocateTarget(FromRGBA(img), rightPiece, cfg)
	if !tg.Highlighted || tg.Center.Y != 720+149+10 {
		t.Fatalf("expected highlight at last window row, got %+v", tg)
	}
}

func TestLocateTarget_NearWhiteIsNotHighlight(t *testing.T) {
	cfg := config.DefaultConfig()
	img := platformFrame()
	nearWhite := highlight
	nearWhite.B = 253
	img.SetRGBA(305, 745, nearWhite)
	tg, _ := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if tg.Highlighted {
		t.Fatalf("unexpected highlight %+v", tg)
	}
}

func TestLocateTarget_BaselineDriftTolerated(t *testing.T) {
	cfg := config.DefaultConfig()
	img := platformFrame()
	// one unit of drift on an earlier row must not count as an edge
	drift := background
	drift.R++
	fillRect(img, 100, 710, 200, 711, drift)
	tg, err := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center.X != 305 {
		t.Fatalf("drift treated as edge: %+v", tg)
	}
}

func TestLocateTarget_PieceOnLeftScansRightHalf(t *testing.T) {
	cfg := config.DefaultConfig()
	img := synthFrame(720, 1000, background)
	fillRect(img, 500, 730, 521, 731, platform)
	// decoy on the piece's own half
	fillRect(img, 100, 705, 120, 706, platform)
	piece := Piece{Base: Coordinate{X: 100, Y: 950}, Side: SideLeft}
	tg, err := LocateTarget(FromRGBA(img), piece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// walking right-to-left the edge opens at 520 and closes at 499
	if tg.Center != (Coordinate{X: 509, Y: 830}) {
		t.Fatalf("unexpected target %+v", tg)
	}
}

func TestLocateTarget_EdgeOpenAtMidline(t *testing.T) {
	cfg := config.DefaultConfig()
	img := synthFrame(720, 1000, background)
	fillRect(img, 300, 720, 360, 721, platform)
	tg, err := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center != (Coordinate{X: 300, Y: 820}) {
		t.Fatalf("expected opening column, got %+v", tg)
	}
}

func TestLocateTarget_NoEdge(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := LocateTarget(FromRGBA(synthFrame(720, 1000, background)), rightPiece, cfg)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
	var de *DetectionError
	if !errors.As(err, &de) || de.Stage != StageTarget || de.ToRow != 950 {
		t.Fatalf("unexpected error detail %v", err)
	}
}

func TestLocateTarget_EdgeBelowPieceRowIgnored(t *testing.T) {
	cfg := config.DefaultConfig()
	img := synthFrame(720, 1000, background)
	fillRect(img, 300, 960, 311, 961, platform)
	_, err := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
}

func TestLocateTarget_NearBottomStaysInBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	img := synthFrame(720, 800, background)
	fillRect(img, 300, 790, 311, 791, platform)
	piece := Piece{Base: Coordinate{X: 600, Y: 990}, Side: SideRight}
	tg, err := LocateTarget(FromRGBA(img), piece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center != (Coordinate{X: 305, Y: 890}) {
		t.Fatalf("unexpected target %+v", tg)
	}
}

func TestLocateTarget_PlatformTouchingScreenEdge(t *testing.T) {
	cfg := config.DefaultConfig()
	img := synthFrame(720, 1000, background)
	fillRect(img, 0, 720, 50, 721, platform)
	tg, err := LocateTarget(FromRGBA(img), rightPiece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// baseline comes from column 719, so the platform opens at column 0
	if tg.Center != (Coordinate{X: 25, Y: 820}) {
		t.Fatalf("expected (25,820), got %+v", tg)
	}
}

func TestLocateTarget_PlatformTouchingRightEdge(t *testing.T) {
	cfg := config.DefaultConfig()
	img := synthFrame(720, 1000, background)
	fillRect(img, 680, 730, 720, 731, platform)
	piece := Piece{Base: Coordinate{X: 100, Y: 950}, Side: SideLeft}
	tg, err := LocateTarget(FromRGBA(img), piece, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// opens at 719, closes at 679
	if tg.Center != (Coordinate{X: 699, Y: 830}) {
		t.Fatalf("expected (699,830), got %+v", tg)
	}
}

func TestLocateTarget_SideFollowsBaseColumn(t *testing.T) {
	cfg := config.DefaultConfig()
	// Side left at its zero value; the base column alone picks the half
	tg, err := LocateTarget(FromRGBA(platformFrame()), Piece{Base: Coordinate{X: 600, Y: 950}}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center != (Coordinate{X: 305, Y: 820}) {
		t.Fatalf("expected (305,820), got %+v", tg)
	}
	// a base on the midline counts as left, so the right half is scanned
	img := synthFrame(720, 1000, background)
	fillRect(img, 500, 730, 521, 731, platform)
	tg, err = LocateTarget(FromRGBA(img), Piece{Base: Coordinate{X: 360, Y: 950}, Side: SideRight}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tg.Center != (Coordinate{X: 509, Y: 830}) {
		t.Fatalf("expected (509,830), got %+v", tg)
	}
}
