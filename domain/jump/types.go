package jump

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrPieceNotFound means no apex-coloured pixel was found below the scan start row.
	ErrPieceNotFound = errors.New("piece not found")
	// ErrTargetNotFound means no platform edge was found above the piece.
	ErrTargetNotFound = errors.New("target not found")
)

// Coordinate is a pixel position, origin top-left.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Side is a screen half.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other screen half.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Piece is the player piece; Base sits below the detected apex.
type Piece struct {
	Base Coordinate `json:"base"`
	Side Side       `json:"-"`
}

// Target is the landing point on the next platform. Highlighted is set when
// the centre marker left by a perfect previous landing was found.
type Target struct {
	Center      Coordinate `json:"center"`
	Highlighted bool       `json:"highlighted"`
}

// DetectionResult is the outcome of one successful detection cycle.
type DetectionResult struct {
	Piece    Piece         `json:"piece"`
	Target   Target        `json:"target"`
	Distance float64       `json:"distance"`
	Press    time.Duration `json:"-"`
}

// Stage names the locator that failed.
type Stage string

const (
	StagePiece  Stage = "piece"
	StageTarget Stage = "target"
)

// DetectionError reports a failed scan and the row range it covered.
// It unwraps to ErrPieceNotFound or ErrTargetNotFound.
type DetectionError struct {
	Stage   Stage
	FromRow int
	ToRow   int
	Err     error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("%s detection: %v (rows %d-%d)", e.Stage, e.Err, e.FromRow, e.ToRow)
}

// Unwrap returns the sentinel for errors.Is.
func (e *DetectionError) Unwrap() error { return e.Err }
