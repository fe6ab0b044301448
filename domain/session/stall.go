package session

import (
	"image"

	"github.com/corona10/goimagehash"
)

// StallGuard tracks perceptual hashes of consecutive frames and reports a
// stall once limit consecutive frames each stayed within maxDistance of
// the one before. A limit of 0 disables it.
type StallGuard struct {
	maxDistance int
	limit       int
	last        *goimagehash.ImageHash
	repeats     int
}

// NewStallGuard returns a guard; see StallGuard.
func NewStallGuard(maxDistance, limit int) *StallGuard {
	return &StallGuard{maxDistance: maxDistance, limit: limit}
}

// Observe hashes img and reports whether the stall limit is reached.
func (g *StallGuard) Observe(img image.Image) (bool, error) {
	if g == nil || g.limit <= 0 {
		return false, nil
	}
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return false, err
	}
	if g.last != nil {
		d, err := g.last.Distance(hash)
		if err != nil {
			return false, err
		}
		if d <= g.maxDistance {
			g.repeats++
		} else {
			g.repeats = 0
		}
	}
	g.last = hash
	return g.repeats >= g.limit, nil
}

// Reset forgets the previous frame.
func (g *StallGuard) Reset() {
	if g == nil {
		return
	}
	g.last = nil
	g.repeats = 0
}
