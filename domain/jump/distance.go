package jump

import "math"

// Distance is the Euclidean distance between two pixels.
func Distance(a, b Coordinate) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
