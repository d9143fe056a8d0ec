// Package engine implements the timer interaction and progress-state core:
// drag angles become snapped durations, the selected timer counts down once
// per tick, and the timer list keeps its selection valid across edits.
package engine

import "math"

// Point is a position in screen coordinates: x grows to the right, y grows
// downward.
type Point struct {
	X, Y float64
}

// AngleOf returns the clock angle of point around center in degrees: 0 at
// twelve o'clock, increasing clockwise, within [0,360].
func AngleOf(center, point Point) float64 {
	raw := math.Atan2(point.Y-center.Y, point.X-center.X) * 180 / math.Pi
	var angle float64
	if raw < -90 {
		angle = raw + 450
	} else {
		angle = raw + 90
	}
	return math.Min(math.Max(angle, 0), 360)
}

// angleForProgress maps a remaining fraction onto the dial.
func angleForProgress(p float64) float64 {
	return math.Min(math.Max(p, 0), 1) * 360
}
