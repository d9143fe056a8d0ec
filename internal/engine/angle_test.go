package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleOf_ClockPositions(t *testing.T) {
	center := Point{X: 100, Y: 100}
	tests := []struct {
		name  string
		point Point
		want  float64
	}{
		{"twelve", Point{X: 100, Y: 50}, 0},
		{"three", Point{X: 150, Y: 100}, 90},
		{"six", Point{X: 100, Y: 150}, 180},
		{"nine", Point{X: 50, Y: 100}, 270},
		{"half past one", Point{X: 150, Y: 50}, 45},
		{"half past ten", Point{X: 50, Y: 50}, 315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleOf(center, tt.point), 1e-9)
		})
	}
}

func TestAngleOf_SeamAtTwelve(t *testing.T) {
	center := Point{}
	justLeft := AngleOf(center, Point{X: -0.001, Y: -10})
	justRight := AngleOf(center, Point{X: 0.001, Y: -10})

	assert.Greater(t, justLeft, 359.9)
	assert.LessOrEqual(t, justLeft, 360.0)
	assert.Less(t, justRight, 0.1)
	assert.GreaterOrEqual(t, justRight, 0.0)
}

func TestAngleOf_AlwaysInRange(t *testing.T) {
	center := Point{X: 3, Y: -7}
	for x := -20.0; x <= 20; x += 0.5 {
		for y := -20.0; y <= 20; y += 0.5 {
			a := AngleOf(center, Point{X: x, Y: y})
			assert.GreaterOrEqual(t, a, 0.0)
			assert.LessOrEqual(t, a, 360.0)
		}
	}
}

func TestAngleForProgress(t *testing.T) {
	assert.Equal(t, 0.0, angleForProgress(-1))
	assert.Equal(t, 180.0, angleForProgress(0.5))
	assert.Equal(t, 360.0, angleForProgress(2))
}
