package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	points := []Point{{0, 0}, {10, 10}, {50, 50}, {100, 0}, {33.3, 71.9}}
	for _, a := range points {
		assert.Zero(t, Distance(a, a))
		for _, b := range points {
			assert.Equal(t, Distance(a, b), Distance(b, a))
		}
	}

	assert.InDelta(t, 5.0, Distance(Point{0, 0}, Point{3, 4}), 1e-12)
	assert.InDelta(t, 40*math.Sqrt2, Distance(Point{10, 10}, Point{50, 50}), 1e-9)
}

func TestWithin(t *testing.T) {
	home := Point{10, 10}
	assert.True(t, Within(home, Point{10, 10}, 30))
	assert.True(t, Within(home, Point{40, 10}, 30))
	assert.False(t, Within(home, Point{50, 50}, 30))
}
