package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(x0, y0, x1, y1 float64) []flatSubpath {
	return []flatSubpath{{
		points: []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}},
		closed: true,
	}}
}

func TestRasterizeFullyCoveredInteriorPixel(t *testing.T) {
	sp := square(0, 0, 10, 10)
	cov := Rasterize(sp, NonZero, Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	assert.InDelta(t, 1.0, cov.At(5, 5), 1e-6)
}

func TestRasterizeOutsideShapeIsZero(t *testing.T) {
	sp := square(0, 0, 10, 10)
	cov := Rasterize(sp, NonZero, Rect{X0: 0, Y0: 0, X1: 20, Y1: 20})
	assert.Equal(t, float32(0), cov.At(15, 15))
}

func TestRasterizeEdgePixelIsPartialCoverage(t *testing.T) {
	sp := square(0, 0, 10.5, 10)
	cov := Rasterize(sp, NonZero, Rect{X0: 0, Y0: 0, X1: 12, Y1: 12})
	v := cov.At(10, 5)
	assert.Greater(t, float64(v), 0.0)
	assert.Less(t, float64(v), 1.0)
}

func TestEvenOddDonutHole(t *testing.T) {
	outer := flatSubpath{points: []Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}, closed: true}
	inner := flatSubpath{points: []Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}, closed: true}
	cov := Rasterize([]flatSubpath{outer, inner}, EvenOdd, Rect{X0: 0, Y0: 0, X1: 20, Y1: 20})
	assert.InDelta(t, 1.0, cov.At(2, 2), 1e-6)
	assert.InDelta(t, 0.0, cov.At(10, 10), 1e-6)
}

func TestNonZeroTwoSameWindingSquaresUnion(t *testing.T) {
	a := flatSubpath{points: []Point{{X: 0, Y: 0}, {X: 15, Y: 0}, {X: 15, Y: 15}, {X: 0, Y: 15}}, closed: true}
	b := flatSubpath{points: []Point{{X: 5, Y: 5}, {X: 20, Y: 5}, {X: 20, Y: 20}, {X: 5, Y: 20}}, closed: true}
	cov := Rasterize([]flatSubpath{a, b}, NonZero, Rect{X0: 0, Y0: 0, X1: 20, Y1: 20})
	assert.InDelta(t, 1.0, cov.At(10, 10), 1e-6)
}

func TestPointInsideBasicSquare(t *testing.T) {
	sp := square(0, 0, 10, 10)
	assert.True(t, PointInside(sp, NonZero, 5, 5))
	assert.False(t, PointInside(sp, NonZero, 15, 15))
}

func TestPointInsideEvenOddHole(t *testing.T) {
	outer := flatSubpath{points: []Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}, closed: true}
	inner := flatSubpath{points: []Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}, closed: true}
	subpaths := []flatSubpath{outer, inner}
	assert.False(t, PointInside(subpaths, EvenOdd, 10, 10))
	assert.True(t, PointInside(subpaths, EvenOdd, 2, 2))
}
