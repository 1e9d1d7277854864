package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilClipMaskIsEverywhereOne(t *testing.T) {
	var m *ClipMask
	assert.Equal(t, 1.0, m.At(5, 5))
}

func TestClipMaskIntersectNarrowsCoverage(t *testing.T) {
	var m *ClipMask
	cov := Rasterize(square(2, 2, 6, 6), NonZero, Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	m2 := m.Intersect(10, 10, cov)
	assert.InDelta(t, 1.0, m2.At(3, 3), 1e-6)
	assert.Equal(t, 0.0, m2.At(8, 8))
}

func TestClipMaskIntersectDoesNotMutateOriginal(t *testing.T) {
	cov1 := Rasterize(square(0, 0, 10, 10), NonZero, Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	base := (*ClipMask)(nil).Intersect(10, 10, cov1)

	cov2 := Rasterize(square(0, 0, 2, 2), NonZero, Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	narrowed := base.Intersect(10, 10, cov2)

	assert.InDelta(t, 1.0, base.At(9, 9), 1e-6)
	assert.Equal(t, 0.0, narrowed.At(9, 9))
}

func TestClipMaskBoundsOfNilIsFullSurface(t *testing.T) {
	var m *ClipMask
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 100, Y1: 50}, m.Bounds(100, 50))
}
