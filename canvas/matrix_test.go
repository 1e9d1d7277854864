package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixIdentityTransform(t *testing.T) {
	m := Identity()
	x, y := m.Transform(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestMatrixTranslateThenScale(t *testing.T) {
	// translate(10,0) then scale(2,2): scale should apply in the already
	// translated space, matching ctx.translate(10,0); ctx.scale(2,2).
	m := Identity()
	m = Translation(10, 0).Multiply(m)
	m = Scaling(2, 2).Multiply(m)
	x, y := m.Transform(1, 1)
	assert.InDelta(t, 12.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Rotation(0.7).Translate(5, -3).Scale(2, 3)
	inv, ok := m.Invert()
	assert.True(t, ok)
	x, y := m.Transform(11, -4)
	ix, iy := inv.Transform(x, y)
	assert.InDelta(t, 11.0, ix, 1e-9)
	assert.InDelta(t, -4.0, iy, 1e-9)
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Scaling(0, 1)
	_, ok := m.Invert()
	assert.False(t, ok)
}

func TestMatrixTransformDistanceIgnoresTranslation(t *testing.T) {
	m := Translation(100, 200)
	dx, dy := m.TransformDistance(3, 4)
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, 4.0, dy)
}

func TestMatrixRotationQuarterTurn(t *testing.T) {
	m := Rotation(math.Pi / 2)
	x, y := m.Transform(1, 0)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 1.0, y, 1e-9)
}
