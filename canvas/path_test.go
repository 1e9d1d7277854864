package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathRectProducesClosedSubpath(t *testing.T) {
	p := NewPath()
	p.Rect(0, 0, 10, 20)
	require.Len(t, p.subpaths, 1)
	assert.True(t, p.subpaths[0].closed)
}

func TestPathCloseThenMoveStartsNewSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.ClosePath()
	require.Len(t, p.subpaths, 2)
	assert.True(t, p.subpaths[0].closed)
	assert.False(t, p.subpaths[1].closed)
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	clone := p.Clone()
	p.LineTo(9, 9)
	require.Len(t, clone.subpaths[0].segments, 2)
	require.Len(t, p.subpaths[0].segments, 3)
}

func TestPathNonFiniteMoveToIsIgnored(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.MoveTo(nan(), 0)
	require.Len(t, p.subpaths, 1)
	assert.Equal(t, 1.0, p.currentX)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestPathLineToWithoutCurrentPointStartsSubpath(t *testing.T) {
	p := NewPath()
	p.LineTo(3, 4)
	require.Len(t, p.subpaths, 1)
	assert.True(t, p.hasCurrentPoint)
}

func TestFlattenLineSubpathIsIdentityUnderIdentityTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	flat := flattenPath(p, Identity())
	require.Len(t, flat, 1)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, flat[0].points)
}

func TestFlattenQuadraticProducesMultiplePoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticCurveTo(50, 100, 100, 0)
	flat := flattenPath(p, Identity())
	assert.Greater(t, len(flat[0].points), 2)
}

func TestArcToDegeneratesToLineWhenCollinear(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(10, 0, 20, 0, 5)
	require.Len(t, p.subpaths[0].segments, 2)
	_, ok := p.subpaths[0].segments[1].(lineToSeg)
	assert.True(t, ok)
}
