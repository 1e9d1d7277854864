package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeOutlineZeroWidthProducesNothing(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	out := StrokeOutline(p, LineState{Width: 0}, Identity())
	assert.Nil(t, out)
}

func TestStrokeOutlineHorizontalLineHasExpectedHeight(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	out := StrokeOutline(p, LineState{Width: 4, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}, Identity())
	require.Len(t, out, 1)
	minY, maxY := out[0].points[0].Y, out[0].points[0].Y
	for _, pt := range out[0].points {
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	assert.InDelta(t, 4.0, maxY-minY, 1e-6)
}

func TestStrokeOutlineRectProducesOuterAndInnerLoop(t *testing.T) {
	p := NewPath()
	p.Rect(0, 0, 20, 20)
	out := StrokeOutline(p, LineState{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}, Identity())
	assert.Len(t, out, 2)
}

func TestStrokePointInsideStrokeBand(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	line := LineState{Width: 10, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}
	ctm := Identity()
	assert.True(t, isPointInStroke(p, line, ctm, 50, 0))
	assert.False(t, isPointInStroke(p, line, ctm, 50, 20))
}

func TestApplyDashSplitsIntoSegments(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	segs := applyDash(pts, false, []float64{2, 2}, 0)
	assert.Greater(t, len(segs), 1)
}

func TestNormalizeDashPatternDoublesOddLength(t *testing.T) {
	out := normalizeDashPattern([]float64{5, 3, 2})
	assert.Equal(t, []float64{5, 3, 2, 5, 3, 2}, out)
}

func TestNormalizeDashPatternAllZeroIsNil(t *testing.T) {
	assert.Nil(t, normalizeDashPattern([]float64{0, 0}))
}
