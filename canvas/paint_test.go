package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateLinearGradientEndpoints(t *testing.T) {
	g := &LinearGradientPaint{P0: Point{X: 0, Y: 0}, P1: Point{X: 100, Y: 0}}
	g.AddColorStop(0, RGBA{R: 255, A: 255})
	g.AddColorStop(1, RGBA{B: 255, A: 255})

	start := EvaluatePaint(g, 0, 0, Identity())
	mid := EvaluatePaint(g, 50, 0, Identity())
	end := EvaluatePaint(g, 100, 0, Identity())

	assert.Equal(t, uint8(255), start.R)
	assert.Equal(t, uint8(255), end.B)
	assert.Greater(t, int(mid.R), 0)
	assert.Greater(t, int(mid.B), 0)
}

func TestEvaluateLinearGradientClampsOutsideRange(t *testing.T) {
	g := &LinearGradientPaint{P0: Point{X: 0, Y: 0}, P1: Point{X: 10, Y: 0}}
	g.AddColorStop(0, RGBA{R: 255, A: 255})
	g.AddColorStop(1, RGBA{G: 255, A: 255})

	before := EvaluatePaint(g, -50, 0, Identity())
	after := EvaluatePaint(g, 500, 0, Identity())
	assert.Equal(t, uint8(255), before.R)
	assert.Equal(t, uint8(255), after.G)
}

func TestEvaluateRadialConcentricGrowingCircle(t *testing.T) {
	g := &RadialGradientPaint{C0: Point{X: 0, Y: 0}, R0: 0, C1: Point{X: 0, Y: 0}, R1: 10}
	g.AddColorStop(0, RGBA{R: 255, A: 255})
	g.AddColorStop(1, RGBA{A: 0})

	center := EvaluatePaint(g, 0, 0, Identity())
	edge := EvaluatePaint(g, 10, 0, Identity())
	outside := EvaluatePaint(g, 20, 0, Identity())

	assert.Equal(t, uint8(255), center.R)
	assert.Equal(t, uint8(0), edge.A)
	assert.Equal(t, Transparent, outside)
}

func TestEvaluateConicSweepsFullCircle(t *testing.T) {
	g := &ConicGradientPaint{Center: Point{X: 0, Y: 0}, StartAngle: 0}
	g.AddColorStop(0, RGBA{R: 255, A: 255})
	g.AddColorStop(1, RGBA{B: 255, A: 255})

	atStart := EvaluatePaint(g, 1, 0, Identity())
	assert.Equal(t, uint8(255), atStart.R)
}

func TestEvaluatePatternRepeatWraps(t *testing.T) {
	img := NewImageData(2, 2)
	img.Data[0*4+0] = 255 // (0,0) red
	pat := &PatternPaint{Image: img, Repeat: RepeatBoth, Transform: Identity()}
	c := EvaluatePaint(pat, 2, 0, Identity())
	assert.Equal(t, uint8(255), c.R)
}

func TestEvaluatePatternNoRepeatTransparentOutside(t *testing.T) {
	img := NewImageData(2, 2)
	pat := &PatternPaint{Image: img, Repeat: RepeatNone, Transform: Identity()}
	c := EvaluatePaint(pat, 10, 10, Identity())
	assert.Equal(t, Transparent, c)
}
