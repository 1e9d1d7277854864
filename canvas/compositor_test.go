package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopyUnderClipPreservesPixelsOutsideMask exercises spec §4.6/§8.4:
// a whole-surface operator like copy must not erase pixels that sit
// outside the clip's coverage.
func TestCopyUnderClipPreservesPixelsOutsideMask(t *testing.T) {
	c, surf := newTestContext(t, 10, 10)
	require.NoError(t, c.SetFillColor("green"))
	c.FillRect(0, 0, 10, 10)

	// a 4x4 clip square; pixels outside the square (e.g. (8,8)) must
	// survive a copy.
	c.Rect(0, 0, 4, 4)
	c.Clip(NonZero)

	c.SetGlobalCompositeOperation("copy")
	require.NoError(t, c.SetFillColor("red"))
	c.FillRect(0, 0, 10, 10)

	assert.Equal(t, RGBA{R: 255, A: 255}, surf.straightAt(2, 2))
	assert.Equal(t, uint8(255), surf.straightAt(8, 8).G)
}

func TestLerpPremultipliedEndpoints(t *testing.T) {
	a := premultiplied{R: 10, G: 20, B: 30, A: 40}
	b := premultiplied{R: 50, G: 60, B: 70, A: 80}
	assert.Equal(t, a, lerpPremultiplied(a, b, 0))
	assert.Equal(t, b, lerpPremultiplied(a, b, 1))
	mid := lerpPremultiplied(a, b, 0.5)
	assert.InDelta(t, 30, mid.R, 1e-9)
}
