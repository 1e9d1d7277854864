package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, w, h int) (*Context, *Surface) {
	surf, err := NewSurface(w, h)
	require.NoError(t, err)
	return NewContext(surf), surf
}

func TestFillRectOpaqueSolidColor(t *testing.T) {
	c, surf := newTestContext(t, 20, 20)
	require.NoError(t, c.SetFillColor("red"))
	c.FillRect(0, 0, 20, 20)
	px := surf.straightAt(10, 10)
	assert.Equal(t, RGBA{R: 255, A: 255}, px)
}

func TestClearRectRestoresTransparency(t *testing.T) {
	c, surf := newTestContext(t, 10, 10)
	require.NoError(t, c.SetFillColor("blue"))
	c.FillRect(0, 0, 10, 10)
	c.ClearRect(2, 2, 4, 4)
	assert.Equal(t, Transparent, surf.straightAt(3, 3))
	assert.Equal(t, uint8(255), surf.straightAt(0, 0).B)
}

func TestSaveRestorePreservesFillStyle(t *testing.T) {
	c, surf := newTestContext(t, 10, 10)
	require.NoError(t, c.SetFillColor("green"))
	c.Save()
	require.NoError(t, c.SetFillColor("red"))
	c.Restore()
	c.FillRect(0, 0, 10, 10)
	assert.Equal(t, uint8(128), surf.straightAt(5, 5).G)
}

func TestClipRestrictsSubsequentFill(t *testing.T) {
	c, surf := newTestContext(t, 20, 20)
	c.Rect(0, 0, 5, 5)
	c.Clip(NonZero)
	require.NoError(t, c.SetFillColor("white"))
	c.FillRect(0, 0, 20, 20)
	assert.Equal(t, uint8(255), surf.straightAt(2, 2).R)
	assert.Equal(t, Transparent, surf.straightAt(15, 15))
}

func TestClipIsUndoneByRestore(t *testing.T) {
	c, surf := newTestContext(t, 20, 20)
	c.Save()
	c.Rect(0, 0, 5, 5)
	c.Clip(NonZero)
	c.Restore()
	require.NoError(t, c.SetFillColor("white"))
	c.FillRect(0, 0, 20, 20)
	assert.Equal(t, uint8(255), surf.straightAt(15, 15).R)
}

func TestGlobalAlphaScalesCoverage(t *testing.T) {
	c, surf := newTestContext(t, 10, 10)
	c.SetGlobalAlpha(0.5)
	require.NoError(t, c.SetFillColor("black"))
	c.FillRect(0, 0, 10, 10)
	assert.InDelta(t, 127, int(surf.straightAt(5, 5).A), 2)
}

func TestCopyOperatorReplacesDestination(t *testing.T) {
	c, surf := newTestContext(t, 10, 10)
	require.NoError(t, c.SetFillColor("red"))
	c.FillRect(0, 0, 10, 10)
	c.SetGlobalCompositeOperation("copy")
	require.NoError(t, c.SetFillColor("blue"))
	c.FillRect(2, 2, 3, 3)
	assert.Equal(t, Transparent, surf.straightAt(0, 0))
	assert.Equal(t, uint8(255), surf.straightAt(3, 3).B)
}

func TestUnsupportedCompositeOperationFallsBackSilently(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	before := c.gs().CompositeOp
	c.SetGlobalCompositeOperation("not-a-real-operator")
	assert.Equal(t, before, c.gs().CompositeOp)
}

func TestTransformAffectsFillGeometry(t *testing.T) {
	c, surf := newTestContext(t, 20, 20)
	c.Translate(10, 10)
	require.NoError(t, c.SetFillColor("red"))
	c.FillRect(0, 0, 5, 5)
	assert.Equal(t, uint8(255), surf.straightAt(12, 12).R)
	assert.Equal(t, Transparent, surf.straightAt(2, 2))
}

func TestSetTransformRejectsNonFiniteComponents(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	c.Translate(3, 4)
	before := c.GetTransform()
	c.SetTransform(1, 0, 0, 1, nan(), 0)
	assert.Equal(t, before, c.GetTransform())
}

func TestIsPointInPathRespectsFillRule(t *testing.T) {
	c, _ := newTestContext(t, 20, 20)
	c.Rect(0, 0, 20, 20)
	c.MoveTo(5, 5)
	c.LineTo(15, 5)
	c.LineTo(15, 15)
	c.LineTo(5, 15)
	c.ClosePath()
	assert.False(t, c.IsPointInPath(10, 10, EvenOdd))
	assert.True(t, c.IsPointInPath(10, 10, NonZero))
}

func TestIsPointInStrokeFollowsLineWidth(t *testing.T) {
	c, _ := newTestContext(t, 100, 100)
	c.MoveTo(0, 50)
	c.LineTo(100, 50)
	c.SetLineWidth(10)
	assert.True(t, c.IsPointInStroke(50, 50))
	assert.False(t, c.IsPointInStroke(50, 80))
}
