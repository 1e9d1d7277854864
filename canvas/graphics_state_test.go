package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStackRestoreOnSingleStateIsNoOp(t *testing.T) {
	s := newStateStack()
	s.Restore()
	assert.Equal(t, 1, s.Depth())
}

func TestStateStackSaveRestoreRoundTrip(t *testing.T) {
	s := newStateStack()
	s.Current().GlobalAlpha = 0.5
	s.Save()
	s.Current().GlobalAlpha = 0.1
	assert.Equal(t, 2, s.Depth())
	s.Restore()
	assert.Equal(t, 0.5, s.Current().GlobalAlpha)
	assert.Equal(t, 1, s.Depth())
}

func TestStateStackSaveBeyondMaxDepthIsNoOp(t *testing.T) {
	s := newStateStack()
	for i := 0; i < maxStackDepth+10; i++ {
		s.Save()
	}
	assert.Equal(t, maxStackDepth, s.Depth())
}

func TestStateStackCloneSharesClipPointer(t *testing.T) {
	s := newStateStack()
	mask := &ClipMask{width: 1, height: 1, data: []float32{1}}
	s.Current().Clip = mask
	s.Save()
	assert.Same(t, mask, s.Current().Clip)
}
