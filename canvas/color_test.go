package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorHexShort(t *testing.T) {
	c, err := ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 255, G: 0, B: 0, A: 255}, c)
}

func TestParseColorHexWithAlpha(t *testing.T) {
	c, err := ParseColor("#00ff0080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(255), c.G)
	assert.Equal(t, uint8(0x80), c.A)
}

func TestParseColorRGBFunctional(t *testing.T) {
	c, err := ParseColor("rgb(255, 128, 0)")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestParseColorRGBAPercentAlpha(t *testing.T) {
	c, err := ParseColor("rgba(0, 0, 0, 50%)")
	require.NoError(t, err)
	assert.InDelta(t, 128, int(c.A), 2)
}

func TestParseColorHSL(t *testing.T) {
	c, err := ParseColor("hsl(0, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)
}

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("cornflowerblue")
	require.NoError(t, err)
	assert.Equal(t, uint8(100), c.R)
	assert.Equal(t, uint8(149), c.G)
	assert.Equal(t, uint8(237), c.B)
}

func TestParseColorTransparentKeyword(t *testing.T) {
	c, err := ParseColor("transparent")
	require.NoError(t, err)
	assert.Equal(t, Transparent, c)
}

func TestParseColorMalformedReturnsError(t *testing.T) {
	_, err := ParseColor("not-a-color")
	assert.Error(t, err)
	var target *ColorParseError
	assert.ErrorAs(t, err, &target)
}
