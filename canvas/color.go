package canvas

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a straight (non-premultiplied) 8-bit color, spec §3 Surface /
// §4.4 Solid paint.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black, the zero value's semantic name.
var Transparent = RGBA{}

func clampByte(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(f))
}

// ParseColor accepts the CSS color grammar named in spec §6: the 147
// named colors (via golang.org/x/image/colornames), #RGB, #RRGGBB,
// #RRGGBBAA, rgb()/rgba(), hsl()/hsla(), and "transparent". A malformed
// string returns ColorParseError and the caller must leave its prior
// paint untouched (spec §7).
func ParseColor(s string) (RGBA, error) {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)

	if lower == "transparent" {
		return Transparent, nil
	}

	if strings.HasPrefix(t, "#") {
		return parseHexColor(t)
	}

	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseFunctionalRGB(t, lower)
	}

	if strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla(") {
		return parseFunctionalHSL(t, lower)
	}

	if c, ok := colornames.Map[lower]; ok {
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	return RGBA{}, &ColorParseError{Input: s}
}

func parseHexColor(s string) (RGBA, error) {
	hex := s[1:]
	expand := func(c byte) (byte, byte) { return c, c }

	parseByte := func(hi, lo byte) (uint8, bool) {
		v, err := strconv.ParseUint(string([]byte{hi, lo}), 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}

	switch len(hex) {
	case 3, 4:
		r1, r2 := expand(hex[0])
		g1, g2 := expand(hex[1])
		b1, b2 := expand(hex[2])
		r, ok1 := parseByte(r1, r2)
		g, ok2 := parseByte(g1, g2)
		b, ok3 := parseByte(b1, b2)
		a := uint8(255)
		ok4 := true
		if len(hex) == 4 {
			a1, a2 := expand(hex[3])
			a, ok4 = parseByte(a1, a2)
		}
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return RGBA{}, &ColorParseError{Input: s}
		}
		return RGBA{R: r, G: g, B: b, A: a}, nil
	case 6, 8:
		r, ok1 := parseByte(hex[0], hex[1])
		g, ok2 := parseByte(hex[2], hex[3])
		b, ok3 := parseByte(hex[4], hex[5])
		a := uint8(255)
		ok4 := true
		if len(hex) == 8 {
			a, ok4 = parseByte(hex[6], hex[7])
		}
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return RGBA{}, &ColorParseError{Input: s}
		}
		return RGBA{R: r, G: g, B: b, A: a}, nil
	default:
		return RGBA{}, &ColorParseError{Input: s}
	}
}

func splitArgs(t, lower, prefix string) ([]string, bool) {
	if !strings.HasSuffix(t, ")") {
		return nil, false
	}
	inner := t[len(prefix) : len(t)-1]
	inner = strings.ReplaceAll(inner, "/", ",")
	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 0 {
		return nil, false
	}
	return parts, true
}

func parseComponent(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, false
		}
		return v / 100 * 255, true
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseAlphaComponent(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, false
		}
		return v / 100, true
	}
	return strconv.ParseFloat(tok, 64)
}

func parseFunctionalRGB(t, lower string) (RGBA, error) {
	prefix := "rgb("
	if strings.HasPrefix(lower, "rgba(") {
		prefix = "rgba("
	}
	parts, ok := splitArgs(t, lower, prefix)
	if !ok || (len(parts) != 3 && len(parts) != 4) {
		return RGBA{}, &ColorParseError{Input: t}
	}
	r, ok1 := parseComponent(parts[0])
	g, ok2 := parseComponent(parts[1])
	b, ok3 := parseComponent(parts[2])
	a := 1.0
	ok4 := true
	if len(parts) == 4 {
		a, ok4 = parseAlphaComponent(parts[3])
	}
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return RGBA{}, &ColorParseError{Input: t}
	}
	return RGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(a * 255)}, nil
}

func parseFunctionalHSL(t, lower string) (RGBA, error) {
	prefix := "hsl("
	if strings.HasPrefix(lower, "hsla(") {
		prefix = "hsla("
	}
	parts, ok := splitArgs(t, lower, prefix)
	if !ok || (len(parts) != 3 && len(parts) != 4) {
		return RGBA{}, &ColorParseError{Input: t}
	}
	hStr := strings.TrimSuffix(strings.TrimSpace(parts[0]), "deg")
	h, err := strconv.ParseFloat(hStr, 64)
	if err != nil {
		return RGBA{}, &ColorParseError{Input: t}
	}
	s, ok1 := parsePercent(parts[1])
	l, ok2 := parsePercent(parts[2])
	a := 1.0
	ok3 := true
	if len(parts) == 4 {
		a, ok3 = parseAlphaComponent(parts[3])
	}
	if !ok1 || !ok2 || !ok3 {
		return RGBA{}, &ColorParseError{Input: t}
	}
	r, g, b := hslToRGB(h, s, l)
	return RGBA{R: clampByte(r * 255), G: clampByte(g * 255), B: clampByte(b * 255), A: clampByte(a * 255)}, nil
}

func parsePercent(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if !strings.HasSuffix(tok, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v / 100, true
}

// hslToRGB follows the standard CSS Color Module algorithm; h is in
// degrees, s and l in [0,1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	m := l - c/2
	return r1 + m, g1 + m, b1 + m
}

// ToColorColor adapts RGBA to image/color.NRGBA for stdlib interop,
// e.g. copying a rendered Surface into a Go image for PNG encoding.
func (c RGBA) ToColorColor() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
