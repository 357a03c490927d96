package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB triple. The zero value is black.
type Color struct {
	R, G, B uint8
}

// ParseError reports malformed color text or hex strings
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "invalid color: " + e.Reason
	}
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// FromRGB builds a Color from its channels
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex accepts "#RRGGBB", "RRGGBB" or the short form "#RGB"/"RGB",
// where each short digit is doubled.
func FromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6:
	default:
		return Color{}, &ParseError{Input: s, Reason: "hex color must have 3 or 6 digits"}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: s, Reason: "invalid hex digit"}
		}
		ch[i] = uint8(v)
	}
	return FromRGB(ch[0], ch[1], ch[2]), nil
}

// FromHSL converts hue in degrees (any real value, wrapped into [0,360))
// and saturation/lightness in [0,1].
func FromHSL(h, s, l float64) Color {
	c := (1 - math.Abs(2*l-1)) * s
	m := l - c/2
	return fromChroma(h, c, m)
}

// FromHSV converts hue in degrees and saturation/value in [0,1].
func FromHSV(h, s, v float64) Color {
	c := v * s
	m := v - c
	return fromChroma(h, c, m)
}

// fromChroma picks the hue sector, offsets by m and truncates to 8 bits.
func fromChroma(h, c, m float64) Color {
	h = normalizeHue(h)
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return FromRGB(toChannel(r+m), toChannel(g+m), toChannel(b+m))
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// toChannel scales a normalized value to 8 bits. Values are clamped, then
// truncated; there is no rounding.
func toChannel(v float64) uint8 {
	v *= 255
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// RGB returns the raw channels
func (c Color) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// Hex returns "#RRGGBB" in uppercase
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// hue computes the hue in degrees from whichever channel holds hi.
func hue(r, g, b, hi, delta float64) float64 {
	var h float64
	switch hi {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h
}

// HSL returns hue in degrees, saturation and lightness in [0,1].
// Achromatic colors report hue and saturation as 0.
func (c Color) HSL() (h, s, l float64) {
	r, g, b := c.normalized()
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	delta := hi - lo

	l = (hi + lo) / 2
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (hi + lo)
	} else {
		s = delta / (2 - hi - lo)
	}
	return hue(r, g, b, hi, delta), s, l
}

// HSV returns hue in degrees, saturation and value in [0,1].
func (c Color) HSV() (h, s, v float64) {
	r, g, b := c.normalized()
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	delta := hi - lo

	v = hi
	if delta == 0 {
		return 0, 0, v
	}
	return hue(r, g, b, hi, delta), delta / hi, v
}

// CMYK returns the four components in [0,1]. Pure black is exactly (0,0,0,1).
func (c Color) CMYK() (cy, m, y, k float64) {
	r, g, b := c.normalized()
	k = 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return 0, 0, 0, 1
	}

	cy = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return cy, m, y, k
}
