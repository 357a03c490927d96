package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// AllFormats holds every textual representation of one color, including the
// perceptual spaces that are shown for reference but never copied by number.
type AllFormats struct {
	Hex   string
	RGB   string
	HSL   string
	HSV   string
	CMYK  string
	Lab   string
	LCH   string
	OKLab string
	OKLCH string
}

func (c Color) toColorful() colorful.Color {
	r, g, b := c.normalized()
	return colorful.Color{R: r, G: g, B: b}
}

// Lab returns CIE L*a*b* (D65) with L in [0,100]
func (c Color) Lab() (l, a, b float64) {
	l, a, b = c.toColorful().Lab()
	return l * 100, a * 100, b * 100
}

// LCH returns the cylindrical form of Lab: lightness, chroma, hue degrees
func (c Color) LCH() (l, ch, h float64) {
	h, ch, l = c.toColorful().Hcl()
	return l * 100, ch * 100, h
}

// OKLab returns Björn Ottosson's OKLab coordinates with L in [0,1]
func (c Color) OKLab() (l, a, b float64) {
	lr, lg, lb := c.toColorful().LinearRgb()

	lc := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	mc := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	sc := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, b
}

// OKLCH returns OKLab in cylindrical form
func (c Color) OKLCH() (l, ch, h float64) {
	l, a, b := c.OKLab()
	ch = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, ch, h
}

// All renders c in every supported representation
func (c Color) All() AllFormats {
	l, a, b := c.Lab()
	ll, lc, lh := c.LCH()
	ol, oa, ob := c.OKLab()
	cl, cc, ch := c.OKLCH()

	return AllFormats{
		Hex:   c.Format(FormatHex),
		RGB:   c.Format(FormatRGB),
		HSL:   c.Format(FormatHSL),
		HSV:   c.Format(FormatHSV),
		CMYK:  c.Format(FormatCMYK),
		Lab:   fmt.Sprintf("lab(%.1f, %.1f, %.1f)", l, a, b),
		LCH:   fmt.Sprintf("lch(%.1f, %.1f, %.1f)", ll, lc, lh),
		OKLab: fmt.Sprintf("oklab(%.3f, %.3f, %.3f)", ol, oa, ob),
		OKLCH: fmt.Sprintf("oklch(%.3f, %.3f, %.1f)", cl, cc, ch),
	}
}
