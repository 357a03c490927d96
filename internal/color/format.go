package color

import (
	"fmt"
	"strings"
)

// Format is one of the textual representations a Color can be copied as
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
	FormatHSV
	FormatCMYK
)

// Formats is the display and quick-copy order
var Formats = []Format{FormatHex, FormatRGB, FormatHSL, FormatHSV, FormatCMYK}

var formatLabels = map[Format]string{
	FormatHex:  "HEX",
	FormatRGB:  "RGB",
	FormatHSL:  "HSL",
	FormatHSV:  "HSV",
	FormatCMYK: "CMYK",
}

func (f Format) String() string {
	if label, ok := formatLabels[f]; ok {
		return label
	}
	return "UNKNOWN"
}

// ParseFormat resolves a config value such as "hex" or "CMYK"
func ParseFormat(name string) (Format, bool) {
	name = strings.TrimSpace(name)
	for _, f := range Formats {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return FormatHex, false
}

// Format renders c in the requested representation
func (c Color) Format(f Format) string {
	switch f {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatHSL:
		h, s, l := c.HSL()
		return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
	case FormatHSV:
		h, s, v := c.HSV()
		return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", h, s*100, v*100)
	case FormatCMYK:
		cy, m, y, k := c.CMYK()
		return fmt.Sprintf("cmyk(%.0f%%, %.0f%%, %.0f%%, %.0f%%)", cy*100, m*100, y*100, k*100)
	default:
		return c.Hex()
	}
}
