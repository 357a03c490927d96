package color

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads free-form color text. Grammars are tried in order:
// hex, rgb(...), hsl(...), then CSS color keywords. A hex-looking string
// that fails validation is an error and is not retried against the other
// grammars.
func Parse(text string) (Color, error) {
	input := strings.TrimSpace(text)
	lower := strings.ToLower(input)

	if looksLikeHex(input) {
		return FromHex(input)
	}

	if inner, ok := functional(lower, "rgb"); ok {
		if c, ok := parseRGB(inner); ok {
			return c, nil
		}
	}

	if inner, ok := functional(lower, "hsl"); ok {
		if c, ok := parseHSL(inner); ok {
			return c, nil
		}
	}

	if hex, ok := LookupName(lower); ok {
		return FromHex(hex)
	}

	return Color{}, &ParseError{Input: text, Reason: "unrecognized color format"}
}

// looksLikeHex matches "#" strings of length 7 or 4, and bare strings of
// 6 or 3 hex digits.
func looksLikeHex(s string) bool {
	if strings.HasPrefix(s, "#") {
		return len(s) == 7 || len(s) == 4
	}
	if len(s) != 6 && len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// functional returns the text between "name(" and the closing ")".
func functional(s, name string) (string, bool) {
	prefix := name + "("
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return s[len(prefix) : len(s)-1], true
}

func fields(inner string, trim string) []string {
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(strings.TrimSpace(p), trim)
	}
	return parts
}

func parseRGB(inner string) (Color, bool) {
	parts := fields(inner, "")
	if len(parts) != 3 {
		return Color{}, false
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}
	return FromRGB(ch[0], ch[1], ch[2]), true
}

func parseHSL(inner string) (Color, bool) {
	parts := fields(inner, "%")
	if len(parts) != 3 {
		return Color{}, false
	}

	var v [3]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !isDecimal(p) {
			return Color{}, false
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Color{}, false
		}
		v[i] = f
	}
	return FromHSL(v[0], v[1]/100, v[2]/100), true
}

// isDecimal rejects the Go-only float syntax ParseFloat would otherwise
// accept: digit separators, hex mantissas, inf and nan.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return false
		}
	}
	return true
}
