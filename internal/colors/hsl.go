// Package colors provides deterministic hex/HSL conversion and color-scale generation.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL is a color in hue (0-360), saturation (0-100) and lightness (0-100)
type HSL struct {
	H float64
	S float64
	L float64
}

// RGB is an 8-bit color
type RGB struct {
	R, G, B int
}

// NormalizeHex converts #rgb, #rrggbb and #rrggbbaa forms to uppercase #RRGGBB.
// The second return value is false when s is not a hex color.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	switch len(s) {
	case 3, 4:
		var sb strings.Builder
		for _, c := range s[:3] {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		s = sb.String()
	case 6:
	case 8:
		s = s[:6]
	default:
		return "", false
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", false
	}
	return "#" + strings.ToUpper(s), true
}

// HexToRGB parses a hex color. Invalid input yields black.
func HexToRGB(hex string) RGB {
	norm, ok := NormalizeHex(hex)
	if !ok {
		return RGB{}
	}
	v, _ := strconv.ParseUint(norm[1:], 16, 32)
	return RGB{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}
}

// RGBToHex formats 8-bit channels as uppercase #RRGGBB, clamping out-of-range values
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

// HexToHSL converts a hex color to HSL
func HexToHSL(hex string) HSL {
	c := HexToRGB(hex)
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to an uppercase hex color
func HSLToHex(c HSL) string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGBToHex(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	r := hueToRGB(p, q, hk+1.0/3)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3)

	return RGBToHex(int(math.Round(r*255)), int(math.Round(g*255)), int(math.Round(b*255)))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
