package colors

import "math"

// Thresholds for discarding colors that are almost never intentional brand colors
const (
	// grayChannelSpread is the max-min channel spread under which a color reads as gray
	grayChannelSpread = 20
	// nearBlackSum and nearWhiteSum bound the total channel sum of usable colors
	nearBlackSum = 30
	nearWhiteSum = 735
)

// IsNeutral reports whether hex is near-black, near-white or near-gray
func IsNeutral(hex string) bool {
	c := HexToRGB(hex)
	sum := c.R + c.G + c.B
	if sum < nearBlackSum || sum > nearWhiteSum {
		return true
	}
	spread := max(c.R, c.G, c.B) - min(c.R, c.G, c.B)
	return spread < grayChannelSpread
}

// RelativeLuminance returns the WCAG relative luminance of a hex color
func RelativeLuminance(hex string) float64 {
	c := HexToRGB(hex)
	lin := func(v int) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors (1-21)
func ContrastRatio(a, b string) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ReadableTextOn returns white or near-black, whichever contrasts better with bg
func ReadableTextOn(bg string) string {
	if ContrastRatio(bg, "#FFFFFF") >= ContrastRatio(bg, "#111111") {
		return "#FFFFFF"
	}
	return "#111111"
}
