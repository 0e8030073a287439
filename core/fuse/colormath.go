// Package fuse merges raw color and font signals into resolved palettes
// and font sets. Clustering and ranking are heuristic: colors are
// grouped by RGB distance and ranked by vibrancy, not by a perceptual
// color model.
package fuse

import (
	"fmt"
	"math"
	"strings"
)

// HexToRGB parses "#RRGGBB" into channel values. Reports ok=false for
// anything that is not a 6-digit hex color.
func HexToRGB(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, false
	}
	return rv, gv, bv, true
}

// RGBToHex formats channel values as an uppercase "#RRGGBB" string.
// Channels are clamped to [0, 255].
func RGBToHex(r, g, b int) string {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

// ExpandShortHex doubles each nibble of a 3-digit hex color: "#F80"
// becomes "#FF8800". 6-digit input is returned uppercased unchanged.
func ExpandShortHex(hex string) string {
	h := strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(h) == 3 {
		h = strings.Repeat(string(h[0]), 2) + strings.Repeat(string(h[1]), 2) + strings.Repeat(string(h[2]), 2)
	}
	return "#" + h
}

// Vibrancy is the saturation proxy used for ranking: (max-min)/max over
// normalized RGB channels. 0 for grays, approaching 1 for pure hues.
func Vibrancy(hex string) float64 {
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		return 0
	}
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	if maxC == 0 {
		return 0
	}
	return (maxC - minC) / maxC
}

// HexToHSL converts "#RRGGBB" to hue [0,360), saturation [0,1],
// lightness [0,1].
func HexToHSL(hex string) (h, s, l float64) {
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		return 0, 0, 0
	}
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	l = (maxC + minC) / 2

	if maxC == minC {
		return 0, 0, l
	}

	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	switch maxC {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	return h * 60, s, l
}

// HSLToHex converts hue [0,360), saturation [0,1], lightness [0,1] to
// an uppercase hex color via the standard HSL to RGB formula.
func HSLToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	r := int(math.Round((r1 + m) * 255))
	g := int(math.Round((g1 + m) * 255))
	b := int(math.Round((b1 + m) * 255))
	return RGBToHex(r, g, b)
}

// Distance is the Euclidean distance between two colors in RGB space.
// Returns +Inf when either color fails to parse.
func Distance(hexA, hexB string) float64 {
	ra, ga, ba, okA := HexToRGB(hexA)
	rb, gb, bb, okB := HexToRGB(hexB)
	if !okA || !okB {
		return math.Inf(1)
	}
	dr, dg, db := float64(ra-rb), float64(ga-gb), float64(ba-bb)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
