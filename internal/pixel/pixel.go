// Package pixel quantizes floating-point layout values to whole device pixels.
//
// Rounding goes through 26.6 fixed point, the representation used by the
// font rasterizers, so snapped layout offsets agree with snapped glyph
// origins.
package pixel

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// maxFixed is the largest magnitude that fits in a fixed.Int26_6.
const maxFixed = 1 << 25

// ToFixed converts v to 26.6 fixed point, rounding down to a multiple of
// 1/64. Values outside the representable range saturate.
func ToFixed(v float64) fixed.Int26_6 {
	switch {
	case v >= maxFixed:
		return fixed.Int26_6(math.MaxInt32)
	case v <= -maxFixed:
		return fixed.Int26_6(math.MinInt32)
	}
	return fixed.Int26_6(math.Floor(v * 64))
}

// Round rounds v to the nearest whole pixel, halves toward positive
// infinity, giving floor(v + 0.5).
//
// ToFixed floors, so fixed.Int26_6.Round is the only rounding step:
// floor((floor(64v) + 32) / 64) equals floor(v + 0.5).
func Round(v float64) float64 {
	if math.Abs(v) >= maxFixed-1 || math.IsNaN(v) {
		return math.Floor(v + 0.5)
	}
	return float64(ToFixed(v).Round())
}

// Trunc drops the fractional part of v.
func Trunc(v float64) float64 {
	return math.Trunc(v)
}
