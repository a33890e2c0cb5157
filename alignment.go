package minabox

import "fmt"

// Alignment positions an item inside the padded viewport. Horizontal and
// Vertical are biases in [-1, 1]: -1 is the start (top) edge, 0 the center
// and 1 the end (bottom) edge. Values outside the range are accepted and
// extrapolate linearly.
//
// A relative alignment mirrors Horizontal under RTL so that start follows
// the reading direction. An Absolute alignment never mirrors: -1 is always
// the left edge.
//
// The zero value is Center.
type Alignment struct {
	Horizontal float64
	Vertical   float64
	Absolute   bool
}

// Relative alignments. These are shared values; do not reassign them.
// Default behavior never reads them: the zero Alignment is centered on
// its own.
var (
	TopStart     = Alignment{Horizontal: -1, Vertical: -1}
	TopCenter    = Alignment{Horizontal: 0, Vertical: -1}
	TopEnd       = Alignment{Horizontal: 1, Vertical: -1}
	CenterStart  = Alignment{Horizontal: -1, Vertical: 0}
	Center       = Alignment{}
	CenterEnd    = Alignment{Horizontal: 1, Vertical: 0}
	BottomStart  = Alignment{Horizontal: -1, Vertical: 1}
	BottomCenter = Alignment{Horizontal: 0, Vertical: 1}
	BottomEnd    = Alignment{Horizontal: 1, Vertical: 1}
)

// Absolute alignments. Like the relative presets, do not reassign them.
var (
	AbsoluteTopLeft     = Alignment{Horizontal: -1, Vertical: -1, Absolute: true}
	AbsoluteTopRight    = Alignment{Horizontal: 1, Vertical: -1, Absolute: true}
	AbsoluteCenterLeft  = Alignment{Horizontal: -1, Vertical: 0, Absolute: true}
	AbsoluteCenterRight = Alignment{Horizontal: 1, Vertical: 0, Absolute: true}
	AbsoluteBottomLeft  = Alignment{Horizontal: -1, Vertical: 1, Absolute: true}
	AbsoluteBottomRight = Alignment{Horizontal: 1, Vertical: 1, Absolute: true}
)

// Bias returns a relative alignment with the given biases.
func Bias(horizontal, vertical float64) Alignment {
	return Alignment{Horizontal: horizontal, Vertical: vertical}
}

// AbsoluteBias returns an alignment with the given biases that ignores the
// layout direction.
func AbsoluteBias(horizontal, vertical float64) Alignment {
	return Alignment{Horizontal: horizontal, Vertical: vertical, Absolute: true}
}

// Align returns the offset of an item of size inside space.
// The horizontal bias is negated under RTL unless a is Absolute.
func (a Alignment) Align(size, space Size, dir LayoutDirection) Offset {
	centerX := (space.Width - size.Width) / 2
	centerY := (space.Height - size.Height) / 2
	h := a.Horizontal
	if dir == RTL && !a.Absolute {
		h = -h
	}
	return Offset{
		X: centerX * (1 + h),
		Y: centerY * (1 + a.Vertical),
	}
}

func (a Alignment) String() string {
	if a.Absolute {
		return fmt.Sprintf("absolute(%g, %g)", a.Horizontal, a.Vertical)
	}
	return fmt.Sprintf("bias(%g, %g)", a.Horizontal, a.Vertical)
}
