package minabox

import "fmt"

// Offset is a 2D translation in pixels.
type Offset struct {
	X, Y float64
}

// Off is a convenience function to create an Offset.
func Off(x, y float64) Offset {
	return Offset{X: x, Y: y}
}

// Add returns the sum of two offsets.
func (o Offset) Add(q Offset) Offset {
	return Offset{X: o.X + q.X, Y: o.Y + q.Y}
}

// Sub returns the difference of two offsets.
func (o Offset) Sub(q Offset) Offset {
	return Offset{X: o.X - q.X, Y: o.Y - q.Y}
}

// IsZero reports whether both components are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

func (o Offset) String() string {
	return fmt.Sprintf("(%g, %g)", o.X, o.Y)
}

// Size is a width and height in pixels. Negative values are allowed and
// arise when padding exceeds the viewport.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Shrink returns the size reduced by the padding on each side.
// The result is not clamped at zero.
func (s Size) Shrink(p Padding) Size {
	return Size{
		Width:  s.Width - p.Start - p.End,
		Height: s.Height - p.Top - p.Bottom,
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Padding is extra space on each edge of the viewport. Start and End are
// relative to the layout direction.
type Padding struct {
	Start, Top, End, Bottom float64
}

// UniformPadding returns a Padding with v on every edge.
func UniformPadding(v float64) Padding {
	return Padding{Start: v, Top: v, End: v, Bottom: v}
}
