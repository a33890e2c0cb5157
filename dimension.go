package minabox

import "fmt"

type dimensionKind uint8

const (
	dimensionAbsolute dimensionKind = iota
	dimensionMatchParent
)

// Dimension is an item size specification on one axis. It is resolved to
// pixels against the viewport extent on the same axis every time an offset
// is computed, so fractional sizes follow viewport resizes.
//
// The zero value is Absolute(0).
type Dimension struct {
	kind  dimensionKind
	value float64
}

// Absolute returns a Dimension of px pixels.
func Absolute(px float64) Dimension {
	return Dimension{kind: dimensionAbsolute, value: px}
}

// MatchParent returns a Dimension of fraction times the viewport extent.
// MatchParent(1) fills the viewport.
func MatchParent(fraction float64) Dimension {
	return Dimension{kind: dimensionMatchParent, value: fraction}
}

// Resolve returns the size in pixels for a viewport extent of parent.
func (d Dimension) Resolve(parent float64) float64 {
	if d.kind == dimensionMatchParent {
		return parent * d.value
	}
	return d.value
}

func (d Dimension) String() string {
	if d.kind == dimensionMatchParent {
		return fmt.Sprintf("match-parent(%g)", d.value)
	}
	return fmt.Sprintf("%gpx", d.value)
}
