package minabox

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// LayoutDirection selects which physical side Start and End refer to.
type LayoutDirection uint8

const (
	// LTR places Start on the left edge.
	LTR LayoutDirection = iota
	// RTL places Start on the right edge.
	RTL
)

// String returns "ltr" or "rtl".
func (d LayoutDirection) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// TextDirection returns the shaping direction matching d.
func (d LayoutDirection) TextDirection() di.Direction {
	if d == RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// DirectionFromText converts a shaping direction to a layout direction.
// Vertical directions have no horizontal mirroring and map to LTR.
func DirectionFromText(d di.Direction) LayoutDirection {
	if d == di.DirectionRTL {
		return RTL
	}
	return LTR
}

// rtlScripts lists the ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
}

// DirectionForLocale returns the layout direction conventionally used for
// tag. The script is inferred when the tag does not name one, so "ar",
// "fa" and "he" are RTL while "az-Arab" and "az-Latn" differ.
func DirectionForLocale(tag language.Tag) LayoutDirection {
	script, conf := tag.Script()
	if conf == language.No {
		return LTR
	}
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// DirectionOfText returns the direction of the first strong character in s.
// Text without strong characters (digits, punctuation, empty) is LTR.
func DirectionOfText(s string) LayoutDirection {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
	}
	return LTR
}
