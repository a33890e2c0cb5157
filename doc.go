// Package minabox resolves where items of a virtualized 2D layout are
// aligned inside a viewport.
//
// # Overview
//
// A host registers items under stable integer indices with a logical
// position and a size specification. Once per frame it asks a
// PositionProvider for the offset of each visible index. The offset
// honors an Alignment inside the padded viewport, mirrors start and end
// for right-to-left layouts, and pins locked axes to the current scroll
// position so header rows and columns stay visible.
//
// # Quick Start
//
//	import "github.com/gogpu/minabox"
//
//	items := minabox.NewItems(1000, func(i int) minabox.Item {
//	    return minabox.Item{
//	        X:      float64(i%10) * 80,
//	        Y:      float64(i/10) * 24,
//	        Width:  minabox.Absolute(80),
//	        Height: minabox.Absolute(24),
//	        LockVertically: i < 10, // header row
//	    }
//	})
//
//	vp := minabox.Viewport{Size: minabox.Sz(800, 600), Direction: minabox.LTR}
//	p := minabox.NewPositionProvider(items, vp)
//	off := p.OffsetAt(42, minabox.Placement{Alignment: minabox.TopStart}, scroll)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the content
//   - X increases right, Y increases down
//   - Start and End padding follow the layout direction
//
// # Failure Model
//
// Resolution never fails. Unknown indices resolve to the zero Offset and
// padding larger than the viewport produces off-screen but well-defined
// offsets.
package minabox

// Version is the current version of the library.
const Version = "0.1.0"
