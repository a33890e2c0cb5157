package minabox

import (
	"log/slog"

	"github.com/gogpu/minabox/internal/pixel"
)

// Viewport describes the visible area items are aligned in.
type Viewport struct {
	Size      Size
	Direction LayoutDirection
}

// Placement configures how an item is aligned when its offset is resolved.
// The zero value centers the item with no padding.
type Placement struct {
	Alignment Alignment
	Padding   Padding
}

// DefaultPlacement returns the centered, unpadded placement.
func DefaultPlacement() Placement {
	return Placement{}
}

// ResolveOffset returns the offset for the item at index.
//
// For an unlocked axis the result is the logical position minus the
// alignment offset and the leading padding, so a centered item with no
// padding lands in the middle of the viewport. For a locked axis the
// result is the current scroll offset on that axis.
//
// Unregistered indices, including any index of a nil registry, resolve to
// the zero Offset. Padding larger than the viewport is not clamped; the
// result is then off-screen but still well defined.
func ResolveOffset(items Registry, vp Viewport, index int, pl Placement, current Offset) Offset {
	return resolve(items, vp, index, pl, current, false, Logger())
}

func resolve(items Registry, vp Viewport, index int, pl Placement, current Offset, snap bool, log *slog.Logger) Offset {
	if items == nil {
		return Offset{}
	}
	it, ok := items.Lookup(index)
	if !ok {
		log.Debug("minabox: offset of unregistered item", "index", index)
		return Offset{}
	}

	size := it.Size(vp.Size)
	space := vp.Size.Shrink(pl.Padding)
	if snap {
		size = Size{Width: pixel.Trunc(size.Width), Height: pixel.Trunc(size.Height)}
		space = Size{Width: pixel.Trunc(space.Width), Height: pixel.Trunc(space.Height)}
	}
	align := pl.Alignment.Align(size, space, vp.Direction)
	if snap {
		align = Offset{X: pixel.Round(align.X), Y: pixel.Round(align.Y)}
	}

	out := Offset{
		X: it.X - align.X - pl.Padding.Start,
		Y: it.Y - align.Y - pl.Padding.Top,
	}
	if it.LockHorizontally {
		out.X = current.X
	}
	if it.LockVertically {
		out.Y = current.Y
	}
	return out
}

// PositionProvider resolves item offsets against a fixed registry and
// viewport. It holds no mutable state and is safe for concurrent use as
// long as the registry is not mutated during a call.
type PositionProvider struct {
	items    Registry
	viewport Viewport
	opts     providerOptions
}

// NewPositionProvider creates a provider for items laid out in vp.
func NewPositionProvider(items Registry, vp Viewport, opts ...Option) *PositionProvider {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PositionProvider{items: items, viewport: vp, opts: o}
}

// Viewport returns the viewport the provider aligns items in.
func (p *PositionProvider) Viewport() Viewport {
	return p.viewport
}

// Offset returns the offset of the item at index with a zero scroll
// position. Locked axes therefore resolve to zero.
func (p *PositionProvider) Offset(index int, pl Placement) Offset {
	return p.OffsetAt(index, pl, Offset{})
}

// OffsetAt returns the offset of the item at index given the current
// scroll position. See ResolveOffset.
func (p *PositionProvider) OffsetAt(index int, pl Placement, current Offset) Offset {
	return resolve(p.items, p.viewport, index, pl, current, p.opts.snap, p.logger())
}

func (p *PositionProvider) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}
