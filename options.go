package minabox

import "log/slog"

// Option configures a PositionProvider during creation.
//
// Example:
//
//	// Fractional offsets, package logger
//	p := minabox.NewPositionProvider(items, vp)
//
//	// Whole-pixel offsets
//	p := minabox.NewPositionProvider(items, vp, minabox.WithPixelSnap())
type Option func(*providerOptions)

// providerOptions holds optional configuration for PositionProvider creation.
type providerOptions struct {
	snap   bool
	logger *slog.Logger
}

// defaultOptions returns the default provider options.
func defaultOptions() providerOptions {
	return providerOptions{
		snap:   false,
		logger: nil, // falls back to Logger()
	}
}

// WithPixelSnap quantizes alignment to whole pixels the way a raster
// backend does: item size and available space are truncated to whole
// pixels and the alignment offset is rounded to the nearest pixel.
// Logical positions, padding and scroll offsets are used as given.
func WithPixelSnap() Option {
	return func(o *providerOptions) {
		o.snap = true
	}
}

// WithLogger sets a logger for this provider instead of the package
// logger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *providerOptions) {
		o.logger = l
	}
}
