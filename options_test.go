package minabox

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.snap {
		t.Error("default options snap = true, want false")
	}
	if o.logger != nil {
		t.Error("default options logger should be nil")
	}
	if got := DefaultPlacement(); got != (Placement{}) {
		t.Errorf("DefaultPlacement() = %+v, want zero Placement", got)
	}
}

func TestDefaultPlacement_IgnoresPresets(t *testing.T) {
	orig := Center
	t.Cleanup(func() { Center = orig })
	Center = BottomEnd

	if got := DefaultPlacement(); got != (Placement{}) {
		t.Errorf("DefaultPlacement() = %+v after reassigning Center, want zero Placement", got)
	}
	got := ResolveOffset(exampleItems(), exampleViewport, 5, DefaultPlacement(), Offset{})
	if want := Off(10, 5); got != want {
		t.Errorf("default placement offset = %v, want %v", got, want)
	}
}

func TestWithPixelSnap(t *testing.T) {
	p := NewPositionProvider(nil, Viewport{}, WithPixelSnap())
	if !p.opts.snap {
		t.Error("WithPixelSnap() did not enable snapping")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewPositionProvider(Items{}, exampleViewport, WithLogger(l))
	p.Offset(11, Placement{})
	if !strings.Contains(buf.String(), "index=11") {
		t.Errorf("provider logger output = %q, want index=11", buf.String())
	}

	// A nil logger keeps the package logger.
	p = NewPositionProvider(Items{}, exampleViewport, WithLogger(nil))
	if p.logger() != Logger() {
		t.Error("WithLogger(nil) should fall back to the package logger")
	}
}
