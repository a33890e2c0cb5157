package minabox

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDiscardHandler_Enabled(t *testing.T) {
	h := discardHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("discardHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestDiscardHandler_Handle(t *testing.T) {
	h := discardHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("discardHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(discardHandler); !ok {
		t.Error("discardHandler.WithAttrs() did not return discardHandler")
	}
	if _, ok := h.WithGroup("group").(discardHandler); !ok {
		t.Error("discardHandler.WithGroup() did not return discardHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ResolveOffset(Items{}, exampleViewport, 42, Placement{}, Offset{})
	if out := buf.String(); !strings.Contains(out, "unregistered item") || !strings.Contains(out, "index=42") {
		t.Errorf("log output = %q, want unregistered item with index=42", out)
	}

	buf.Reset()
	s := NewStore()
	_ = s.Put(3, Item{})
	if out := buf.String(); !strings.Contains(out, "item registered") {
		t.Errorf("log output = %q, want item registered", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
	if Logger() != silent {
		t.Error("SetLogger(nil) should reuse the shared silent logger")
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				SetLogger(nil)
			}
		}()
		go func() {
			defer wg.Done()
			ResolveOffset(Items{}, exampleViewport, i, Placement{}, Offset{})
		}()
	}
	wg.Wait()
}
