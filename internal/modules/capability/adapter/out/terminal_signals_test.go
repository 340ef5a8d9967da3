package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
)

func newTestSignals(t *testing.T, opts TerminalOptions, env map[string]string) *TerminalSignals {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	s := NewTerminalSignals(f, opts)
	s.getenv = func(k string) string { return env[k] }
	s.isTTY = func(uintptr) bool { return true }
	s.profile = func() termenv.Profile { return termenv.TrueColor }
	s.cores = func() int { return 8 }
	return s
}

func TestSampleUsesPixelWidthWhenReported(t *testing.T) {
	t.Parallel()
	s := newTestSignals(t, TerminalOptions{CellWidthPx: 8, Mouse: true}, map[string]string{"TERM": "xterm-256color"})
	s.winsize = func(uintptr) (int, int, int, bool) { return 100, 40, 1500, true }
	got := s.Sample(context.Background())
	if got.ViewportWidth != 1500 || got.Cores != 8 || !got.FeaturesPresent || !got.HoverPointer {
		t.Fatalf("unexpected signals %+v", got)
	}
}

func TestSampleFallsBackToColumns(t *testing.T) {
	t.Parallel()
	s := newTestSignals(t, TerminalOptions{CellWidthPx: 9}, map[string]string{"TERM": "linux", "COLUMNS": "120"})
	s.winsize = func(uintptr) (int, int, int, bool) { return 90, 30, 0, true }
	if got := s.Sample(context.Background()); got.ViewportWidth != 810 || got.HoverPointer {
		t.Fatalf("expected columns x cell width and no hover, got %+v", got)
	}
	s.winsize = func(uintptr) (int, int, int, bool) { return 0, 0, 0, false }
	if got := s.Sample(context.Background()); got.ViewportWidth != 1080 {
		t.Fatalf("expected COLUMNS fallback, got %d", got.ViewportWidth)
	}
}

func TestSampleWithoutTerminalLacksFeatures(t *testing.T) {
	t.Parallel()
	s := newTestSignals(t, TerminalOptions{Mouse: true, ReducedMotion: true}, map[string]string{})
	s.isTTY = func(uintptr) bool { return false }
	s.winsize = func(uintptr) (int, int, int, bool) { return 0, 0, 0, false }
	got := s.Sample(context.Background())
	if got.FeaturesPresent || got.HoverPointer || !got.ReducedMotion {
		t.Fatalf("a pipe must not report terminal features: %+v", got)
	}
	if got.ViewportWidth != fallbackColumns*8 {
		t.Fatalf("unexpected fallback width %d", got.ViewportWidth)
	}

	s.isTTY = func(uintptr) bool { return true }
	s.profile = func() termenv.Profile { return termenv.Ascii }
	if s.Sample(context.Background()).FeaturesPresent {
		t.Fatalf("ascii profile must count as missing features")
	}
}
