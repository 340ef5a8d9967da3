package out

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"folio/internal/modules/ambient/domain"
)

func TestCellSurfacePlotsBraille(t *testing.T) {
	t.Parallel()
	s := NewCellSurface(8, 16)
	s.Resize(80, 32)
	if cols, rows := s.Size(); cols != 10 || rows != 2 {
		t.Fatalf("unexpected grid %dx%d", cols, rows)
	}
	s.Circle(1, 1, 2, domain.Color, 0.5)
	s.Circle(5, 13, 2, domain.Color, 0.3)
	glyph, hex, ok := s.Cell(0, 0)
	if !ok {
		t.Fatalf("expected a glyph in the first cell")
	}
	if glyph != rune(0x2800|0x01|0x80) {
		t.Fatalf("unexpected glyph %U", glyph)
	}
	if hex == "" || hex == "#ffffff" {
		t.Fatalf("glyph colour not blended: %q", hex)
	}
	if _, _, ok := s.Cell(1, 0); ok {
		t.Fatalf("untouched cell must be empty")
	}

	s.Line(0, 20, 79, 20, domain.Color, 0.1)
	for col := 0; col < 10; col++ {
		if _, _, ok := s.Cell(col, 1); !ok {
			t.Fatalf("line missing in column %d", col)
		}
	}
	s.Circle(500, 500, 1, domain.Color, 1)
	s.Clear()
	if _, _, ok := s.Cell(0, 0); ok {
		t.Fatalf("clear must empty the grid")
	}
	if err := s.SetBackground("not-a-colour"); err == nil {
		t.Fatalf("invalid background must fail")
	}
}

func TestRasterSurfaceSavesPNG(t *testing.T) {
	t.Parallel()
	s := NewRasterSurface(64, 48, "#ffffff")
	defer s.Close()
	s.Clear()
	s.Circle(10, 10, 3, domain.Color, 0.7)
	s.Line(0, 0, 63, 47, domain.Color, 0.15)
	s.Resize(32, 24)
	s.Clear()
	s.Circle(5, 5, 2, domain.Color, 0.5)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("save png: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 24 {
		t.Fatalf("unexpected png size %dx%d", cfg.Width, cfg.Height)
	}
}
