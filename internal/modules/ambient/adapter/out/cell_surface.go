package out

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"folio/internal/modules/ambient/domain"
)

// Braille dot bits indexed by [row][column] inside one cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CellSurface rasterises the effect onto a grid of braille cells, 2x4 dots
// per terminal cell. Coordinates come in pixels.
type CellSurface struct {
	cellW, cellH int

	mu    sync.RWMutex
	cols  int
	rows  int
	dots  []uint8
	alpha []float64
	fg    colorful.Color
	bg    colorful.Color
}

func NewCellSurface(cellW, cellH int) *CellSurface {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	c := colorful.Color{R: float64(domain.Color.R) / 255, G: float64(domain.Color.G) / 255, B: float64(domain.Color.B) / 255}
	return &CellSurface{cellW: cellW, cellH: cellH, fg: c, bg: colorful.Color{R: 1, G: 1, B: 1}}
}

// SetBackground sets the colour particles are blended over.
func (s *CellSurface) SetBackground(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bg = c
	s.mu.Unlock()
	return nil
}

func (s *CellSurface) Resize(width, height int) {
	cols := int(math.Ceil(float64(width) / float64(s.cellW)))
	rows := int(math.Ceil(float64(height) / float64(s.cellH)))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.dots = make([]uint8, s.cols*s.rows)
	s.alpha = make([]float64, s.cols*s.rows)
}

func (s *CellSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.dots)
	clear(s.alpha)
}

func (s *CellSurface) Circle(x, y, _ float64, _ domain.RGB, alpha float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plot(x, y, alpha)
}

func (s *CellSurface) Line(x1, y1, x2, y2 float64, _ domain.RGB, alpha float64) {
	dotW, dotH := float64(s.cellW)/2, float64(s.cellH)/4
	steps := int(math.Max(math.Abs(x2-x1)/dotW, math.Abs(y2-y1)/dotH))
	s.mu.Lock()
	defer s.mu.Unlock()
	if steps == 0 {
		s.plot(x1, y1, alpha)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(x1+(x2-x1)*t, y1+(y2-y1)*t, alpha)
	}
}

func (s *CellSurface) plot(x, y, alpha float64) {
	if x < 0 || y < 0 {
		return
	}
	dx := int(x / (float64(s.cellW) / 2))
	dy := int(y / (float64(s.cellH) / 4))
	col, row := dx/2, dy/4
	if col >= s.cols || row >= s.rows {
		return
	}
	i := row*s.cols + col
	s.dots[i] |= brailleBits[dy%4][dx%2]
	s.alpha[i] = math.Max(s.alpha[i], alpha)
}

func (s *CellSurface) Size() (cols, rows int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cols, s.rows
}

// Cell returns the braille glyph and its blended colour at col,row. ok is
// false for empty cells.
func (s *CellSurface) Cell(col, row int) (glyph rune, hex string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, "", false
	}
	i := row*s.cols + col
	if s.dots[i] == 0 {
		return 0, "", false
	}
	// Terminal glyphs are thin; lift the weakest opacities so they stay visible.
	t := 0.35 + 0.65*math.Min(s.alpha[i]/0.7, 1)
	return rune(0x2800 + int(s.dots[i])), s.bg.BlendRgb(s.fg, t).Clamped().Hex(), true
}
