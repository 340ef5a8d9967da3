package out

import (
	"fmt"

	"github.com/gogpu/gg"

	"folio/internal/modules/ambient/domain"
)

// RasterSurface draws on a gg context for offline snapshots.
type RasterSurface struct {
	ctx *gg.Context
	bg  gg.RGBA
	err error
}

func NewRasterSurface(width, height int, background string) *RasterSurface {
	return &RasterSurface{
		ctx: gg.NewContext(max(width, 1), max(height, 1)),
		bg:  gg.Hex(background),
	}
}

func (s *RasterSurface) Resize(width, height int) {
	s.keep(s.ctx.Resize(width, height))
}

func (s *RasterSurface) Clear() {
	s.ctx.ClearWithColor(s.bg)
}

func (s *RasterSurface) Circle(x, y, radius float64, c domain.RGB, alpha float64) {
	s.setColor(c, alpha)
	s.ctx.DrawCircle(x, y, radius)
	s.keep(s.ctx.Fill())
}

func (s *RasterSurface) Line(x1, y1, x2, y2 float64, c domain.RGB, alpha float64) {
	s.setColor(c, alpha)
	s.ctx.SetLineWidth(1)
	s.ctx.DrawLine(x1, y1, x2, y2)
	s.keep(s.ctx.Stroke())
}

func (s *RasterSurface) setColor(c domain.RGB, alpha float64) {
	s.ctx.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
}

func (s *RasterSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *RasterSurface) Width() int  { return s.ctx.Width() }
func (s *RasterSurface) Height() int { return s.ctx.Height() }

// SavePNG writes the current frame. It fails with the first drawing error
// if one occurred.
func (s *RasterSurface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("raster surface: %w", s.err)
	}
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func (s *RasterSurface) Close() error {
	return s.ctx.Close()
}
