package out

import (
	"time"

	"folio/internal/modules/ambient/domain"
)

// Surface is the drawing target of the effect. Drawing calls do not report
// errors; adapters that can fail keep the first error for their own flush.
type Surface interface {
	Resize(width, height int)
	Clear()
	Circle(x, y, radius float64, c domain.RGB, alpha float64)
	Line(x1, y1, x2, y2 float64, c domain.RGB, alpha float64)
}

type Handle uint64

// FrameScheduler runs fn once on the next display frame. Cancel must not
// wait for a callback that is already running.
type FrameScheduler interface {
	Request(fn func(now time.Time)) Handle
	Cancel(h Handle)
}

// RasterTarget is an offscreen surface that can be written out as PNG.
type RasterTarget interface {
	Surface
	SavePNG(path string) error
	Close() error
}
