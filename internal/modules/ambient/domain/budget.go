package domain

import "time"

const (
	NarrowWidthPx = 768
	TabletWidthPx = 1024
	LowEndCores   = 4
)

// Env is what the effect needs to know about its host when it activates.
// Cores of zero means unknown.
type Env struct {
	Width         int
	Height        int
	Cores         int
	ReducedMotion bool
}

func (e Env) Narrow() bool { return e.Width < NarrowWidthPx }

func (e Env) LowEnd() bool { return e.Cores > 0 && e.Cores < LowEndCores }

func (e Env) Bounds() Bounds {
	return Bounds{W: float64(e.Width), H: float64(e.Height)}
}

type Budget struct {
	Count       int
	FPS         int
	Connections bool
}

// Interval is the minimum time between two drawn frames.
func (b Budget) Interval() time.Duration {
	if b.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(b.FPS)
}

func BudgetFor(e Env) Budget {
	b := Budget{Count: 30, FPS: 60, Connections: !e.Narrow() && !e.LowEnd()}
	switch {
	case e.Narrow():
		b.Count = 8
	case e.Width < TabletWidthPx:
		b.Count = 15
	case e.LowEnd():
		b.Count = 12
	}
	if e.Narrow() {
		b.FPS = 30
	}
	return b
}

// Suppressed reports whether the effect must not run at all.
func Suppressed(e Env) bool {
	return e.ReducedMotion || (e.Narrow() && e.LowEnd())
}
