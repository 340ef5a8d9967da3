package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"folio/internal/modules/ambient/domain"
	ambientout "folio/internal/modules/ambient/port/out"
)

// Effect is the particle background. The particle set belongs to the frame
// loop; every Activate seeds a new one.
type Effect struct {
	surface ambientout.Surface
	sched   ambientout.FrameScheduler
	rng     func() domain.Rand
	log     *zap.Logger

	mu        sync.Mutex
	active    bool
	gen       uint64
	env       domain.Env
	budget    domain.Budget
	bounds    domain.Bounds
	particles []domain.Particle
	links     int
	handle    ambientout.Handle
	pending   bool
	last      time.Time
	frames    int
}

type Option func(*Effect)

// WithRand replaces the per-activation random source.
func WithRand(fn func() domain.Rand) Option {
	return func(e *Effect) { e.rng = fn }
}

func NewEffect(surface ambientout.Surface, sched ambientout.FrameScheduler, log *zap.Logger, opts ...Option) *Effect {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Effect{
		surface: surface,
		sched:   sched,
		log:     log,
		rng: func() domain.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Activate starts the loop for env. A suppressed environment leaves the
// surface untouched and returns false. A running loop is torn down first.
func (e *Effect) Activate(env domain.Env) bool {
	e.Deactivate()
	if domain.Suppressed(env) {
		e.log.Debug("ambient effect suppressed",
			zap.Int("width", env.Width),
			zap.Int("cores", env.Cores),
			zap.Bool("reduced_motion", env.ReducedMotion),
		)
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = true
	e.gen++
	e.env = env
	e.budget = domain.BudgetFor(env)
	e.bounds = env.Bounds()
	e.surface.Resize(env.Width, env.Height)
	e.particles = domain.Seed(e.rng(), e.budget.Count, e.bounds)
	e.last = time.Time{}
	e.frames = 0
	e.scheduleLocked(e.gen)
	e.log.Debug("ambient effect active",
		zap.Int("particles", e.budget.Count),
		zap.Int("fps", e.budget.FPS),
		zap.Bool("connections", e.budget.Connections),
	)
	return true
}

func (e *Effect) scheduleLocked(gen uint64) {
	e.handle = e.sched.Request(func(now time.Time) { e.tick(gen, now) })
	e.pending = true
}

func (e *Effect) tick(gen uint64, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active || gen != e.gen {
		return
	}
	e.pending = false
	e.frameLocked(now)
	e.scheduleLocked(gen)
}

// Frame draws one frame at now unless the previous frame is younger than the
// frame interval. It reports whether anything was drawn.
func (e *Effect) Frame(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return false
	}
	return e.frameLocked(now)
}

func (e *Effect) frameLocked(now time.Time) bool {
	if !e.last.IsZero() && now.Sub(e.last) < e.budget.Interval() {
		return false
	}
	e.last = now
	e.surface.Clear()
	for i := range e.particles {
		p := &e.particles[i]
		p.Step(e.bounds)
		e.surface.Circle(p.X, p.Y, p.Radius, domain.Color, p.Opacity)
	}
	e.links = 0
	if e.budget.Connections {
		for _, l := range domain.Links(e.particles) {
			a, b := e.particles[l.A], e.particles[l.B]
			e.surface.Line(a.X, a.Y, b.X, b.Y, domain.Color, l.Opacity)
			e.links++
		}
	}
	e.frames++
	return true
}

// Resize follows the host size. Particle positions are kept as they are and
// wrap into the new bounds on their own.
func (e *Effect) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return
	}
	e.env.Width, e.env.Height = width, height
	e.bounds = e.env.Bounds()
	e.surface.Resize(width, height)
}

// Deactivate cancels the pending frame. It returns after any frame that is
// already drawing has finished; no callback of this activation draws again.
func (e *Effect) Deactivate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return
	}
	e.active = false
	e.gen++
	if e.pending {
		e.sched.Cancel(e.handle)
		e.pending = false
	}
	e.particles = nil
	e.log.Debug("ambient effect stopped", zap.Int("frames", e.frames))
}

func (e *Effect) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

type Stats struct {
	Particles int
	Links     int
	Frames    int
	Budget    domain.Budget
}

func (e *Effect) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{Particles: len(e.particles), Links: e.links, Frames: e.frames, Budget: e.budget}
}

// Particles returns a copy of the current particle set.
func (e *Effect) Particles() []domain.Particle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Particle(nil), e.particles...)
}
