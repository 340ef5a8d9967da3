package service_test

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"folio/internal/modules/ambient/domain"
	ambientout "folio/internal/modules/ambient/port/out"
	"folio/internal/modules/ambient/service"
)

type recordingSurface struct {
	mu      sync.Mutex
	resizes [][2]int
	clears  int
	circles int
	lines   int
}

func (s *recordingSurface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resizes = append(s.resizes, [2]int{w, h})
}

func (s *recordingSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
}

func (s *recordingSurface) Circle(float64, float64, float64, domain.RGB, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.circles++
}

func (s *recordingSurface) Line(float64, float64, float64, float64, domain.RGB, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines++
}

func seeded(seed uint64) service.Option {
	return service.WithRand(func() domain.Rand { return rand.New(rand.NewPCG(seed, seed)) })
}

func TestActivateSuppressedIsNoOp(t *testing.T) {
	t.Parallel()
	surface := &recordingSurface{}
	sched := service.NewManualScheduler()
	effect := service.NewEffect(surface, sched, nil)

	for _, env := range []domain.Env{
		{Width: 1920, Height: 1080, Cores: 16, ReducedMotion: true},
		{Width: 375, Height: 800, Cores: 2},
	} {
		if effect.Activate(env) {
			t.Fatalf("activation must be refused for %+v", env)
		}
	}
	if len(surface.resizes) != 0 || surface.clears != 0 {
		t.Fatalf("suppressed effect touched the surface: %+v", surface)
	}
	if sched.Pending() != 0 || len(effect.Particles()) != 0 {
		t.Fatalf("suppressed effect must not seed or schedule")
	}
}

func TestFrameLoopThrottlesAndReschedules(t *testing.T) {
	t.Parallel()
	surface := &recordingSurface{}
	sched := service.NewManualScheduler()
	effect := service.NewEffect(surface, sched, nil, seeded(7))

	if !effect.Activate(domain.Env{Width: 375, Height: 800, Cores: 8}) {
		t.Fatalf("expected activation")
	}
	if got := len(effect.Particles()); got != 8 {
		t.Fatalf("expected 8 particles on a narrow host, got %d", got)
	}
	if len(surface.resizes) != 1 || surface.resizes[0] != [2]int{375, 800} {
		t.Fatalf("surface not sized to host: %+v", surface.resizes)
	}

	start := time.Unix(0, 0)
	sched.Fire(start)
	sched.Fire(start.Add(10 * time.Millisecond)) // faster than 30fps: skipped
	sched.Fire(start.Add(40 * time.Millisecond))
	stats := effect.Stats()
	if stats.Frames != 2 || surface.clears != 2 {
		t.Fatalf("expected 2 drawn frames, got %d (clears %d)", stats.Frames, surface.clears)
	}
	if surface.circles != 16 {
		t.Fatalf("expected one circle per particle per frame, got %d", surface.circles)
	}
	if surface.lines != 0 {
		t.Fatalf("narrow hosts must not draw links")
	}
	if sched.Pending() != 1 {
		t.Fatalf("loop must keep exactly one pending frame, got %d", sched.Pending())
	}

	effect.Deactivate()
	if sched.Pending() != 0 {
		t.Fatalf("deactivate must cancel the pending frame")
	}
	if sched.Fire(start.Add(time.Second)) != 0 || effect.Stats().Frames != 2 {
		t.Fatalf("no frame may run after deactivate")
	}
}

func TestReactivateSeedsFreshParticles(t *testing.T) {
	t.Parallel()
	sched := service.NewManualScheduler()
	seed := uint64(0)
	effect := service.NewEffect(&recordingSurface{}, sched, nil, service.WithRand(func() domain.Rand {
		seed++
		return rand.New(rand.NewPCG(seed, seed))
	}))
	env := domain.Env{Width: 1440, Height: 900, Cores: 8}
	effect.Activate(env)
	first := effect.Particles()
	effect.Activate(env)
	second := effect.Particles()
	if len(first) != 30 || len(second) != 30 {
		t.Fatalf("expected 30 particles, got %d and %d", len(first), len(second))
	}
	if first[0] == second[0] {
		t.Fatalf("reactivation reused the previous particle set")
	}
	if sched.Pending() != 1 {
		t.Fatalf("old loop overlapped the new one: %d pending", sched.Pending())
	}
	effect.Deactivate()
}

func TestStaleCallbackDoesNotDraw(t *testing.T) {
	t.Parallel()
	surface := &recordingSurface{}
	var captured func(time.Time)
	sched := &capturingScheduler{onRequest: func(fn func(time.Time)) { captured = fn }}
	effect := service.NewEffect(surface, sched, nil, seeded(3))
	effect.Activate(domain.Env{Width: 1440, Height: 900, Cores: 8})
	effect.Deactivate()
	captured(time.Unix(1, 0))
	if surface.clears != 0 {
		t.Fatalf("a callback from a cancelled activation drew a frame")
	}
}

func TestResizeKeepsPositions(t *testing.T) {
	t.Parallel()
	surface := &recordingSurface{}
	effect := service.NewEffect(surface, service.NewManualScheduler(), nil, seeded(9))
	effect.Activate(domain.Env{Width: 1440, Height: 900, Cores: 8})
	before := effect.Particles()
	effect.Resize(800, 600)
	after := effect.Particles()
	if before[0] != after[0] {
		t.Fatalf("resize must not renormalize particles")
	}
	if last := surface.resizes[len(surface.resizes)-1]; last != [2]int{800, 600} {
		t.Fatalf("surface not resized: %v", last)
	}
	effect.Deactivate()
}

func TestDesktopDrawsLinks(t *testing.T) {
	t.Parallel()
	surface := &recordingSurface{}
	// Every particle seeded at the same spot, so all capped pairs are in range.
	effect := service.NewEffect(surface, service.NewManualScheduler(), nil,
		service.WithRand(func() domain.Rand { return constRand(0.5) }))
	effect.Activate(domain.Env{Width: 1440, Height: 900, Cores: 8})
	if !effect.Frame(time.Unix(0, 0)) {
		t.Fatalf("first frame must draw")
	}
	if want := 15 * 14 / 2; effect.Stats().Links != want || surface.lines != want {
		t.Fatalf("expected %d links between coincident particles, got %d", want, effect.Stats().Links)
	}
	effect.Deactivate()
}

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

type capturingScheduler struct {
	onRequest func(func(time.Time))
}

func (s *capturingScheduler) Request(fn func(time.Time)) ambientout.Handle {
	s.onRequest(fn)
	return 1
}

func (s *capturingScheduler) Cancel(ambientout.Handle) {}
