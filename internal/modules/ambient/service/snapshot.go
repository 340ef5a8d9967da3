package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"folio/internal/modules/ambient/domain"
	ambientout "folio/internal/modules/ambient/port/out"
	apperrors "folio/internal/platform/errors"
)

type SnapshotResult struct {
	Suppressed bool
	Budget     domain.Budget
	Stats      Stats
}

// Snapshotter renders a fixed number of frames offscreen with a manual clock.
type Snapshotter struct {
	newTarget func(width, height int) ambientout.RasterTarget
	log       *zap.Logger
}

func NewSnapshotter(newTarget func(width, height int) ambientout.RasterTarget, log *zap.Logger) *Snapshotter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Snapshotter{newTarget: newTarget, log: log}
}

func (s *Snapshotter) Render(ctx context.Context, env domain.Env, frames int, seed uint64, path string) (SnapshotResult, error) {
	if env.Width <= 0 || env.Height <= 0 {
		return SnapshotResult{}, fmt.Errorf("%w: snapshot size %dx%d", apperrors.ErrInvalidInput, env.Width, env.Height)
	}
	if frames <= 0 {
		frames = 1
	}
	if path == "" {
		return SnapshotResult{}, fmt.Errorf("%w: snapshot path is required", apperrors.ErrInvalidInput)
	}
	budget := domain.BudgetFor(env)
	if domain.Suppressed(env) {
		return SnapshotResult{Suppressed: true, Budget: budget}, nil
	}

	target := s.newTarget(env.Width, env.Height)
	defer target.Close()
	sched := NewManualScheduler()
	effect := NewEffect(target, sched, s.log, WithRand(func() domain.Rand {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}))
	effect.Activate(env)

	now := time.Unix(0, 0)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			effect.Deactivate()
			return SnapshotResult{}, err
		}
		sched.Fire(now)
		now = now.Add(budget.Interval())
	}
	stats := effect.Stats()
	effect.Deactivate()

	if err := target.SavePNG(path); err != nil {
		return SnapshotResult{}, err
	}
	s.log.Info("snapshot written", zap.String("path", path), zap.Int("frames", stats.Frames))
	return SnapshotResult{Budget: budget, Stats: stats}, nil
}
