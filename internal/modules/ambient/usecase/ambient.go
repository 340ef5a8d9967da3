package usecase

import (
	"context"

	"folio/internal/modules/ambient/domain"
	"folio/internal/modules/ambient/dto"
	ambientin "folio/internal/modules/ambient/port/in"
	"folio/internal/modules/ambient/service"
)

type Interactor struct {
	snap *service.Snapshotter
}

func NewInteractor(snap *service.Snapshotter) ambientin.Usecase {
	return &Interactor{snap: snap}
}

func (i *Interactor) Budget(input dto.BudgetInput) dto.BudgetOutput {
	env := domain.Env{Width: input.Width, Height: input.Height, Cores: input.Cores, ReducedMotion: input.ReducedMotion}
	b := domain.BudgetFor(env)
	out := dto.BudgetOutput{Suppressed: domain.Suppressed(env), Particles: b.Count, FPS: b.FPS, Connections: b.Connections}
	if out.Suppressed {
		out.Particles = 0
	}
	return out
}

func (i *Interactor) Snapshot(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error) {
	env := domain.Env{Width: input.Width, Height: input.Height, Cores: input.Cores}
	res, err := i.snap.Render(ctx, env, input.Frames, input.Seed, input.Path)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	out := dto.SnapshotOutput{
		Suppressed:  res.Suppressed,
		FPS:         res.Budget.FPS,
		Connections: res.Budget.Connections,
	}
	if !res.Suppressed {
		out.Path = input.Path
		out.Particles = res.Stats.Particles
		out.Links = res.Stats.Links
		out.Frames = res.Stats.Frames
	}
	return out, nil
}
