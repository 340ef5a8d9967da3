package usecase

import (
	"context"

	ambientdomain "folio/internal/modules/ambient/domain"
	"folio/internal/modules/capability/domain"
	"folio/internal/modules/capability/dto"
	capabilityin "folio/internal/modules/capability/port/in"
	"folio/internal/modules/capability/service"
)

type Interactor struct {
	monitor *service.Monitor
}

func NewInteractor(monitor *service.Monitor) capabilityin.Usecase {
	return &Interactor{monitor: monitor}
}

func (i *Interactor) Describe(ctx context.Context) (dto.DescribeOutput, error) {
	tier := i.monitor.Reevaluate(ctx)
	s := i.monitor.Signals()
	out := dto.DescribeOutput{
		Tier: tier.String(),
		Signals: dto.SignalsOutput{
			ViewportWidth:   s.ViewportWidth,
			Cores:           s.Cores,
			Network:         s.Network.String(),
			ReducedMotion:   s.ReducedMotion,
			FeaturesPresent: s.FeaturesPresent,
			HoverPointer:    s.HoverPointer,
		},
		Cursor: domain.CursorEnabled(tier, s),
	}
	env := ambientdomain.Env{Width: s.ViewportWidth, Cores: s.Cores, ReducedMotion: s.ReducedMotion}
	if domain.AmbientEnabled(tier) && !ambientdomain.Suppressed(env) {
		b := ambientdomain.BudgetFor(env)
		out.Ambient = dto.AmbientOutput{Enabled: true, Particles: b.Count, FPS: b.FPS, Connections: b.Connections}
	}
	return out, nil
}
