package out

import (
	"context"

	"folio/internal/modules/capability/domain"
)

// SignalSource samples the environment. Signals that cannot be read come back
// as their conservative value; Sample never fails.
type SignalSource interface {
	Sample(ctx context.Context) domain.Signals
}

type NetworkQuality interface {
	EffectiveType() domain.EffectiveType
	// Subscribe registers fn for effective-type changes. ok is false when no
	// change notification is available.
	Subscribe(fn func(domain.EffectiveType)) (cancel func(), ok bool)
}
