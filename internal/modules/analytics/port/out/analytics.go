package out

import (
	"context"

	"folio/internal/modules/analytics/domain"
)

type Sink interface {
	Send(ctx context.Context, clientID string, events []domain.Event) error
}
