package out

import (
	"context"

	"folio/internal/modules/contact/domain"
)

type Mailer interface {
	Send(ctx context.Context, service domain.ServiceParams, params domain.TemplateParams) error
}

type Tracker interface {
	TrackFormSubmission(form string)
}
