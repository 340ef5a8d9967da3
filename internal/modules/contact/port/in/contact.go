package in

import (
	"context"

	"folio/internal/modules/contact/dto"
)

type Usecase interface {
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
}
