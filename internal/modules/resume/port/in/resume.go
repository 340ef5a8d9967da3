package in

import (
	"context"

	"folio/internal/modules/resume/dto"
)

type Usecase interface {
	Text(ctx context.Context, page int) (dto.TextOutput, error)
	Open(ctx context.Context) (dto.OpenOutput, error)
}
