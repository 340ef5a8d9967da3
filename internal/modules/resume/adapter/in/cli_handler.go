package in

import (
	"context"

	"folio/internal/modules/resume/dto"
	resumein "folio/internal/modules/resume/port/in"
)

type CLIHandler struct {
	usecase resumein.Usecase
}

func NewCLIHandler(usecase resumein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Text(ctx context.Context, page int) (dto.TextOutput, error) {
	return h.usecase.Text(ctx, page)
}

func (h CLIHandler) Open(ctx context.Context) (dto.OpenOutput, error) {
	return h.usecase.Open(ctx)
}
