package in

import (
	"context"

	"folio/internal/modules/capability/dto"
	capabilityin "folio/internal/modules/capability/port/in"
)

type CLIHandler struct {
	usecase capabilityin.Usecase
}

func NewCLIHandler(usecase capabilityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Describe(ctx context.Context) (dto.DescribeOutput, error) {
	return h.usecase.Describe(ctx)
}
