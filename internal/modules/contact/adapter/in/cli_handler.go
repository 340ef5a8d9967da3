package in

import (
	"context"

	"folio/internal/modules/contact/dto"
	contactin "folio/internal/modules/contact/port/in"
)

type CLIHandler struct {
	usecase contactin.Usecase
}

func NewCLIHandler(usecase contactin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Send(ctx context.Context, name, email, message string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{Name: name, Email: email, Message: message})
}
