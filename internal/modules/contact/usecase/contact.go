package usecase

import (
	"context"

	"folio/internal/modules/contact/domain"
	"folio/internal/modules/contact/dto"
	contactin "folio/internal/modules/contact/port/in"
	"folio/internal/modules/contact/service"
)

type Interactor struct {
	svc *service.ContactService
}

func NewInteractor(svc *service.ContactService) contactin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	status, err := i.svc.Submit(ctx, domain.Form{Name: input.Name, Email: input.Email, Message: input.Message})
	return dto.SubmitOutput{Status: string(status)}, err
}
