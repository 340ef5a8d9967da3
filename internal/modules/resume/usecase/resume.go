package usecase

import (
	"context"

	"folio/internal/modules/resume/dto"
	resumein "folio/internal/modules/resume/port/in"
	"folio/internal/modules/resume/service"
)

type Interactor struct {
	svc *service.ResumeService
}

func NewInteractor(svc *service.ResumeService) resumein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Text(ctx context.Context, page int) (dto.TextOutput, error) {
	p, err := i.svc.Text(ctx, page)
	if err != nil {
		return dto.TextOutput{}, err
	}
	return dto.TextOutput{Page: p.Number, TotalPage: p.Total, Text: p.Text}, nil
}

func (i *Interactor) Open(ctx context.Context) (dto.OpenOutput, error) {
	if err := i.svc.Open(ctx); err != nil {
		return dto.OpenOutput{}, err
	}
	return dto.OpenOutput{Path: i.svc.Path()}, nil
}
