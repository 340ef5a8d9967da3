package usecase

import (
	"fmt"

	"folio/internal/modules/content/domain"
	"folio/internal/modules/content/dto"
	contentin "folio/internal/modules/content/port/in"
	"folio/internal/modules/content/service"
	apperrors "folio/internal/platform/errors"
)

type Interactor struct {
	svc *service.ContentService
}

func NewInteractor(svc *service.ContentService) contentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Portfolio() (domain.Portfolio, error) {
	return i.svc.Portfolio()
}

func (i *Interactor) Projects(category string) (dto.ProjectsOutput, error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return dto.ProjectsOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	projects, err := i.svc.Projects(cat)
	if err != nil {
		return dto.ProjectsOutput{}, err
	}
	out := dto.ProjectsOutput{Category: string(cat), Projects: make([]dto.ProjectOutput, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, dto.ProjectOutput{
			Key:          p.Key,
			Category:     string(p.Category),
			Technologies: p.Technologies,
			GitHub:       p.GitHub,
			Demo:         p.Demo,
			Featured:     p.Featured,
		})
	}
	return out, nil
}

func (i *Interactor) Skills() ([]domain.SkillGroup, error) {
	return i.svc.Skills()
}
