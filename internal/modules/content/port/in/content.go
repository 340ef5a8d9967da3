package in

import (
	"folio/internal/modules/content/domain"
	"folio/internal/modules/content/dto"
)

type Usecase interface {
	Portfolio() (domain.Portfolio, error)
	Projects(category string) (dto.ProjectsOutput, error)
	Skills() ([]domain.SkillGroup, error)
}
