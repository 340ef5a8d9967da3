package service

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"folio/internal/modules/content/domain"
	contentout "folio/internal/modules/content/port/out"
	apperrors "folio/internal/platform/errors"
)

// ContentService loads the portfolio once and serves filtered views of it.
type ContentService struct {
	source contentout.Source
	log    *zap.Logger

	once      sync.Once
	portfolio domain.Portfolio
	err       error
}

func NewContentService(source contentout.Source, log *zap.Logger) *ContentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{source: source, log: log}
}

func (s *ContentService) Portfolio() (domain.Portfolio, error) {
	s.once.Do(func() {
		p, err := s.source.Load()
		if err != nil {
			s.err = err
			return
		}
		if err := p.Validate(); err != nil {
			s.err = fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
			return
		}
		s.portfolio = p
		s.log.Debug("portfolio loaded",
			zap.Int("projects", len(p.Projects)),
			zap.Int("skills", len(p.Skills)),
		)
	})
	return s.portfolio, s.err
}

func (s *ContentService) Projects(category domain.Category) ([]domain.Project, error) {
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	return domain.Filter(p.Projects, category), nil
}

func (s *ContentService) Skills() ([]domain.SkillGroup, error) {
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	return domain.GroupSkills(p.Skills), nil
}
