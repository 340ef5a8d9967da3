package usecase

import (
	"context"
	"fmt"

	"folio/internal/modules/preference/domain"
	"folio/internal/modules/preference/dto"
	preferencein "folio/internal/modules/preference/port/in"
	"folio/internal/modules/preference/service"
	apperrors "folio/internal/platform/errors"
)

type Interactor struct {
	settings *service.Settings
}

func NewInteractor(settings *service.Settings) preferencein.Usecase {
	return &Interactor{settings: settings}
}

func (i *Interactor) Theme(context.Context) dto.ThemeOutput {
	return dto.ThemeOutput{Theme: string(i.settings.Theme())}
}

func (i *Interactor) SetTheme(ctx context.Context, theme string) (dto.ThemeOutput, error) {
	parsed, err := domain.ParseTheme(theme)
	if err != nil {
		return dto.ThemeOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := i.settings.Set(ctx, parsed); err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Theme: string(parsed)}, nil
}

func (i *Interactor) ToggleTheme(ctx context.Context) (dto.ThemeOutput, error) {
	theme, err := i.settings.Toggle(ctx)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Theme: string(theme)}, nil
}

func (i *Interactor) Language(ctx context.Context) (string, error) {
	return i.settings.Language(ctx)
}

func (i *Interactor) SetLanguage(ctx context.Context, lang string) error {
	return i.settings.SetLanguage(ctx, lang)
}
