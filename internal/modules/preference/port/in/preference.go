package in

import (
	"context"

	"folio/internal/modules/preference/dto"
)

type Usecase interface {
	Theme(ctx context.Context) dto.ThemeOutput
	SetTheme(ctx context.Context, theme string) (dto.ThemeOutput, error)
	ToggleTheme(ctx context.Context) (dto.ThemeOutput, error)
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, lang string) error
}
