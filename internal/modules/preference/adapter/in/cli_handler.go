package in

import (
	"context"

	"folio/internal/modules/preference/dto"
	preferencein "folio/internal/modules/preference/port/in"
)

type CLIHandler struct {
	usecase preferencein.Usecase
}

func NewCLIHandler(usecase preferencein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Theme(ctx context.Context) dto.ThemeOutput {
	return h.usecase.Theme(ctx)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) (dto.ThemeOutput, error) {
	return h.usecase.SetTheme(ctx, theme)
}

func (h CLIHandler) ToggleTheme(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.ToggleTheme(ctx)
}

func (h CLIHandler) Language(ctx context.Context) (string, error) {
	return h.usecase.Language(ctx)
}

func (h CLIHandler) SetLanguage(ctx context.Context, lang string) error {
	return h.usecase.SetLanguage(ctx, lang)
}
