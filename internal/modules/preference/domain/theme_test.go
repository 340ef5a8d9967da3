package domain_test

import (
	"testing"

	"folio/internal/modules/preference/domain"
)

func TestThemeParseAndToggle(t *testing.T) {
	t.Parallel()
	if th, err := domain.ParseTheme(" Dark "); err != nil || th != domain.ThemeDark {
		t.Fatalf("parse dark: %v %v", th, err)
	}
	if _, err := domain.ParseTheme("sepia"); err == nil {
		t.Fatalf("unknown theme must fail")
	}
	if domain.ThemeDark.Toggle() != domain.ThemeLight || domain.ThemeLight.Toggle() != domain.ThemeDark {
		t.Fatalf("toggle must flip the theme")
	}
}
