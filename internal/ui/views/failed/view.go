package failed

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/ui/theme"
)

type Translator interface {
	T(key string) string
}

// Render draws the terminal failure screen. err is shown in muted text
// below the translated message.
func Render(t Translator, s theme.Styles, err error, width, height int) string {
	msgW := min(max(width-8, 20), 72)
	parts := []string{
		s.Danger.Render("⚠ " + t.T("error.title")),
		"",
		lipgloss.NewStyle().Width(msgW).Align(lipgloss.Center).Render(t.T("error.message")),
		"",
		s.Hot.Render("[r]") + " " + t.T("error.refresh") + "    " + s.Hot.Render("[g]") + " " + t.T("error.goHome"),
	}
	if err != nil {
		parts = append(parts, "", s.Muted.Width(msgW).Render(err.Error()))
	}
	body := s.Pane.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
