package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/ui/theme"
)

// Cursor follows the pointer and draws a marker over the rendered screen.
type Cursor struct {
	X, Y    int
	Pressed bool
	seen    bool
}

func (c Cursor) Update(msg tea.MouseMsg) Cursor {
	c.X, c.Y, c.seen = msg.X, msg.Y, true
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			c.Pressed = true
		}
	case tea.MouseActionRelease:
		c.Pressed = false
	}
	return c
}

// Overlay replaces the cell under the pointer with the marker. Nothing is
// drawn before the first mouse event.
func (c Cursor) Overlay(view string, s theme.Styles) string {
	if !c.seen || c.X < 0 || c.Y < 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if c.Y >= len(lines) {
		return view
	}
	glyph := "◉"
	if c.Pressed {
		glyph = "●"
	}
	line := lines[c.Y]
	if w := ansi.StringWidth(line); w <= c.X {
		line += strings.Repeat(" ", c.X-w+1)
	}
	lines[c.Y] = ansi.Truncate(line, c.X, "") + s.Hot.Render(glyph) + ansi.TruncateLeft(line, c.X+1, "")
	return strings.Join(lines, "\n")
}
