package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CellFunc reports the backdrop glyph and colour at a screen cell.
type CellFunc func(col, row int) (glyph rune, hex string, ok bool)

// Compose paints the backdrop into the cells of view that carry no text:
// plain leading spaces and everything right of the last visible glyph.
// rowOffset is the screen row of the first line of view.
func Compose(view string, width, rowOffset int, cell CellFunc) string {
	if cell == nil || width <= 0 {
		return view
	}
	styles := map[string]lipgloss.Style{}
	paint := func(b *strings.Builder, from, to, row int) {
		for col := from; col < to; col++ {
			glyph, hex, ok := cell(col, row)
			if !ok {
				b.WriteByte(' ')
				continue
			}
			st, seen := styles[hex]
			if !seen {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			b.WriteString(st.Render(string(glyph)))
		}
	}

	lines := strings.Split(view, "\n")
	for i, line := range lines {
		row := rowOffset + i
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			line = ""
		}
		body := strings.TrimRight(line, " ")
		lead := len(body) - len(strings.TrimLeft(body, " "))
		end := ansi.StringWidth(body)
		if lead == 0 && end >= width {
			continue
		}
		var b strings.Builder
		paint(&b, 0, lead, row)
		b.WriteString(body[lead:])
		paint(&b, end, width, row)
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
