package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the catppuccin colours one flavour needs.
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Blue     lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
}

var Mocha = Palette{
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Surface0: "#313244",
	Surface1: "#45475a",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Lavender: "#b4befe",
	Sapphire: "#74c7ec",
	Blue:     "#89b4fa",
	Green:    "#a6e3a1",
	Peach:    "#fab387",
	Red:      "#f38ba8",
}

var Latte = Palette{
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Surface0: "#ccd0da",
	Surface1: "#bcc0cc",
	Text:     "#4c4f69",
	Subtext0: "#6c6f85",
	Lavender: "#7287fd",
	Sapphire: "#209fb5",
	Blue:     "#1e66f5",
	Green:    "#40a02b",
	Peach:    "#fe640b",
	Red:      "#d20f39",
}

type Styles struct {
	Palette    Palette
	Dark       bool
	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Bar        lipgloss.Style
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Accent     lipgloss.Style
	Success    lipgloss.Style
	Danger     lipgloss.Style
}

// For returns the mocha styles for dark mode and latte otherwise.
func For(dark bool) Styles {
	if dark {
		return build(Mocha, true)
	}
	return build(Latte, false)
}

func build(p Palette, dark bool) Styles {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Foreground(p.Text).
		Padding(0, 1)
	return Styles{
		Palette:    p,
		Dark:       dark,
		App:        lipgloss.NewStyle().Foreground(p.Text),
		Pane:       pane,
		PaneActive: pane.BorderForeground(p.Lavender),
		Bar:        lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text),
		Title:      lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(p.Lavender).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(p.Subtext0),
		Hot:        lipgloss.NewStyle().Foreground(p.Peach).Bold(true),
		Accent:     lipgloss.NewStyle().Foreground(p.Blue),
		Success:    lipgloss.NewStyle().Foreground(p.Green).Bold(true),
		Danger:     lipgloss.NewStyle().Foreground(p.Red).Bold(true),
	}
}

// Background is the hex colour the ambient backdrop blends against.
func (s Styles) Background() string { return string(s.Palette.Base) }

// GlamourStyle names the glamour standard style matching the flavour.
func (s Styles) GlamourStyle() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}
