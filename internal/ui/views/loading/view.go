package loading

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/ui/components"
	"folio/internal/ui/theme"
)

const (
	Duration = 1500 * time.Millisecond
	Interval = 50 * time.Millisecond
	// Hold keeps the full bar on screen before DoneMsg.
	Hold = 500 * time.Millisecond
)

var textKeys = []string{
	"common.loadingPortfolio",
	"common.preparingProjects",
	"common.optimizingExperience",
	"common.almostReady",
}

type Translator interface {
	T(key string) string
}

type TickMsg struct{}

// DoneMsg tells the root model to show the page.
type DoneMsg struct{}

type Model struct {
	t       Translator
	styles  theme.Styles
	spinner spinner.Model
	step    int
	text    int
	held    bool
	width   int
	height  int
}

func New(t Translator, styles theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Palette.Lavender)
	return Model{t: t, styles: styles, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.spinner.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(Interval, func(time.Time) tea.Msg { return TickMsg{} })
}

func steps() int { return int(Duration / Interval) }

// Progress is the bar fill in percent.
func (m Model) Progress() float64 {
	return min(float64(m.step)*100/float64(steps()), 100)
}

func (m Model) TextKey() string { return textKeys[m.text] }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.held {
			return m, nil
		}
		m.step++
		if idx := int(m.Progress() / 100 * float64(len(textKeys))); idx != m.text && idx < len(textKeys) {
			m.text = idx
		}
		if m.step >= steps() {
			m.held = true
			return m, tea.Tick(Hold, func(time.Time) tea.Msg { return DoneMsg{} })
		}
		return m, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	barW := min(max(m.width/3, 10), 40)
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("AS"),
		"",
		m.spinner.View()+" "+m.styles.App.Render(m.t.T(m.TextKey())),
		"",
		components.ProgressBar(barW, m.Progress()/100, m.styles),
		m.styles.Muted.Render(fmt.Sprintf("%.0f%%", m.Progress())),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
