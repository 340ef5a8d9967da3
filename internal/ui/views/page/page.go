package page

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	contactdto "folio/internal/modules/contact/dto"
	contentdomain "folio/internal/modules/content/domain"
	revealdomain "folio/internal/modules/reveal/domain"
	revealservice "folio/internal/modules/reveal/service"
	"folio/internal/ui/components"
	"folio/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type Translator interface {
	T(key string) string
}

type ContentPort interface {
	Portfolio() (contentdomain.Portfolio, error)
}

type ContactPort interface {
	Submit(ctx context.Context, input contactdto.SubmitInput) (contactdto.SubmitOutput, error)
}

type Tracker interface {
	TrackPageView(path string)
	TrackProjectView(project string)
}

type Opener interface {
	Open(ctx context.Context, target string) error
}

type Deps struct {
	T       Translator
	Content ContentPort
	Contact ContactPort
	Tracker Tracker
	Opener  Opener
	// Reveal gates deferred sections on visibility; nil loads them at mount.
	Reveal *revealservice.Options
	Now    func() time.Time
}

// ─── sections ────────────────────────────────────────────────────────────────

type Section int

const (
	Hero Section = iota
	About
	Skills
	Projects
	Contact
	Footer
	sectionCount
)

var sectionIDs = [sectionCount]string{"hero", "about", "skills", "projects", "contact", "footer"}

// NavSections are the sections reachable from the nav bar, in key order 1-5.
var NavSections = []Section{Hero, About, Skills, Projects, Contact}

var navKeys = [sectionCount]string{"nav.home", "nav.about", "nav.skills", "nav.projects", "nav.contact", "nav.contact"}

// placeholderRows reserves layout space for a section that has not loaded.
var placeholderRows = [sectionCount]int{0, 14, 18, 22, 20, 8}

func (s Section) ID() string { return sectionIDs[s] }

// NavKey is the translation key of the section's nav label.
func (s Section) NavKey() string { return navKeys[s] }

func ParseSection(id string) (Section, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "home" {
		return Hero, true
	}
	for i, name := range sectionIDs {
		if name == id {
			return Section(i), true
		}
	}
	return 0, false
}

// ─── messages ────────────────────────────────────────────────────────────────

// StatusMsg asks the root model to show a status line.
type StatusMsg struct{ Text string }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the scrolling portfolio page. The hero renders eagerly; every
// other section sits behind a reveal loader and shows a placeholder of
// reserved height until it loads.
type Model struct {
	deps      Deps
	styles    theme.Styles
	portfolio contentdomain.Portfolio
	loadErr   error

	observer *revealservice.Observer
	loaders  [sectionCount]*revealservice.Loader
	rects    *[sectionCount]revealdomain.Rect
	lines    []string

	offset int
	width  int
	height int
	pinned Section

	category contentdomain.Category
	selected int
	form     contactForm

	md    *glamour.TermRenderer
	mdKey string
}

func New(deps Deps, styles theme.Styles) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	m := Model{
		deps:     deps,
		styles:   styles,
		rects:    &[sectionCount]revealdomain.Rect{},
		pinned:   -1,
		category: contentdomain.CategoryAll,
		form:     newContactForm(deps.T),
		width:    80,
		height:   24,
	}
	if deps.Content != nil {
		m.portfolio, m.loadErr = deps.Content.Portfolio()
	}
	if deps.Reveal != nil {
		m.observer = revealservice.NewObserver(*deps.Reveal)
	}
	rects := m.rects
	for s := About; s < sectionCount; s++ {
		l := revealservice.NewLoader(m.observer, s.ID(), func() revealdomain.Rect { return rects[s] })
		if deps.Tracker != nil {
			tracker, path := deps.Tracker, "#"+s.ID()
			l.OnLoad(func() { tracker.TrackPageView(path) })
		}
		m.loaders[s] = l
	}
	return m
}

// Mount lays the page out and registers the deferred sections.
func (m *Model) Mount() {
	m.layout()
	for s := About; s < sectionCount; s++ {
		m.loaders[s].Mount()
	}
	m.refresh()
}

// Unmount drops every observation; loaded sections stay loaded.
func (m *Model) Unmount() {
	for s := About; s < sectionCount; s++ {
		m.loaders[s].Unmount()
	}
	if m.observer != nil {
		m.observer.Disconnect()
	}
}

func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.refresh()
}

// Retranslate re-renders the page after a language change.
func (m *Model) Retranslate() {
	m.form.retranslate(m.deps.T)
	m.refresh()
}

func (m Model) Loaded(s Section) bool {
	if s == Hero {
		return true
	}
	return m.loaders[s].Loaded()
}

func (m Model) Offset() int        { return m.offset }
func (m Model) ContentHeight() int { return len(m.lines) }
func (m Model) Editing() bool      { return m.form.editing() }

func (m Model) Fraction() float64 {
	return components.ScrollFraction(m.offset, len(m.lines), m.height)
}

func (m Model) Category() contentdomain.Category { return m.category }

func (m Model) ContactStatus() string { return string(m.form.status) }

// Current is the section the reader is looking at: the last jump target while
// it stays on screen, else the last section starting above the upper third.
func (m Model) Current() Section {
	if m.pinned >= 0 {
		r := m.rects[m.pinned]
		if r.Y < m.offset+m.height && r.Bottom() > m.offset {
			return m.pinned
		}
	}
	cur := Hero
	for s := Hero; s < sectionCount; s++ {
		if m.rects[s].Y <= m.offset+m.height/3 {
			cur = s
		}
	}
	return cur
}

func (m Model) maxOffset() int { return max(len(m.lines)-m.height, 0) }

func (m *Model) ScrollBy(n int) {
	m.pinned = -1
	m.offset = min(max(m.offset+n, 0), m.maxOffset())
	m.refresh()
}

func (m *Model) ScrollTo(offset int) {
	m.pinned = -1
	m.offset = min(max(offset, 0), m.maxOffset())
	m.refresh()
}

// Jump scrolls to the top of s. Sections loading on the way may move s, so
// the target is re-read once after the layout settles.
func (m *Model) Jump(s Section) {
	for range 2 {
		m.offset = min(max(m.rects[s].Y, 0), m.maxOffset())
		m.refresh()
	}
	m.pinned = s
}

// SetCategory selects the projects filter.
func (m *Model) SetCategory(c contentdomain.Category) {
	m.category = c
	m.selected = 0
	m.refresh()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = max(msg.Width, 20), max(msg.Height, 1)
		m.form.setWidth(min(m.width-8, 72))
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ScrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.ScrollBy(3)
		}
		return m, nil

	case submittedMsg:
		cmd := m.form.settle(msg)
		m.refresh()
		return m, cmd

	case clearStatusMsg:
		m.form.clear(msg)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.form.editing() {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		m.ScrollBy(-1)
	case "down", "j":
		m.ScrollBy(1)
	case "pgup", "b":
		m.ScrollBy(-(m.height - 1))
	case "pgdown", " ":
		m.ScrollBy(m.height - 1)
	case "home":
		m.ScrollTo(0)
	case "end":
		m.ScrollTo(m.maxOffset())
	case "1", "2", "3", "4", "5":
		m.Jump(NavSections[int(key[0]-'1')])
	case "left", "right":
		if m.Current() == Projects {
			delta := 1
			if key == "left" {
				delta = -1
			}
			m.SetCategory(m.category.Cycle(delta))
		}
	case "[", "]":
		if n := len(m.visibleProjects()); m.Current() == Projects && n > 0 {
			delta := 1
			if key == "[" {
				delta = -1
			}
			m.selected = ((m.selected+delta)%n + n) % n
			m.refresh()
		}
	case "enter":
		if m.Current() == Projects {
			return m, m.openSelected()
		}
	case "tab":
		if m.Current() == Contact {
			cmd := m.form.focusField(fieldName)
			m.refresh()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.form.blur()
	case "tab":
		cmd = m.form.focusField(m.form.focus + 1)
	case "shift+tab":
		cmd = m.form.focusField(m.form.focus - 1)
	case "ctrl+s":
		cmd = m.form.submit(m.deps.Contact)
	default:
		m.form, cmd = m.form.update(msg)
	}
	m.refresh()
	return m, cmd
}

func (m Model) visibleProjects() []contentdomain.Project {
	return contentdomain.Filter(m.portfolio.Projects, m.category)
}

func (m Model) openSelected() tea.Cmd {
	projects := m.visibleProjects()
	if len(projects) == 0 {
		return nil
	}
	p := projects[min(m.selected, len(projects)-1)]
	target := p.Demo
	if target == "" {
		target = p.GitHub
	}
	opener, tracker := m.deps.Opener, m.deps.Tracker
	title := m.deps.T.T(p.TitleKey())
	return func() tea.Msg {
		if tracker != nil {
			tracker.TrackProjectView(p.Key)
		}
		if target == "" || opener == nil {
			return StatusMsg{Text: title}
		}
		if err := opener.Open(context.Background(), target); err != nil {
			return StatusMsg{Text: fmt.Sprintf("%s: %v", title, err)}
		}
		return StatusMsg{Text: title + " → " + target}
	}
}

// ─── layout ──────────────────────────────────────────────────────────────────

// refresh re-renders the page and re-checks visibility until no further
// section loads.
func (m *Model) refresh() {
	for range sectionCount {
		m.layout()
		if m.observer == nil {
			return
		}
		before := m.loadedCount()
		m.observer.Check(revealdomain.Rect{Y: m.offset, Height: m.height})
		if m.loadedCount() == before {
			return
		}
	}
	m.layout()
}

func (m Model) loadedCount() int {
	n := 0
	for s := About; s < sectionCount; s++ {
		if m.loaders[s].Loaded() {
			n++
		}
	}
	return n
}

func (m *Model) layout() {
	var lines []string
	for s := Hero; s < sectionCount; s++ {
		block := m.renderSection(s)
		m.rects[s] = revealdomain.Rect{Y: len(lines), Height: lipgloss.Height(block)}
		lines = append(lines, strings.Split(block, "\n")...)
	}
	m.lines = lines
	m.offset = min(max(m.offset, 0), m.maxOffset())
}

func (m *Model) renderSection(s Section) string {
	if s != Hero && !m.loaders[s].Loaded() {
		return m.placeholder(s)
	}
	switch s {
	case Hero:
		return m.hero()
	case About:
		return m.about()
	case Skills:
		return m.skills()
	case Projects:
		return m.projects()
	case Contact:
		return m.contact()
	default:
		return m.footer()
	}
}

func (m Model) placeholder(s Section) string {
	text := m.styles.Muted.Render("· · ·  " + m.deps.T.T("tui.placeholder") + "  · · ·")
	return lipgloss.Place(m.width, placeholderRows[s], lipgloss.Center, lipgloss.Center, text)
}

// View renders the rows of the page inside the viewport.
func (m Model) View() string {
	end := min(m.offset+m.height, len(m.lines))
	rows := make([]string, 0, m.height)
	if m.offset < end {
		rows = append(rows, m.lines[m.offset:end]...)
	}
	for len(rows) < m.height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// Render returns the whole page, for output without a viewport.
func (m Model) Render() string {
	return strings.Join(m.lines, "\n")
}
