package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	ambientdomain "folio/internal/modules/ambient/domain"
	capabilitydto "folio/internal/modules/capability/dto"
	contentdomain "folio/internal/modules/content/domain"
	preferencedto "folio/internal/modules/preference/dto"
	resumedto "folio/internal/modules/resume/dto"
	apperrors "folio/internal/platform/errors"
	"folio/internal/ui/components"
	"folio/internal/ui/theme"
	"folio/internal/ui/views/failed"
	"folio/internal/ui/views/loading"
	"folio/internal/ui/views/page"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// The page view defines its own narrower ports.

type localePort interface {
	T(key string) string
	Language() string
	SetLanguage(lang string) error
	Toggle() string
}

type preferencePort interface {
	Theme(ctx context.Context) preferencedto.ThemeOutput
	SetTheme(ctx context.Context, theme string) (preferencedto.ThemeOutput, error)
	ToggleTheme(ctx context.Context) (preferencedto.ThemeOutput, error)
	SetLanguage(ctx context.Context, lang string) error
}

type capabilityPort interface {
	Describe(ctx context.Context) (capabilitydto.DescribeOutput, error)
}

type resumePort interface {
	Open(ctx context.Context) (resumedto.OpenOutput, error)
}

// AmbientPort drives the particle backdrop. Frames are drawn by the effect's
// own scheduler; the root model only re-renders.
type AmbientPort interface {
	Activate(env ambientdomain.Env) bool
	Deactivate()
	Resize(width, height int)
}

// Backdrop exposes the ambient surface cell by cell.
type Backdrop interface {
	Cell(col, row int) (glyph rune, hex string, ok bool)
	SetBackground(hex string) error
}

type Deps struct {
	Page       page.Deps
	Locale     localePort
	Prefs      preferencePort
	Capability capabilityPort
	Resume     resumePort
	Ambient    AmbientPort
	Backdrop   Backdrop
	// TierChanges receives a value whenever the capability tier changes.
	TierChanges <-chan struct{}
	CellW       int
	CellH       int
	Log         *zap.Logger
}

// ─── stages ──────────────────────────────────────────────────────────────────

type stage int

const (
	stageLoading stage = iota
	stagePage
	stageFailed
)

// chromeRows are the nav, progress and status rows around the page body.
const chromeRows = 3

// ─── async messages ───────────────────────────────────────────────────────────

type describedMsg struct {
	out capabilitydto.DescribeOutput
	err error
}

type tierChangedMsg struct{}

type frameMsg struct{ gen int }

type themeMsg struct {
	out preferencedto.ThemeOutput
	err error
}

type languageSavedMsg struct{ err error }

type cvMsg struct {
	out resumedto.OpenOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Scroll   key.Binding
	Section  key.Binding
	Category key.Binding
	Field    key.Binding
	Submit   key.Binding
	Theme    key.Binding
	Language key.Binding
	CV       key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys(t localePort) keyMap {
	return keyMap{
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", t.T("tui.scroll"))),
		Section:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", t.T("tui.section"))),
		Category: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", t.T("tui.category"))),
		Field:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", t.T("tui.field"))),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", t.T("tui.submit"))),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", t.T("tui.theme"))),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", t.T("tui.language"))),
		CV:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", t.T("tui.cv"))),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", t.T("tui.palette"))),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", t.T("tui.help"))),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", t.T("tui.quit"))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Section, k.Theme, k.Language, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Section, k.CV},
		{k.Category, k.Field, k.Submit},
		{k.Theme, k.Language},
		{k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the loading, page and failure
// stages, the global help overlay, the command palette, the ambient backdrop
// and the pointer overlay. Rendering of the page is delegated to views/page.
type Model struct {
	deps   Deps
	styles theme.Styles
	stage  stage

	loading  loading.Model
	page     page.Model
	failure  error
	boundary *components.Boundary

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	cursor   components.Cursor

	caps      capabilitydto.DescribeOutput
	ambientOn bool
	mounted   capabilitydto.AmbientOutput
	cursorOn  bool
	fps       int
	frameGen  int

	status string
	width  int
	height int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(deps Deps) Model {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.CellW <= 0 {
		deps.CellW = 8
	}
	if deps.CellH <= 0 {
		deps.CellH = 16
	}
	dark := deps.Prefs.Theme(context.Background()).Theme == "dark"
	styles := theme.For(dark)
	if deps.Backdrop != nil {
		_ = deps.Backdrop.SetBackground(styles.Background())
	}
	m := Model{
		deps:     deps,
		styles:   styles,
		stage:    stageLoading,
		loading:  loading.New(deps.Locale, styles),
		boundary: &components.Boundary{},
		keys:     defaultKeys(deps.Locale),
		help:     help.New(),
		palette:  components.NewPalette(styles),
	}
	m.page = m.newPage()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.describeCmd(), m.waitTierCmd())
}

// Failure is the error that moved the model to the failure screen.
func (m Model) Failure() error { return m.failure }

func (m Model) bodyHeight() int { return max(m.height-chromeRows, 1) }

func (m Model) newPage() page.Model {
	p := page.New(m.deps.Page, m.styles)
	if m.width > 0 {
		p, _ = p.Update(tea.WindowSizeMsg{Width: m.width, Height: m.bodyHeight()})
	}
	return p
}

// ─── update ───────────────────────────────────────────────────────────────────

// Update recovers from panics anywhere below it and switches to the failure
// screen. A panic recorded while rendering takes effect on the next message.
func (m Model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	if err := m.boundary.Err(); err != nil && m.stage != stageFailed {
		m.fail(err)
		return m, nil
	}
	defer func() {
		if r := recover(); r != nil {
			m.fail(m.boundary.Catch(r))
			next, cmd = m, nil
		}
	}()
	return m.update(msg)
}

func (m *Model) fail(err error) {
	m.stage = stageFailed
	m.failure = err
	m.showHelp = false
	m.page.Unmount()
	m.stopAmbient()
	m.deps.Log.Error("ui failure", zap.Error(err), zap.ByteString("stack", m.boundary.Stack()))
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(m.width-4, 80))
		m.loading, _ = m.loading.Update(msg)
		m.page, _ = m.page.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()})
		if m.ambientOn {
			m.deps.Ambient.Resize(msg.Width*m.deps.CellW, msg.Height*m.deps.CellH)
		}
		return m, nil

	case loading.TickMsg, spinner.TickMsg:
		if m.stage == stageLoading {
			m.loading, cmd = m.loading.Update(msg)
		}
		return m, cmd

	case loading.DoneMsg:
		if m.stage != stageLoading {
			return m, nil
		}
		m.page.Mount()
		m.stage = stagePage
		return m, m.syncAmbient()

	case describedMsg:
		return m.applyCapabilities(msg)

	case tierChangedMsg:
		return m, tea.Batch(m.describeCmd(), m.waitTierCmd())

	case frameMsg:
		if msg.gen != m.frameGen || !m.ambientOn {
			return m, nil
		}
		return m, m.frameCmd()

	case themeMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.applyStyles(theme.For(msg.out.Theme == "dark"))
		m.status = m.deps.Locale.T("tui.themeSaved")
		return m, nil

	case languageSavedMsg:
		if msg.err != nil {
			m.deps.Log.Warn("language not saved", zap.Error(msg.err))
		}
		return m, nil

	case cvMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrNotFound), errors.Is(msg.err, apperrors.ErrNotConfigured):
			m.status = m.deps.Locale.T("tui.cvMissing")
		case msg.err != nil:
			m.status = msg.err.Error()
		default:
			m.status = m.deps.Locale.T("hero.downloadCV") + " → " + msg.out.Path
		}
		return m, nil

	case page.StatusMsg:
		m.status = msg.Text
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = ""
		return m, nil

	case tea.MouseMsg:
		m.cursor = m.cursor.Update(msg)
		if m.stage == stagePage && !m.palette.Visible() && !m.showHelp {
			m.page, cmd = m.page.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	// Everything else belongs to the open palette or the page: cursor blinks,
	// contact form results and their status timers.
	var cmds []tea.Cmd
	if m.palette.Visible() {
		m.palette, cmd = m.palette.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.page, cmd = m.page.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch m.stage {
	case stageFailed:
		switch msg.String() {
		case "r":
			return m.reload()
		case "g":
			return m.goHome()
		case "q":
			return m.quit()
		}
		return m, nil
	case stageLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	}

	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	// Yield every key to the contact form while a field has focus.
	if m.page.Editing() {
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Palette):
		return m, m.palette.Open()
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleThemeCmd()
	case key.Matches(msg, m.keys.Language):
		return m.toggleLanguage()
	case key.Matches(msg, m.keys.CV):
		return m, m.openCVCmd()
	default:
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── stage transitions ───────────────────────────────────────────────────────

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.stopAmbient()
	m.page.Unmount()
	return m, tea.Quit
}

// reload starts over from the loading screen with fresh page state.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.boundary.Reset()
	m.failure = nil
	m.status = ""
	m.page = m.newPage()
	m.loading = loading.New(m.deps.Locale, m.styles)
	m.loading, _ = m.loading.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.stage = stageLoading
	return m, m.loading.Init()
}

// goHome shows a fresh page at the top without the loading screen.
func (m Model) goHome() (tea.Model, tea.Cmd) {
	m.boundary.Reset()
	m.failure = nil
	m.status = ""
	m.page = m.newPage()
	m.page.Mount()
	m.stage = stagePage
	return m, m.syncAmbient()
}

func (m *Model) applyStyles(s theme.Styles) {
	m.styles = s
	m.page.SetStyles(s)
	m.palette.SetStyles(s)
	if m.deps.Backdrop != nil {
		if err := m.deps.Backdrop.SetBackground(s.Background()); err != nil {
			m.deps.Log.Warn("backdrop background", zap.Error(err))
		}
	}
}

func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	lang := m.deps.Locale.Toggle()
	m.retranslate()
	return m, m.saveLanguageCmd(lang)
}

func (m *Model) retranslate() {
	m.keys = defaultKeys(m.deps.Locale)
	m.page.Retranslate()
}

// applyCapabilities records the capability report. The backdrop follows it
// once the page is showing.
func (m Model) applyCapabilities(msg describedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.deps.Log.Warn("capability describe", zap.Error(msg.err))
		return m, nil
	}
	m.caps = msg.out
	m.cursorOn = msg.out.Cursor
	if m.stage != stagePage {
		return m, nil
	}
	return m, m.syncAmbient()
}

// syncAmbient mounts, remounts or unmounts the backdrop to match the last
// capability report. A mounted backdrop with an unchanged budget is left
// running with its particles.
func (m *Model) syncAmbient() tea.Cmd {
	want := m.caps.Ambient
	if !want.Enabled || m.deps.Ambient == nil {
		m.stopAmbient()
		return nil
	}
	if m.ambientOn && m.mounted == want {
		return nil
	}
	m.stopAmbient()
	cols, rows := m.width, m.height
	if cols <= 0 {
		cols = m.caps.Signals.ViewportWidth / m.deps.CellW
	}
	if rows <= 0 {
		rows = 24
	}
	env := ambientdomain.Env{
		Width:         cols * m.deps.CellW,
		Height:        rows * m.deps.CellH,
		Cores:         m.caps.Signals.Cores,
		ReducedMotion: m.caps.Signals.ReducedMotion,
	}
	if !m.deps.Ambient.Activate(env) {
		return nil
	}
	m.ambientOn = true
	m.mounted = want
	m.fps = max(want.FPS, 1)
	return m.frameCmd()
}

// stopAmbient cancels the frame loop and invalidates pending frame ticks.
func (m *Model) stopAmbient() {
	m.frameGen++
	if !m.ambientOn {
		return
	}
	m.deps.Ambient.Deactivate()
	m.ambientOn = false
	m.mounted = capabilitydto.AmbientOutput{}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = failed.Render(m.deps.Locale, m.styles, m.boundary.Catch(r), m.width, m.height)
		}
	}()

	switch m.stage {
	case stageLoading:
		return m.loading.View()
	case stageFailed:
		return failed.Render(m.deps.Locale, m.styles, m.failure, m.width, m.height)
	}

	bodyH := m.bodyHeight()
	var body string
	switch {
	case m.showHelp:
		body = lipgloss.NewStyle().Width(m.width).Height(bodyH).Padding(1, 2).
			Render(m.help.FullHelpView(m.keys.FullHelp()))
	case m.palette.Visible():
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		body = m.page.View()
		if m.ambientOn && m.deps.Backdrop != nil {
			body = components.Compose(body, m.width, 2, m.deps.Backdrop.Cell)
		}
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(),
		components.ProgressBar(m.width, m.page.Fraction(), m.styles),
		body,
		m.renderStatusBar(),
	)
	if m.cursorOn {
		screen = m.cursor.Overlay(screen, m.styles)
	}
	return screen
}

func (m Model) renderNav() string {
	t := m.deps.Locale.T
	current := m.page.Current()
	if current == page.Footer {
		current = page.Contact
	}
	parts := make([]string, 0, len(page.NavSections))
	for i, s := range page.NavSections {
		label := fmt.Sprintf(" %d %s ", i+1, t(s.NavKey()))
		if s == current {
			parts = append(parts, m.styles.Hot.Render(label))
		} else {
			parts = append(parts, m.styles.Muted.Render(label))
		}
	}
	left := m.styles.Title.Render(" AS ") + " " + strings.Join(parts, "")
	icon := "☀"
	if m.styles.Dark {
		icon = "☾"
	}
	right := strings.ToUpper(m.deps.Locale.Language()) + " " + icon + " "
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return m.styles.Bar.Width(m.width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderStatusBar() string {
	t := m.deps.Locale.T
	left := " " + m.status
	hints := []key.Binding{m.keys.Scroll, m.keys.Section, m.keys.Theme, m.keys.Language, m.keys.Palette, m.keys.Help, m.keys.Quit}
	switch {
	case m.page.Editing():
		hints = []key.Binding{m.keys.Field, m.keys.Submit}
		left += m.styles.Muted.Render("  esc")
	case m.page.Current() == page.Projects:
		hints = append([]key.Binding{m.keys.Category}, hints...)
	}
	pieces := make([]string, 0, len(hints))
	for _, b := range hints {
		h := b.Help()
		pieces = append(pieces, m.styles.Hot.Render(h.Key)+" "+m.styles.Muted.Render(h.Desc))
	}
	right := strings.Join(pieces, "  ") + " "
	if m.status == "" && m.caps.Tier != "" {
		left = " " + m.styles.Muted.Render(t("tui.tier")+": "+m.caps.Tier)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = ansi.Truncate(right, max(m.width-lipgloss.Width(left)-1, 0), "…")
		gap = max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	}
	return m.styles.Bar.Width(m.width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	arg := strings.Join(parts[1:], " ")

	switch parts[0] {
	case "goto":
		s, ok := page.ParseSection(arg)
		if !ok {
			m.status = "unknown section: " + arg
			return m, nil
		}
		if m.stage == stagePage {
			m.page.Jump(s)
		}
		m.status = ""
	case "theme:toggle":
		return m, m.toggleThemeCmd()
	case "theme:set":
		return m, m.setThemeCmd(arg)
	case "lang:toggle":
		return m.toggleLanguage()
	case "lang:set":
		if err := m.deps.Locale.SetLanguage(arg); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.retranslate()
		return m, m.saveLanguageCmd(m.deps.Locale.Language())
	case "projects:filter":
		c, err := contentdomain.ParseCategory(arg)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.page.SetCategory(c)
		if m.stage == stagePage {
			m.page.Jump(page.Projects)
		}
		m.status = m.deps.Locale.T(c.LabelKey())
	case "cv:open":
		return m, m.openCVCmd()
	case "tier":
		m.status = describeTier(m.caps)
		return m, m.describeCmd()
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func describeTier(out capabilitydto.DescribeOutput) string {
	if out.Tier == "" {
		return "tier: pending"
	}
	s := fmt.Sprintf("tier %s · %dpx · %d cores · %s", out.Tier, out.Signals.ViewportWidth, out.Signals.Cores, out.Signals.Network)
	if out.Ambient.Enabled {
		s += fmt.Sprintf(" · %d particles @ %dfps", out.Ambient.Particles, out.Ambient.FPS)
	}
	return s
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) describeCmd() tea.Cmd {
	capability := m.deps.Capability
	if capability == nil {
		return nil
	}
	return func() tea.Msg {
		out, err := capability.Describe(context.Background())
		return describedMsg{out: out, err: err}
	}
}

func (m Model) waitTierCmd() tea.Cmd {
	ch := m.deps.TierChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return tierChangedMsg{}
	}
}

func (m Model) frameCmd() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(time.Second/time.Duration(max(m.fps, 1)), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m Model) toggleThemeCmd() tea.Cmd {
	prefs := m.deps.Prefs
	return func() tea.Msg {
		out, err := prefs.ToggleTheme(context.Background())
		return themeMsg{out: out, err: err}
	}
}

func (m Model) setThemeCmd(name string) tea.Cmd {
	prefs := m.deps.Prefs
	return func() tea.Msg {
		out, err := prefs.SetTheme(context.Background(), name)
		return themeMsg{out: out, err: err}
	}
}

func (m Model) saveLanguageCmd(lang string) tea.Cmd {
	prefs := m.deps.Prefs
	return func() tea.Msg {
		return languageSavedMsg{err: prefs.SetLanguage(context.Background(), lang)}
	}
}

func (m Model) openCVCmd() tea.Cmd {
	resume := m.deps.Resume
	if resume == nil {
		return func() tea.Msg { return cvMsg{err: apperrors.ErrNotConfigured} }
	}
	return func() tea.Msg {
		out, err := resume.Open(context.Background())
		return cvMsg{out: out, err: err}
	}
}
