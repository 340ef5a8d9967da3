package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	ambientdomain "folio/internal/modules/ambient/domain"
	capabilitydto "folio/internal/modules/capability/dto"
	contentout "folio/internal/modules/content/adapter/out"
	contentdomain "folio/internal/modules/content/domain"
	contentservice "folio/internal/modules/content/service"
	preferencedto "folio/internal/modules/preference/dto"
	resumedto "folio/internal/modules/resume/dto"
	apperrors "folio/internal/platform/errors"
	"folio/internal/ui/components"
	"folio/internal/ui/views/loading"
	"folio/internal/ui/views/page"
)

type fakeLocale struct {
	lang    string
	panicOn string
}

func (f *fakeLocale) T(key string) string {
	if f.panicOn != "" && key == f.panicOn {
		panic("boom: " + key)
	}
	return key
}

func (f *fakeLocale) Language() string { return f.lang }

func (f *fakeLocale) SetLanguage(lang string) error {
	if lang != "en" && lang != "es" {
		return apperrors.ErrInvalidInput
	}
	f.lang = lang
	return nil
}

func (f *fakeLocale) Toggle() string {
	if f.lang == "en" {
		f.lang = "es"
	} else {
		f.lang = "en"
	}
	return f.lang
}

type fakePrefs struct {
	theme string
	lang  string
}

func (f *fakePrefs) Theme(context.Context) preferencedto.ThemeOutput {
	return preferencedto.ThemeOutput{Theme: f.theme}
}

func (f *fakePrefs) SetTheme(_ context.Context, theme string) (preferencedto.ThemeOutput, error) {
	if theme != "light" && theme != "dark" {
		return preferencedto.ThemeOutput{}, apperrors.ErrInvalidInput
	}
	f.theme = theme
	return preferencedto.ThemeOutput{Theme: theme}, nil
}

func (f *fakePrefs) ToggleTheme(ctx context.Context) (preferencedto.ThemeOutput, error) {
	if f.theme == "dark" {
		return f.SetTheme(ctx, "light")
	}
	return f.SetTheme(ctx, "dark")
}

func (f *fakePrefs) SetLanguage(_ context.Context, lang string) error {
	f.lang = lang
	return nil
}

type fakeResume struct{ err error }

func (f fakeResume) Open(context.Context) (resumedto.OpenOutput, error) {
	return resumedto.OpenOutput{Path: "/tmp/cv.pdf"}, f.err
}

type fakeAmbient struct {
	envs        []ambientdomain.Env
	deactivated int
	resized     [2]int
}

func (f *fakeAmbient) Activate(env ambientdomain.Env) bool {
	f.envs = append(f.envs, env)
	return true
}

func (f *fakeAmbient) Deactivate()              { f.deactivated++ }
func (f *fakeAmbient) Resize(width, height int) { f.resized = [2]int{width, height} }

type fakeBackdrop struct{ backgrounds []string }

func (f *fakeBackdrop) Cell(col, row int) (rune, string, bool) {
	if col == 0 {
		return '⠁', "#777777", true
	}
	return 0, "", false
}

func (f *fakeBackdrop) SetBackground(hex string) error {
	f.backgrounds = append(f.backgrounds, hex)
	return nil
}

type fixture struct {
	locale   *fakeLocale
	prefs    *fakePrefs
	ambient  *fakeAmbient
	backdrop *fakeBackdrop
	tiers    chan struct{}
}

func newFixture(t *testing.T, resume resumePort) (fixture, Model) {
	t.Helper()
	f := fixture{
		locale:   &fakeLocale{lang: "en"},
		prefs:    &fakePrefs{theme: "light"},
		ambient:  &fakeAmbient{},
		backdrop: &fakeBackdrop{},
		tiers:    make(chan struct{}, 1),
	}
	m := NewModel(Deps{
		Page: page.Deps{
			T:       f.locale,
			Content: contentservice.NewContentService(contentout.NewEmbeddedPortfolio(), nil),
		},
		Locale:      f.locale,
		Prefs:       f.prefs,
		Resume:      resume,
		Ambient:     f.ambient,
		Backdrop:    f.backdrop,
		TierChanges: f.tiers,
	})
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return f, m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func stepCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestLoadingThenPage(t *testing.T) {
	_, m := newFixture(t, nil)
	if m.stage != stageLoading {
		t.Fatalf("expected loading stage first")
	}
	if !strings.Contains(m.View(), "common.loadingPortfolio") {
		t.Fatalf("loading screen must show the first loading text")
	}
	m = step(t, m, loading.DoneMsg{})
	if m.stage != stagePage {
		t.Fatalf("expected page stage after loading")
	}
	view := m.View()
	for _, want := range []string{"nav.home", "hero.greeting", "tui.scroll"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	if got := len(strings.Split(view, "\n")); got != 30 {
		t.Fatalf("expected 30 rows, got %d", got)
	}
}

func TestThemeToggleRestylesAndSaves(t *testing.T) {
	f, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})
	m, cmd := stepCmd(t, m, runes("t"))
	if cmd == nil {
		t.Fatalf("t must return a theme command")
	}
	m = step(t, m, cmd())
	if !m.styles.Dark || f.prefs.theme != "dark" {
		t.Fatalf("theme not toggled to dark")
	}
	if m.status != "tui.themeSaved" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if n := len(f.backdrop.backgrounds); n != 2 || f.backdrop.backgrounds[1] != m.styles.Background() {
		t.Fatalf("backdrop background not updated: %v", f.backdrop.backgrounds)
	}
}

func TestLanguageToggleIsPersisted(t *testing.T) {
	f, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})
	m, cmd := stepCmd(t, m, runes("l"))
	if f.locale.lang != "es" || cmd == nil {
		t.Fatalf("l must toggle the language")
	}
	m = step(t, m, cmd())
	if f.prefs.lang != "es" {
		t.Fatalf("language not persisted")
	}
	if !strings.Contains(m.View(), "ES") {
		t.Fatalf("nav must show the active language")
	}
}

func TestCapabilitiesDriveAmbientAndCursor(t *testing.T) {
	f, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})
	m, cmd := stepCmd(t, m, describedMsg{out: capabilitydto.DescribeOutput{
		Tier:    "high",
		Signals: capabilitydto.SignalsOutput{ViewportWidth: 800, Cores: 8},
		Cursor:  true,
		Ambient: capabilitydto.AmbientOutput{Enabled: true, Particles: 50, FPS: 60, Connections: true},
	}})
	if !m.ambientOn || !m.cursorOn || cmd == nil {
		t.Fatalf("high tier must mount the backdrop and the cursor")
	}
	if len(f.ambient.envs) != 1 || f.ambient.envs[0].Width != 800 || f.ambient.envs[0].Height != 480 || f.ambient.envs[0].Cores != 8 {
		t.Fatalf("unexpected env %+v", f.ambient.envs)
	}
	if !strings.Contains(m.View(), "⠁") {
		t.Fatalf("backdrop cells must be composited into the page")
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if f.ambient.resized != [2]int{960, 640} {
		t.Fatalf("resize not forwarded: %v", f.ambient.resized)
	}
	stale := m.frameGen - 1
	if _, cmd := stepCmd(t, m, frameMsg{gen: stale}); cmd != nil {
		t.Fatalf("stale frame must not re-arm")
	}

	m = step(t, m, describedMsg{out: capabilitydto.DescribeOutput{Tier: "minimal"}})
	if m.ambientOn || m.cursorOn || f.ambient.deactivated != 1 {
		t.Fatalf("minimal tier must unmount the backdrop")
	}
}

func TestTierChangeReDescribes(t *testing.T) {
	f, m := newFixture(t, nil)
	cmd := m.waitTierCmd()
	f.tiers <- struct{}{}
	if _, ok := cmd().(tierChangedMsg); !ok {
		t.Fatalf("expected tier change message")
	}
	close(f.tiers)
	if msg := m.waitTierCmd()(); msg != nil {
		t.Fatalf("closed channel must stop waiting, got %T", msg)
	}
}

func highTier(particles int) describedMsg {
	return describedMsg{out: capabilitydto.DescribeOutput{
		Tier:    "high",
		Signals: capabilitydto.SignalsOutput{ViewportWidth: 800, Cores: 8},
		Ambient: capabilitydto.AmbientOutput{Enabled: true, Particles: particles, FPS: 60, Connections: true},
	}}
}

func TestUpdatePanicShowsFailureAndRecovers(t *testing.T) {
	f, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})
	m = step(t, m, highTier(50))
	if !m.ambientOn || len(f.ambient.envs) != 1 {
		t.Fatalf("backdrop must be mounted before the failure")
	}
	gen := m.frameGen
	f.locale.panicOn = "tui.themeSaved"
	m = step(t, m, themeMsg{out: preferencedto.ThemeOutput{Theme: "dark"}})
	if m.stage != stageFailed || m.Failure() == nil {
		t.Fatalf("panic in update must switch to the failure stage")
	}
	if m.ambientOn || f.ambient.deactivated != 1 {
		t.Fatalf("failure must unmount the backdrop: on=%v deactivated=%d", m.ambientOn, f.ambient.deactivated)
	}
	if _, cmd := stepCmd(t, m, frameMsg{gen: gen}); cmd != nil {
		t.Fatalf("frame ticks must stop after the failure")
	}
	f.locale.panicOn = ""
	if !strings.Contains(m.View(), "error.title") {
		t.Fatalf("failure view expected")
	}
	if step(t, m, runes("x")).stage != stageFailed {
		t.Fatalf("failure stage must not recover on its own")
	}

	home, cmd := stepCmd(t, m, runes("g"))
	if home.stage != stagePage || home.page.Offset() != 0 || home.Failure() != nil {
		t.Fatalf("g must show a fresh page at the top")
	}
	if !home.ambientOn || len(f.ambient.envs) != 2 || cmd == nil {
		t.Fatalf("g must seed a fresh backdrop, activations=%d", len(f.ambient.envs))
	}

	reload, cmd := stepCmd(t, m, runes("r"))
	if reload.stage != stageLoading || cmd == nil {
		t.Fatalf("r must restart from the loading screen")
	}
	if reload.ambientOn || len(f.ambient.envs) != 2 {
		t.Fatalf("backdrop must wait for the loading screen to finish")
	}
	reload = step(t, reload, loading.DoneMsg{})
	if !reload.ambientOn || len(f.ambient.envs) != 3 {
		t.Fatalf("backdrop must mount again after reload, activations=%d", len(f.ambient.envs))
	}
}

func TestAmbientMountsAfterLoadingAndKeepsParticles(t *testing.T) {
	f, m := newFixture(t, nil)
	m, cmd := stepCmd(t, m, highTier(50))
	if m.ambientOn || len(f.ambient.envs) != 0 || cmd != nil {
		t.Fatalf("backdrop must not mount under the loading screen")
	}
	m, cmd = stepCmd(t, m, loading.DoneMsg{})
	if !m.ambientOn || len(f.ambient.envs) != 1 || cmd == nil {
		t.Fatalf("backdrop must mount when the page shows")
	}

	gen := m.frameGen
	m, cmd = stepCmd(t, m, highTier(50))
	if len(f.ambient.envs) != 1 || cmd != nil || m.frameGen != gen {
		t.Fatalf("same budget must keep the running particle set")
	}
	m = step(t, m, components.PaletteSubmitMsg{Input: "tier"})
	if len(f.ambient.envs) != 1 {
		t.Fatalf("tier command must not reseed the backdrop")
	}

	m, cmd = stepCmd(t, m, highTier(30))
	if len(f.ambient.envs) != 2 || f.ambient.deactivated != 1 || cmd == nil || m.frameGen == gen {
		t.Fatalf("budget change must remount: activations=%d deactivated=%d", len(f.ambient.envs), f.ambient.deactivated)
	}
}

func TestViewPanicIsCaughtOnNextUpdate(t *testing.T) {
	f, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})
	f.locale.panicOn = "nav.home"
	if !strings.Contains(m.View(), "error.title") {
		t.Fatalf("view panic must render the failure screen")
	}
	f.locale.panicOn = ""
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.stage != stageFailed {
		t.Fatalf("next update must switch to the failure stage")
	}
}

func TestOpenCVMissing(t *testing.T) {
	_, m := newFixture(t, fakeResume{err: apperrors.ErrNotFound})
	m = step(t, m, loading.DoneMsg{})
	m, cmd := stepCmd(t, m, runes("c"))
	m = step(t, m, cmd())
	if m.status != "tui.cvMissing" {
		t.Fatalf("unexpected status %q", m.status)
	}

	_, found := newFixture(t, fakeResume{})
	found = step(t, found, loading.DoneMsg{})
	found, cmd = stepCmd(t, found, runes("c"))
	found = step(t, found, cmd())
	if !strings.Contains(found.status, "/tmp/cv.pdf") {
		t.Fatalf("unexpected status %q", found.status)
	}
}

func TestPaletteCommands(t *testing.T) {
	f, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})

	m = step(t, m, components.PaletteSubmitMsg{Input: "projects:filter web"})
	if m.page.Category() != contentdomain.CategoryWeb || m.page.Current() != page.Projects {
		t.Fatalf("filter must select web and jump to projects")
	}
	m = step(t, m, components.PaletteSubmitMsg{Input: "goto contact"})
	if m.page.Current() != page.Contact {
		t.Fatalf("goto must jump, current=%s", m.page.Current().ID())
	}
	m, cmd := stepCmd(t, m, components.PaletteSubmitMsg{Input: "theme:set dark"})
	m = step(t, m, cmd())
	if !m.styles.Dark {
		t.Fatalf("theme:set dark not applied")
	}
	m, _ = stepCmd(t, m, components.PaletteSubmitMsg{Input: "lang:set es"})
	if f.locale.lang != "es" {
		t.Fatalf("lang:set not applied")
	}
	m = step(t, m, components.PaletteSubmitMsg{Input: "lang:set fr"})
	if f.locale.lang != "es" || m.status == "" {
		t.Fatalf("invalid language must keep the current one and report")
	}
	m = step(t, m, components.PaletteSubmitMsg{Input: "dance"})
	if !strings.Contains(m.status, "unknown command") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestEditingKeepsKeysInForm(t *testing.T) {
	_, m := newFixture(t, nil)
	m = step(t, m, loading.DoneMsg{})
	m = step(t, m, components.PaletteSubmitMsg{Input: "goto contact"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.page.Editing() {
		t.Fatalf("tab in contact must focus the form")
	}
	m = step(t, m, runes("q"))
	m = step(t, m, runes("t"))
	if !m.page.Editing() || m.styles.Dark {
		t.Fatalf("keys must reach the form while editing")
	}
	if m.showHelp {
		t.Fatalf("help must not open while editing")
	}
}
