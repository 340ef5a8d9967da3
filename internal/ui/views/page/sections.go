package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	contactdomain "folio/internal/modules/contact/domain"
	contentdomain "folio/internal/modules/content/domain"
)

const skillBarWidth = 20

func (m Model) t(key string) string { return m.deps.T.T(key) }

func (m Model) block(parts ...string) string {
	return lipgloss.NewStyle().Width(m.width).Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) inner() int { return max(m.width-4, 16) }

func (m Model) wrap(text string) string {
	return lipgloss.NewStyle().Width(min(m.inner(), 96)).Render(text)
}

func (m Model) header(titleKey, subtitleKey string) string {
	rule := m.styles.Accent.Render(strings.Repeat("─", 8))
	if subtitleKey == "" {
		return lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render(m.t(titleKey)), rule)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.t(titleKey)), rule, m.styles.Muted.Render(m.t(subtitleKey)))
}

func (m Model) key(k, label string) string {
	return m.styles.Hot.Render("["+k+"]") + " " + label
}

func (m Model) socials() string {
	parts := make([]string, 0, len(m.portfolio.Socials))
	for _, s := range m.portfolio.Socials {
		parts = append(parts, m.styles.Accent.Render(s.Name)+" "+m.styles.Muted.Render(s.URL))
	}
	return strings.Join(parts, "\n")
}

func (m Model) name() string {
	if m.portfolio.Name != "" {
		return m.portfolio.Name
	}
	return m.t("hero.name")
}

func (m Model) hero() string {
	intro := fmt.Sprintf("%s %s, %s %s %s.",
		m.t("hero.description"),
		m.styles.Accent.Render(m.t("hero.webDev")),
		m.styles.Accent.Render(m.t("hero.appDev")),
		m.t("common.and"),
		m.styles.Accent.Render(m.t("hero.dataAnalysis")),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render(m.t("hero.greeting")),
		m.styles.Title.Render(m.name()),
		"",
		m.wrap(intro),
		m.styles.Muted.Render(m.t("hero.location")),
		"",
		m.key("c", m.t("hero.downloadCV"))+"   "+m.key("5", m.t("hero.cta"))+"   "+m.key("4", m.t("hero.viewProjects")),
		"",
		m.socials(),
	)
	if m.loadErr != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.styles.Danger.Render(m.loadErr.Error()))
	}
	// The hero fills the first screen.
	return lipgloss.Place(m.width, max(m.height, lipgloss.Height(body)+2), lipgloss.Left, lipgloss.Center,
		lipgloss.NewStyle().Padding(0, 2).Render(body))
}

func (m Model) aboutMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n## %s\n\n", m.t("about.intro"), m.t("about.description"), m.t("about.myInterests"))
	for _, key := range m.portfolio.Interests {
		fmt.Fprintf(&b, "- **%s**: %s\n", m.t("about.interests."+key+".title"), m.t("about.interests."+key+".description"))
	}
	if body := strings.TrimSpace(m.portfolio.About); body != "" {
		b.WriteString("\n" + body + "\n")
	}
	return b.String()
}

func (m *Model) renderer() *glamour.TermRenderer {
	key := fmt.Sprintf("%s/%d", m.styles.GlamourStyle(), m.inner())
	if m.md != nil && m.mdKey == key {
		return m.md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.styles.GlamourStyle()),
		glamour.WithWordWrap(min(m.inner(), 96)),
	)
	if err != nil {
		return nil
	}
	m.md, m.mdKey = r, key
	return r
}

func (m *Model) about() string {
	md := m.aboutMarkdown()
	body := m.wrap(md)
	if r := m.renderer(); r != nil {
		if out, err := r.Render(md); err == nil {
			body = strings.Trim(out, "\n")
		}
	}
	return m.block(m.header("about.title", ""), body)
}

func (m Model) skillRow(s contentdomain.Skill) string {
	filled := s.Level * skillBarWidth / 100
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(strings.Repeat("█", filled)) +
		m.styles.Muted.Render(strings.Repeat("░", skillBarWidth-filled))
	return fmt.Sprintf("%-12s %s %3d%%", s.Name, bar, s.Level)
}

func (m Model) skills() string {
	groups := contentdomain.GroupSkills(m.portfolio.Skills)
	cols := make([]string, 0, len(groups))
	for _, g := range groups {
		rows := []string{m.styles.Heading.Render(m.t(g.LabelKey()))}
		for _, s := range g.Skills {
			rows = append(rows, m.skillRow(s))
		}
		cols = append(cols, m.styles.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}
	var grid string
	if total := len(cols) * (lipgloss.Width(firstOr(cols)) + 1); total <= m.inner() {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, spaced(cols)...)
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Left, cols...)
	}
	return m.block(m.header("skills.title", "skills.subtitle"), "", grid)
}

func firstOr(cols []string) string {
	if len(cols) == 0 {
		return ""
	}
	return cols[0]
}

func spaced(cols []string) []string {
	out := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}

func (m Model) categoryTabs() string {
	tabs := make([]string, 0, len(contentdomain.Categories))
	for _, c := range contentdomain.Categories {
		label := m.t(c.LabelKey())
		if c == m.category {
			tabs = append(tabs, m.styles.Hot.Render("["+label+"]"))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(" "+label+" "))
		}
	}
	return m.wrap(strings.Join(tabs, " "))
}

func (m Model) projectCard(p contentdomain.Project, selected bool) string {
	title := m.styles.Title.Render(m.t(p.TitleKey()))
	if p.Featured {
		title += "  " + m.styles.Hot.Render("★ "+m.t("projects.featured"))
	}
	rows := []string{
		title,
		lipgloss.NewStyle().Width(min(m.inner()-4, 92)).Render(m.t(p.DescriptionKey())),
		m.styles.Accent.Render(strings.Join(p.Technologies, " · ")),
	}
	if p.GitHub != "" {
		rows = append(rows, m.styles.Muted.Render(m.t("projects.viewCode")+": "+p.GitHub))
	}
	if p.Demo != "" {
		rows = append(rows, m.styles.Muted.Render(m.t("projects.viewDemo")+": "+p.Demo))
	}
	style := m.styles.Pane
	if selected {
		style = m.styles.PaneActive
	}
	return style.Width(min(m.inner()-2, 96)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) projects() string {
	parts := []string{m.header("projects.title", "projects.subtitle"), "", m.categoryTabs(), ""}
	visible := m.visibleProjects()
	if len(visible) == 0 {
		parts = append(parts, m.styles.Muted.Render(m.t("projects.noProjects")))
	}
	for i, p := range visible {
		parts = append(parts, m.projectCard(p, i == m.selected))
	}
	parts = append(parts, m.styles.Muted.Render("←/→ "+m.t("tui.category")+"   [ ] ↵"))
	return m.block(parts...)
}

func (m Model) field(labelKey string, view string, focused bool) string {
	label := m.styles.Muted.Render(m.t(labelKey))
	if focused {
		label = m.styles.Heading.Render(m.t(labelKey))
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, view)
}

func (m Model) contactStatus() string {
	switch m.form.status {
	case contactdomain.StatusSending:
		return m.styles.Muted.Render(m.t("contact.form.sending"))
	case contactdomain.StatusSuccess:
		return m.styles.Success.Render("✓ " + m.t("contact.form.success"))
	case contactdomain.StatusError:
		text := "✗ " + m.t("contact.form.error")
		if m.form.errText != "" {
			text += "\n" + m.form.errText
		}
		return m.styles.Danger.Render(text)
	}
	return ""
}

func (m Model) contact() string {
	send := m.t("contact.form.send")
	if m.form.status == contactdomain.StatusSending {
		send = m.t("contact.form.sending")
	}
	hint := m.key("tab", m.t("tui.field"))
	if m.form.editing() {
		hint = m.key("tab", m.t("tui.field")) + "   " + m.key("ctrl+s", send) + "   " + m.key("esc", "")
	}
	form := lipgloss.JoinVertical(lipgloss.Left,
		m.field("contact.form.name", m.form.name.View(), m.form.focus == fieldName),
		"",
		m.field("contact.form.emailLabel", m.form.email.View(), m.form.focus == fieldEmail),
		"",
		m.field("contact.form.messageLabel", m.form.message.View(), m.form.focus == fieldMessage),
		"",
		hint,
		m.contactStatus(),
	)
	info := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render(m.t("contact.locationTitle")),
		m.t("contact.info.location"),
		"",
		m.styles.Heading.Render(m.t("contact.statusTitle")),
		m.styles.Success.Render("● ")+m.t("contact.info.availability"),
		lipgloss.NewStyle().Width(min(m.inner()-4, 60)).Render(m.styles.Muted.Render(m.t("contact.availabilityDescription"))),
		"",
		m.styles.Accent.Render(m.portfolio.Email),
	)
	return m.block(m.header("contact.title", "contact.subtitle"), "",
		m.styles.Pane.Render(form), "", m.styles.Pane.Render(info))
}

func (m Model) footer() string {
	links := make([]string, 0, len(NavSections))
	for i, s := range NavSections {
		links = append(links, fmt.Sprintf("%d %s", i+1, m.t(s.NavKey())))
	}
	follow := make([]string, 0, len(m.portfolio.Socials))
	for _, s := range m.portfolio.Socials {
		follow = append(follow, s.Name)
	}
	return m.block(
		m.styles.Muted.Render(strings.Repeat("─", min(m.inner(), 96))),
		m.styles.Title.Render(m.name()),
		m.wrap(m.t("footer.description")),
		"",
		m.styles.Heading.Render(m.t("footer.quickLinks"))+"  "+strings.Join(links, " · "),
		m.styles.Heading.Render(m.t("footer.followMe"))+"  "+strings.Join(follow, " · "),
		"",
		m.styles.Muted.Render(fmt.Sprintf("© %d %s. %s", m.deps.Now().Year(), m.name(), m.t("footer.copyright")))+
			"   "+m.key("home", "↑ "+m.t("common.backToTop")),
	)
}
