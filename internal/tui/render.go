package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	var body string
	if m.detail != nil {
		body = m.renderRecipeDetail(*m.detail)
	} else {
		switch m.section {
		case SectionRecipes:
			body = m.renderRecipes()
		case SectionCalculator:
			body = m.renderCalculator()
		case SectionWorkout:
			body = m.renderWorkout()
		case SectionMindfulness:
			body = m.renderMindfulness()
		case SectionContact:
			body = m.renderContact()
		default:
			body = m.renderHome()
		}
	}
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderFooter(),
	))
}

func (m MainModel) renderHeader() string {
	title := CurrentTheme.Header.Render("GreenBite") + " " + CurrentTheme.Dim.Render("v"+versionLabel())
	var tabs []string
	for i, s := range AllSections() {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if m.contentWidth() < config.CompactModeThreshold {
			label = fmt.Sprintf("%d", i+1)
			if s == m.section {
				label += " " + s.Title()
			}
		}
		if s == m.section {
			tabs = append(tabs, CurrentTheme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, CurrentTheme.Tab.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m MainModel) renderFooter() string {
	var status string
	switch {
	case m.err != nil:
		status = CurrentTheme.Error.Render("Error: " + m.err.Error())
	case m.Message != "":
		status = CurrentTheme.Success.Render(m.Message)
	}
	help := m.keys.HelpFor(m.section)
	if m.editing {
		help = "[enter]submit|[tab]next field|[esc]done"
	}
	if m.detail != nil {
		help = "[esc]close"
	}
	help = CurrentTheme.Dim.Render(truncate(help, m.contentWidth()))
	if status == "" {
		return help
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}

// contentWidth is the usable width inside the base margin.
func (m MainModel) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := m.width - 4
	if w < config.MinContentWidth {
		return config.MinContentWidth
	}
	return w
}

// truncate shortens s to width cells, keeping ANSI sequences intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

func wrap(s string, width int) string {
	return ansi.Wordwrap(s, width, "")
}

func (m MainModel) renderField(label string, in string, focused bool) string {
	style := CurrentTheme.Dim
	if focused {
		style = CurrentTheme.Focused
	}
	return style.Render(label) + "\n" + CurrentTheme.Input.Render(in)
}

func bullet(lines []string, prefix func(i int) string) string {
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(prefix(i))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
