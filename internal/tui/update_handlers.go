package tui

import (
	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/database"
	"github.com/akyairhashvil/greenbite/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case workoutTickMsg:
		return m.handleWorkoutTick(msg)
	case meditationTickMsg:
		return m.handleMeditationTick(msg)
	case breathTickMsg:
		return m.handleBreathTick(msg)
	case sloganTickMsg:
		m.slogans.Next()
		return m, sloganTick()
	}

	if m.editing {
		fields := m.inputs()
		if m.field < len(fields) {
			updated, cmd := fields[m.field].Update(msg)
			*fields[m.field] = updated
			return m, cmd
		}
	}
	return m, nil
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) MainModel {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.MacroBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 3
		}
		m.bar.Width = util.Clamp(target, 10, config.MacroBarWidth)
	}
	return m
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Transient status clears on the next key press.
	m.err = nil
	m.Message = ""

	if m.detail != nil {
		switch key {
		case "esc", "enter", "q", "backspace":
			m.detail = nil
		}
		return m, nil
	}
	if m.editing {
		return m.handleEditingKey(msg)
	}
	next, cmd, _ := m.keys.Handle(m, key)
	return next, cmd
}

func (m MainModel) handleEditingKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	fields := m.inputs()
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "tab", "down":
		return m.startEditing(util.Wrap(m.field+1, len(fields)))
	case "shift+tab", "up":
		return m.startEditing(util.Wrap(m.field-1, len(fields)))
	case "enter":
		return m.submitSection()
	}

	updated, cmd := fields[m.field].Update(msg)
	*fields[m.field] = updated
	if m.section == SectionRecipes {
		m.refreshRecipes()
	}
	return m, cmd
}

// submitSection handles enter inside a section's form.
func (m MainModel) submitSection() (MainModel, tea.Cmd) {
	switch m.section {
	case SectionHome:
		return m.submitNewsletter()
	case SectionCalculator:
		m.stopEditing()
		return m.calculate(), nil
	case SectionMindfulness:
		m.stopEditing()
		return m.startMeditation()
	case SectionContact:
		if m.field < contactMessage {
			return m.startEditing(m.field + 1)
		}
		return m.submitContact()
	}
	m.stopEditing()
	return m, nil
}

// switchSection shows s and remembers it for the next launch.
func (m MainModel) switchSection(s Section) MainModel {
	if m.section == s {
		return m
	}
	m.stopEditing()
	m.section = s
	if m.store != nil {
		util.LogError("save last section", m.store.SetSetting(m.ctx, database.SettingLastSection, s.String()))
	}
	return m
}

func (m MainModel) cycleTheme() MainModel {
	name := NextThemeName(currentThemeKey)
	SetTheme(name)
	if m.store != nil {
		util.LogError("save theme", m.store.SetSetting(m.ctx, database.SettingTheme, name))
	}
	m.Message = "Theme: " + CurrentTheme.Name
	return m
}
