package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const sectionPriority = 10

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()

	for i, s := range AllSections() {
		target := s
		b := KeyBinding{
			Key: string(rune('1' + i)),
			Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
				return m.switchSection(target), nil, true
			},
		}
		if i == 0 {
			b.HelpKey = "1-6"
			b.Description = "sections"
		}
		r.Register(b)
	}
	r.Register(KeyBinding{Key: "tab", Description: "next", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.switchSection(m.section.Next()), nil, true
	}})
	r.Register(KeyBinding{Key: "shift+tab", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.switchSection(m.section.Prev()), nil, true
	}})
	r.Register(KeyBinding{Key: "T", Description: "theme", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m.cycleTheme(), nil, true
	}})
	r.Register(KeyBinding{Key: "q", Description: "quit", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m, tea.Quit, true
	}})

	registerSection(r, SectionHome, []sectionKey{
		{"n", "newsletter", editField(0)},
	})
	registerSection(r, SectionRecipes, []sectionKey{
		{"/", "search", editField(0)},
		{"c", "category", func(m MainModel) (MainModel, tea.Cmd) { return m.cycleCategory(), nil }},
		{"up", "", func(m MainModel) (MainModel, tea.Cmd) { return m.moveRecipeCursor(-1), nil }},
		{"k", "", func(m MainModel) (MainModel, tea.Cmd) { return m.moveRecipeCursor(-1), nil }},
		{"down", "", func(m MainModel) (MainModel, tea.Cmd) { return m.moveRecipeCursor(1), nil }},
		{"j", "", func(m MainModel) (MainModel, tea.Cmd) { return m.moveRecipeCursor(1), nil }},
		{"enter", "details", func(m MainModel) (MainModel, tea.Cmd) { return m.openRecipe(), nil }},
		{"p", "pdf", func(m MainModel) (MainModel, tea.Cmd) { return m.exportRecipes("greenbite-recipes.pdf"), nil }},
		{"x", "xlsx", func(m MainModel) (MainModel, tea.Cmd) { return m.exportRecipes("greenbite-recipes.xlsx"), nil }},
	})
	registerSection(r, SectionCalculator, []sectionKey{
		{"e", "edit", editField(0)},
		{"g", "gender", func(m MainModel) (MainModel, tea.Cmd) { return m.toggleGender(), nil }},
		{"a", "activity", func(m MainModel) (MainModel, tea.Cmd) { return m.cycleActivity(), nil }},
		{"enter", "calculate", func(m MainModel) (MainModel, tea.Cmd) { return m.calculate(), nil }},
		{"c", "clear", func(m MainModel) (MainModel, tea.Cmd) { return m.clearCalculator(), nil }},
	})
	registerSection(r, SectionWorkout, []sectionKey{
		{"b", "body", func(m MainModel) (MainModel, tea.Cmd) { return m.cycleBodyPart(), nil }},
		{"e", "equipment", func(m MainModel) (MainModel, tea.Cmd) { return m.cycleEquipment(), nil }},
		{"g", "generate", func(m MainModel) (MainModel, tea.Cmd) { return m.generatePlan(), nil }},
		{"up", "", func(m MainModel) (MainModel, tea.Cmd) { return m.movePlanCursor(-1), nil }},
		{"k", "", func(m MainModel) (MainModel, tea.Cmd) { return m.movePlanCursor(-1), nil }},
		{"down", "", func(m MainModel) (MainModel, tea.Cmd) { return m.movePlanCursor(1), nil }},
		{"j", "", func(m MainModel) (MainModel, tea.Cmd) { return m.movePlanCursor(1), nil }},
		{"enter", "select", func(m MainModel) (MainModel, tea.Cmd) { return m.selectExercise(), nil }},
		{"s", "start", func(m MainModel) (MainModel, tea.Cmd) { return m.startExercise() }},
		{"x", "stop", func(m MainModel) (MainModel, tea.Cmd) { return m.stopExercise(), nil }},
		{"p", "pdf", func(m MainModel) (MainModel, tea.Cmd) { return m.exportPlan(), nil }},
	})
	registerSection(r, SectionMindfulness, []sectionKey{
		{"b", "breathe", func(m MainModel) (MainModel, tea.Cmd) { return m.toggleBreathing() }},
		{"m", "minutes", editField(0)},
		{"s", "meditate", func(m MainModel) (MainModel, tea.Cmd) { return m.startMeditation() }},
		{"x", "pause", func(m MainModel) (MainModel, tea.Cmd) { return m.stopMeditation(), nil }},
		{"r", "rain", func(m MainModel) (MainModel, tea.Cmd) { return m.playSound("rain"), nil }},
		{"w", "waves", func(m MainModel) (MainModel, tea.Cmd) { return m.playSound("waves"), nil }},
		{"a", "silence", func(m MainModel) (MainModel, tea.Cmd) { return m.stopSounds(), nil }},
	})
	registerSection(r, SectionContact, []sectionKey{
		{"e", "write", editField(0)},
		{"enter", "", editField(0)},
	})
	return r
}

type sectionKey struct {
	key         string
	description string
	action      func(m MainModel) (MainModel, tea.Cmd)
}

func registerSection(r *HandlerRegistry, s Section, keys []sectionKey) {
	for _, k := range keys {
		action := k.action
		r.Register(KeyBinding{
			Key:         k.key,
			Description: k.description,
			Sections:    []Section{s},
			Priority:    sectionPriority,
			Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
				next, cmd := action(m)
				return next, cmd, true
			},
		})
	}
}

func editField(field int) func(m MainModel) (MainModel, tea.Cmd) {
	return func(m MainModel) (MainModel, tea.Cmd) {
		return m.startEditing(field)
	}
}
