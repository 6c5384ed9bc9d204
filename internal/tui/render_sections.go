package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/calculator"
	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/recipes"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) renderHome() string {
	t := CurrentTheme
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Slogan.Render(m.slogans.Current()),
		"",
		t.Card.Render(t.Accent.Render("Tip of the day")+"\n"+t.Text.Render(wrap(m.tip, m.contentWidth()-4))),
		"",
		m.renderField("Newsletter", m.newsletter.View(), m.editing),
	)
}

func (m MainModel) renderRecipes() string {
	t := CurrentTheme
	var cats []string
	for i, c := range recipes.Categories() {
		if i == m.category {
			cats = append(cats, t.ActiveTab.Render(string(c)))
		} else {
			cats = append(cats, t.Tab.Render(string(c)))
		}
	}
	parts := []string{
		m.renderField("Search", m.search.View(), m.editing),
		lipgloss.JoinHorizontal(lipgloss.Top, cats...),
		"",
	}
	if len(m.results) == 0 {
		parts = append(parts, t.Dim.Render("No recipes found."))
	}
	cardWidth := m.contentWidth()
	if cardWidth > config.MaxRecipeCardWidth {
		cardWidth = config.MaxRecipeCardWidth
	}
	for i, r := range m.results {
		title := fmt.Sprintf("%s  %s", r.Title, t.Dim.Render(fmt.Sprintf("(%s, %d kcal)", r.Category, r.Nutrition.Calories)))
		card := t.Card
		if i == m.recipeCursor {
			card = card.BorderForeground(lipgloss.Color("214"))
			title = t.Focused.Render("> ") + title
		}
		desc := truncate(r.Description, cardWidth-4)
		parts = append(parts, card.Width(cardWidth).Render(truncate(title, cardWidth-4)+"\n"+t.Text.Render(desc)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m MainModel) renderRecipeDetail(r models.Recipe) string {
	t := CurrentTheme
	width := m.contentWidth()
	if width > config.MaxRecipeCardWidth {
		width = config.MaxRecipeCardWidth
	}
	ingredients := bullet(r.Ingredients, func(int) string { return "  - " })
	steps := bullet(r.Steps, func(i int) string { return fmt.Sprintf("  %d. ", i+1) })
	nutrition := fmt.Sprintf("  Calories %-6d Protein %-6s Carbs %-6s Fat %s",
		r.Nutrition.Calories, r.Nutrition.Protein, r.Nutrition.Carbs, r.Nutrition.Fat)
	content := lipgloss.JoinVertical(lipgloss.Left,
		t.Header.Render(r.Title)+" "+t.Dim.Render(string(r.Category)),
		t.Text.Render(wrap(r.Description, width-4)),
		"",
		t.Accent.Render("Ingredients"),
		ingredients,
		"",
		t.Accent.Render("Steps"),
		wrap(steps, width-4),
		"",
		t.Accent.Render("Nutrition"),
		nutrition,
	)
	return t.Card.Width(width).Render(content)
}

func (m MainModel) renderCalculator() string {
	t := CurrentTheme
	labels := []string{"Age", "Height (cm)", "Weight (kg)"}
	var fields []string
	for i, label := range labels {
		fields = append(fields, m.renderField(label, m.calcInputs[i].View(), m.editing && m.field == i))
	}
	level := calculator.ActivityLevels[m.activity]
	fields = append(fields,
		t.Text.Render(fmt.Sprintf("Gender: %s   Activity: %s (x%g)", m.gender, level.Label, level.Factor)),
		"",
	)
	if m.calcResult == nil {
		fields = append(fields, t.Dim.Render("BMR —   TDEE —"))
		return lipgloss.JoinVertical(lipgloss.Left, fields...)
	}
	r := m.calcResult
	fields = append(fields,
		t.Accent.Render(fmt.Sprintf("BMR %d kcal   TDEE %d kcal", r.RoundedBMR(), r.RoundedTDEE())),
		m.macroRow("Carbs", r.RoundedCarbs(), r.CarbsBar),
		m.macroRow("Protein", r.RoundedProtein(), r.ProteinBar),
		m.macroRow("Fat", r.RoundedFat(), r.FatBar),
	)
	return lipgloss.JoinVertical(lipgloss.Left, fields...)
}

func (m MainModel) macroRow(label string, grams int, pct float64) string {
	return fmt.Sprintf("%-8s %s %dg", label, m.bar.ViewAs(pct/100), grams)
}

func (m MainModel) renderWorkout() string {
	t := CurrentTheme
	parts := []string{
		t.Text.Render(fmt.Sprintf("Body part: %s   Equipment: %s", m.bodyPart(), m.equipmentTag())),
		"",
	}
	if len(m.plan.Exercises) == 0 {
		parts = append(parts, t.Dim.Render("Press g to generate a plan."))
	} else {
		var lines []string
		for i, ex := range m.plan.Exercises {
			line := fmt.Sprintf("%s  %s", ex.Name, t.Dim.Render(tagsLabel(ex)))
			switch {
			case i == m.planCursor:
				line = t.Focused.Render("> ") + line
			default:
				line = "  " + line
			}
			if ex.Name == m.timer.Exercise() {
				line += t.Success.Render(" *")
			}
			lines = append(lines, truncate(line, m.contentWidth()))
		}
		parts = append(parts, t.Accent.Render("Your Plan"), strings.Join(lines, "\n"))
	}
	if m.timer.Exercise() != "" {
		state := t.Dim.Render(m.timer.State().String())
		if m.timer.Running() {
			state = t.Success.Render(m.timer.State().String())
		}
		parts = append(parts, "", t.Card.Render(
			t.Text.Render(m.timer.Exercise())+"\n"+t.Header.Render(m.timer.Display())+"  "+state,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func tagsLabel(ex models.Exercise) string {
	tags := ex.Equipment
	more := ""
	if len(tags) > config.MaxTagsDisplayed {
		more = config.TruncationSuffix
		tags = tags[:config.MaxTagsDisplayed]
	}
	return models.Exercise{Name: ex.Name, Equipment: tags}.EquipmentLabel() + more
}

func (m MainModel) renderMindfulness() string {
	t := CurrentTheme
	breath := t.Card.Render(t.Accent.Render(m.breathing.Label()))
	med := lipgloss.JoinVertical(lipgloss.Left,
		m.renderField("Minutes", m.minutes.View(), m.editing),
		t.Header.Render(m.meditation.Display())+"  "+m.bar.ViewAs(m.meditation.Progress()),
		t.Dim.Render(fmt.Sprintf("Sessions completed: %d", m.meditation.Sessions())),
	)
	playing := "off"
	if s := m.ambience.Playing(); s != "" {
		playing = string(s)
	}
	var sounds []string
	for _, s := range wellness.Sounds() {
		if s == m.ambience.Playing() {
			sounds = append(sounds, t.ActiveTab.Render(string(s)))
		} else {
			sounds = append(sounds, t.Tab.Render(string(s)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Accent.Render("Guided breathing"),
		breath,
		"",
		t.Accent.Render("Meditation"),
		med,
		"",
		t.Accent.Render("Ambience: ")+t.Text.Render(playing),
		lipgloss.JoinHorizontal(lipgloss.Top, sounds...),
	)
}

func (m MainModel) renderContact() string {
	labels := []string{"Name", "Email", "Message"}
	var fields []string
	for i, label := range labels {
		fields = append(fields, m.renderField(label, m.contactInputs[i].View(), m.editing && m.field == i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, fields...)
}
