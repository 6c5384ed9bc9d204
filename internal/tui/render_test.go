package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/greenbite/internal/wellness"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewRendersEverySection(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(MainModel)

	wants := map[Section]string{
		SectionHome:        "Tip of the day",
		SectionRecipes:     "Avocado Salad",
		SectionCalculator:  "Activity: Sedentary",
		SectionWorkout:     "Press g to generate a plan.",
		SectionMindfulness: wellness.BreathIdleLabel,
		SectionContact:     "Message",
	}
	for s, want := range wants {
		m.section = s
		view := m.View()
		if !strings.Contains(view, want) {
			t.Errorf("%s view missing %q", s, want)
		}
		if !strings.Contains(view, "GreenBite") {
			t.Errorf("%s view missing header", s)
		}
	}
}

func TestViewShowsStatusAndError(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m.Message = "Subscribed!"
	if !strings.Contains(m.View(), "Subscribed!") {
		t.Fatalf("expected status line")
	}
	m.Message = ""
	m.err = errNoStore
	if !strings.Contains(m.View(), "Error: storage unavailable") {
		t.Fatalf("expected error line")
	}
	m = press(t, m, "tab")
	if m.err != nil {
		t.Fatalf("error should clear on key press")
	}
}

func TestCompactHeader(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = next.(MainModel)
	view := m.View()
	if strings.Contains(view, "Recipes") {
		t.Fatalf("compact header should only name the active section")
	}
	if !strings.Contains(view, "Home") {
		t.Fatalf("compact header should name the active section")
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("Mountain Climbers", 8)
	if !strings.HasSuffix(got, "…") || len([]rune(got)) > 8 {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncate("short", 20); got != "short" {
		t.Fatalf("short strings should be untouched, got %q", got)
	}
	if truncate("anything", 0) != "" {
		t.Fatalf("zero width should render nothing")
	}
}
