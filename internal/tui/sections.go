package tui

import "strings"

// Section is one of the navigable panes.
type Section int

const (
	SectionHome Section = iota
	SectionRecipes
	SectionCalculator
	SectionWorkout
	SectionMindfulness
	SectionContact
)

var sectionNames = []string{"home", "recipes", "calculator", "workout", "mindfulness", "contact"}

var sectionTitles = []string{"Home", "Recipes", "Calculator", "Workout", "Mindfulness", "Contact"}

// AllSections lists sections in tab order.
func AllSections() []Section {
	out := make([]Section, len(sectionNames))
	for i := range sectionNames {
		out[i] = Section(i)
	}
	return out
}

// String is the persisted name of the section.
func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return sectionNames[SectionHome]
	}
	return sectionNames[s]
}

func (s Section) Title() string {
	if s < 0 || int(s) >= len(sectionTitles) {
		return sectionTitles[SectionHome]
	}
	return sectionTitles[s]
}

// ParseSection maps a stored name to a section. Unknown names are Home.
func ParseSection(name string) Section {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sectionNames {
		if n == name {
			return Section(i)
		}
	}
	return SectionHome
}

func (s Section) Next() Section {
	return Section((int(s) + 1) % len(sectionNames))
}

func (s Section) Prev() Section {
	return Section((int(s) - 1 + len(sectionNames)) % len(sectionNames))
}
