package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Slogan    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Card      lipgloss.Style
	Text      lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("35"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Slogan:    lipgloss.NewStyle().Foreground(lipgloss.Color("151")).Italic(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("42")).Bold(true).Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("35")).Padding(0, 1),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1).Width(44),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                                // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),     // Cyan
		Slogan:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Italic(true),  // Purple
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1), // Comment
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("212")).Bold(true).Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),            // White
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(44),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

// currentThemeKey is the Themes key of CurrentTheme.
var currentThemeKey = "default"

// SetTheme switches the active theme. Unknown names are ignored and report
// false.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = t
	currentThemeKey = name
	return true
}

// ThemeNames returns the theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextThemeName is the theme after current in ThemeNames order.
func NextThemeName(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
