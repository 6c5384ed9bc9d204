package tui

import (
	"time"

	"github.com/akyairhashvil/greenbite/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// Tick messages carry the generation of the run that scheduled them. A
// message whose generation no longer matches is dropped and not rescheduled,
// so each countdown has at most one live tick chain.
type (
	workoutTickMsg    struct{ gen int }
	meditationTickMsg struct{ gen int }
	breathTickMsg     struct{ gen int }
	sloganTickMsg     struct{}
)

func workoutTick(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return workoutTickMsg{gen: gen} })
}

func meditationTick(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return meditationTickMsg{gen: gen} })
}

func breathTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return breathTickMsg{gen: gen} })
}

func sloganTick() tea.Cmd {
	return tea.Tick(config.SloganRotateInterval, func(time.Time) tea.Msg { return sloganTickMsg{} })
}
