package tui

import (
	"github.com/akyairhashvil/greenbite/internal/util"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) toggleBreathing() (MainModel, tea.Cmd) {
	if m.breathing.Running() {
		m.breathing.Stop()
		return m, nil
	}
	gen := m.breathing.Start()
	return m, breathTick(gen, m.breathing.PhaseDuration())
}

func (m MainModel) handleBreathTick(msg breathTickMsg) (MainModel, tea.Cmd) {
	if !m.breathing.Advance(msg.gen) {
		return m, nil
	}
	return m, breathTick(msg.gen, m.breathing.PhaseDuration())
}

// startMeditation (re)starts the countdown from the minutes field.
func (m MainModel) startMeditation() (MainModel, tea.Cmd) {
	gen := m.meditation.Start(m.minutes.Value())
	return m, meditationTick(gen)
}

func (m MainModel) stopMeditation() MainModel {
	m.meditation.Stop()
	return m
}

func (m MainModel) handleMeditationTick(msg meditationTickMsg) (MainModel, tea.Cmd) {
	if msg.gen != m.meditation.Generation() {
		return m, nil
	}
	if m.meditation.Tick(msg.gen) {
		util.LogError("meditation bell", wellness.Chime(m.player))
		if m.store != nil {
			util.LogError("record meditation", m.store.RecordMeditation(m.ctx, m.meditation.Minutes()))
		}
		m.Message = "Session complete. Well done."
		return m, nil
	}
	if m.meditation.Running() {
		return m, meditationTick(msg.gen)
	}
	return m, nil
}

func (m MainModel) playSound(name string) MainModel {
	if err := m.ambience.Play(wellness.Sound(name)); err != nil {
		util.LogError("ambience", err)
	}
	return m
}

func (m MainModel) stopSounds() MainModel {
	util.LogError("ambience", m.ambience.StopAll())
	return m
}
