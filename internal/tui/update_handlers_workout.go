package tui

import (
	"fmt"
	"path/filepath"

	"github.com/akyairhashvil/greenbite/internal/database"
	"github.com/akyairhashvil/greenbite/internal/export"
	"github.com/akyairhashvil/greenbite/internal/util"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	"github.com/akyairhashvil/greenbite/internal/workout"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) cycleBodyPart() MainModel {
	m.body = util.Wrap(m.body+1, len(workout.BodyParts()))
	return m
}

func (m MainModel) cycleEquipment() MainModel {
	m.equipment = util.Wrap(m.equipment+1, len(workout.EquipmentOptions()))
	return m
}

// generatePlan rebuilds the plan from the selectors and remembers them.
func (m MainModel) generatePlan() MainModel {
	m.plan = workout.GeneratePlan(workout.DefaultCatalog, m.bodyPart(), m.equipmentTag(), m.cfg.PlanSize)
	m.planCursor = 0
	if len(m.plan.Exercises) == 0 {
		m.Message = "No exercises match this selection."
	}
	if m.store != nil {
		util.LogError("save body part", m.store.SetSetting(m.ctx, database.SettingBodyPart, string(m.bodyPart())))
		util.LogError("save equipment", m.store.SetSetting(m.ctx, database.SettingEquipment, string(m.equipmentTag())))
	}
	return m
}

func (m MainModel) movePlanCursor(delta int) MainModel {
	if len(m.plan.Exercises) == 0 {
		return m
	}
	m.planCursor = util.Clamp(m.planCursor+delta, 0, len(m.plan.Exercises)-1)
	return m
}

// selectExercise makes the exercise under the cursor current and resets the
// countdown.
func (m MainModel) selectExercise() MainModel {
	if m.planCursor >= len(m.plan.Exercises) {
		return m
	}
	m.timer.Select(m.plan.Exercises[m.planCursor].Name)
	return m
}

// startExercise restarts the countdown. The previous tick chain dies because
// Start bumps the timer generation.
func (m MainModel) startExercise() (MainModel, tea.Cmd) {
	if m.timer.Exercise() == "" {
		if len(m.plan.Exercises) == 0 {
			m.Message = "Generate a plan first."
			return m, nil
		}
		m = m.selectExercise()
	}
	gen := m.timer.Start()
	return m, workoutTick(gen)
}

func (m MainModel) stopExercise() MainModel {
	m.timer.Stop()
	return m
}

func (m MainModel) handleWorkoutTick(msg workoutTickMsg) (MainModel, tea.Cmd) {
	if msg.gen != m.timer.Generation() {
		return m, nil
	}
	if m.timer.Tick(msg.gen) {
		util.LogError("timer bell", wellness.Chime(m.player))
		if m.store != nil {
			util.LogError("log workout", m.store.LogWorkout(m.ctx, m.timer.Exercise(), m.timer.Duration()))
		}
		m.Message = fmt.Sprintf("Time's up! %s done.", m.timer.Exercise())
		return m, nil
	}
	if m.timer.Running() {
		return m, workoutTick(msg.gen)
	}
	return m, nil
}

func (m MainModel) exportPlan() MainModel {
	if len(m.plan.Exercises) == 0 {
		m.Message = "Generate a plan first."
		return m
	}
	path, err := export.PlanToFile(filepath.Join(m.exportDir(), "greenbite-plan.pdf"), m.plan, m.timer.Duration())
	if err != nil {
		util.LogError("export plan", err)
		m.err = err
		return m
	}
	m.Message = "Exported to " + path
	return m
}
