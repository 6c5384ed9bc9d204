package tui

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/database"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	"github.com/akyairhashvil/greenbite/internal/workout"
	"github.com/golang/mock/gomock"
)

func workoutModel(t *testing.T, expect func(s *MockStore)) (MainModel, *recordingPlayer) {
	t.Helper()
	m, _, player := setupTestModel(t, expect)
	// full -> arms -> legs, none -> any -> dumbbells
	m = press(t, m, "4", "b", "b", "e", "e", "g")
	return m, player
}

func TestWorkoutGeneratePlan(t *testing.T) {
	m, _ := workoutModel(t, func(s *MockStore) {
		s.EXPECT().SetSetting(gomock.Any(), database.SettingBodyPart, "legs").Return(nil).Times(1)
		s.EXPECT().SetSetting(gomock.Any(), database.SettingEquipment, "dumbbells").Return(nil).Times(1)
	})
	want := []string{"Goblet Squat (Dumbbell)", "Dumbbell Deadlift", "Calf Raises"}
	if got := m.plan.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("plan = %v, want %v", got, want)
	}
	if !strings.Contains(m.View(), "Goblet Squat (Dumbbell)") {
		t.Fatalf("expected plan in view")
	}
}

func TestWorkoutStartWithoutPlan(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = press(t, m, "4")
	next, cmd := m.Update(keyMsg("s"))
	m = next.(MainModel)
	if cmd != nil || m.timer.Running() {
		t.Fatalf("timer should not start without a plan")
	}
	if m.Message != "Generate a plan first." {
		t.Fatalf("unexpected message %q", m.Message)
	}
}

func TestWorkoutTimerRunsToExpiry(t *testing.T) {
	m, player := workoutModel(t, func(s *MockStore) {
		s.EXPECT().LogWorkout(gomock.Any(), "Dumbbell Deadlift", 30).Return(nil).Times(1)
	})
	m = press(t, m, "down", "enter")
	if m.timer.Exercise() != "Dumbbell Deadlift" || m.timer.Display() != "00:30" {
		t.Fatalf("unexpected selection %q %s", m.timer.Exercise(), m.timer.Display())
	}

	next, cmd := m.Update(keyMsg("s"))
	m = next.(MainModel)
	if cmd == nil || !m.timer.Running() {
		t.Fatalf("expected running timer with a tick scheduled")
	}

	gen := m.timer.Generation()
	for i := 0; i < 29; i++ {
		next, cmd = m.Update(workoutTickMsg{gen: gen})
		m = next.(MainModel)
		if cmd == nil {
			t.Fatalf("expected tick %d to reschedule", i+1)
		}
	}
	if m.timer.Display() != "00:01" {
		t.Fatalf("expected 00:01, got %s", m.timer.Display())
	}
	next, cmd = m.Update(workoutTickMsg{gen: gen})
	m = next.(MainModel)
	if cmd != nil {
		t.Fatalf("expired timer must not reschedule")
	}
	if m.timer.State() != workout.TimerExpired || m.timer.Remaining() != 0 {
		t.Fatalf("expected expired at zero, got %s %d", m.timer.State(), m.timer.Remaining())
	}
	if len(player.played) != 1 || player.played[0] != wellness.Beep {
		t.Fatalf("expected one beep, got %v", player.played)
	}
	if !strings.Contains(m.Message, "Time's up") {
		t.Fatalf("unexpected message %q", m.Message)
	}

	// A late tick from the finished run changes nothing.
	next, cmd = m.Update(workoutTickMsg{gen: gen})
	m = next.(MainModel)
	if cmd != nil || m.timer.Remaining() != 0 || len(player.played) != 1 {
		t.Fatalf("stale tick after expiry had an effect")
	}
}

func TestWorkoutRestartDropsOldTickChain(t *testing.T) {
	m, _ := workoutModel(t, nil)
	m = press(t, m, "s")
	oldGen := m.timer.Generation()
	next, _ := m.Update(workoutTickMsg{gen: oldGen})
	m = next.(MainModel)
	if m.timer.Remaining() != 29 {
		t.Fatalf("expected 29, got %d", m.timer.Remaining())
	}

	m = press(t, m, "s")
	if m.timer.Remaining() != 30 {
		t.Fatalf("restart should reset to 30, got %d", m.timer.Remaining())
	}
	next, cmd := m.Update(workoutTickMsg{gen: oldGen})
	m = next.(MainModel)
	if cmd != nil || m.timer.Remaining() != 30 {
		t.Fatalf("old tick chain must be ignored")
	}
	next, _ = m.Update(workoutTickMsg{gen: m.timer.Generation()})
	m = next.(MainModel)
	if m.timer.Remaining() != 29 {
		t.Fatalf("current chain should tick, got %d", m.timer.Remaining())
	}
}

func TestWorkoutStopResets(t *testing.T) {
	m, _ := workoutModel(t, nil)
	m = press(t, m, "s")
	gen := m.timer.Generation()
	next, _ := m.Update(workoutTickMsg{gen: gen})
	m = next.(MainModel)
	m = press(t, m, "x")
	if m.timer.Running() || m.timer.Display() != "00:30" {
		t.Fatalf("expected idle at 00:30, got %s", m.timer.Display())
	}
	next, cmd := m.Update(workoutTickMsg{gen: gen})
	m = next.(MainModel)
	if cmd != nil || m.timer.Display() != "00:30" {
		t.Fatalf("tick after stop must be ignored")
	}
}

func TestMeditationCompletesAndRecords(t *testing.T) {
	m, _, player := setupTestModel(t, func(s *MockStore) {
		s.EXPECT().RecordMeditation(gomock.Any(), 1).Return(nil).Times(1)
	})
	m = press(t, m, "5", "m")
	m = typeText(t, m, "1")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MainModel)
	if cmd == nil || !m.meditation.Running() || m.meditation.Display() != "01:00" {
		t.Fatalf("expected a running 01:00 meditation, got %s", m.meditation.Display())
	}

	gen := m.meditation.Generation()
	for i := 0; i < 60; i++ {
		next, cmd = m.Update(meditationTickMsg{gen: gen})
		m = next.(MainModel)
	}
	if cmd != nil || m.meditation.Running() {
		t.Fatalf("meditation should stop at zero")
	}
	if m.meditation.Sessions() != 1 {
		t.Fatalf("expected 1 session, got %d", m.meditation.Sessions())
	}
	if len(player.played) != 1 {
		t.Fatalf("expected a chime, got %v", player.played)
	}
}

func TestMeditationPauseKeepsRemaining(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = press(t, m, "5", "s")
	if m.meditation.Display() != "05:00" {
		t.Fatalf("empty minutes should default to 5, got %s", m.meditation.Display())
	}
	gen := m.meditation.Generation()
	next, _ := m.Update(meditationTickMsg{gen: gen})
	m = next.(MainModel)
	m = press(t, m, "x")
	if m.meditation.Running() || m.meditation.Display() != "04:59" {
		t.Fatalf("pause should keep 04:59, got %s", m.meditation.Display())
	}
	next, cmd := m.Update(meditationTickMsg{gen: gen})
	m = next.(MainModel)
	if cmd != nil || m.meditation.Display() != "04:59" {
		t.Fatalf("tick after pause must be ignored")
	}
}

func TestMeditationFractionalMinutes(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = press(t, m, "5", "m")
	m = typeText(t, m, "2.5")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MainModel)
	if cmd == nil || m.meditation.Display() != "02:30" {
		t.Fatalf("expected a 02:30 meditation, got %s", m.meditation.Display())
	}
}

func TestBreathingCycle(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = press(t, m, "5")
	if m.breathing.Label() != wellness.BreathIdleLabel {
		t.Fatalf("unexpected idle label %q", m.breathing.Label())
	}
	next, cmd := m.Update(keyMsg("b"))
	m = next.(MainModel)
	if cmd == nil || m.breathing.Label() != "Inhale..." {
		t.Fatalf("expected Inhale..., got %q", m.breathing.Label())
	}
	gen := m.breathing.Generation()
	for _, want := range []string{"Hold...", "Exhale...", "Inhale..."} {
		next, cmd = m.Update(breathTickMsg{gen: gen})
		m = next.(MainModel)
		if cmd == nil || m.breathing.Label() != want {
			t.Fatalf("expected %q, got %q", want, m.breathing.Label())
		}
	}
	m = press(t, m, "b")
	if m.breathing.Label() != wellness.BreathIdleLabel {
		t.Fatalf("expected idle label after stop")
	}
	_, cmd = m.Update(breathTickMsg{gen: gen})
	if cmd != nil {
		t.Fatalf("stale breath tick should not reschedule")
	}
}

func TestAmbienceKeys(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = press(t, m, "5", "r")
	if m.ambience.Playing() != wellness.SoundRain {
		t.Fatalf("expected rain, got %q", m.ambience.Playing())
	}
	m = press(t, m, "w")
	if m.ambience.Playing() != wellness.SoundWaves {
		t.Fatalf("expected waves, got %q", m.ambience.Playing())
	}
	m = press(t, m, "a")
	if m.ambience.Playing() != "" {
		t.Fatalf("expected silence, got %q", m.ambience.Playing())
	}
}

func TestAmbienceDrivesPlayer(t *testing.T) {
	ambience := &recordingPlayer{}
	m := NewMainModel(context.Background(), nil, Options{Settings: config.Defaults(), Ambience: ambience})
	m = press(t, m, "5", "r", "w")
	if len(ambience.played) != 2 || ambience.played[0] != wellness.SoundRain || ambience.played[1] != wellness.SoundWaves {
		t.Fatalf("expected rain then waves, got %v", ambience.played)
	}

	off := false
	cfg := config.Defaults()
	cfg.Sound = &off
	silent := &recordingPlayer{}
	m = NewMainModel(context.Background(), nil, Options{Settings: cfg, Ambience: silent})
	m = press(t, m, "5", "r")
	if len(silent.played) != 0 || m.ambience.Playing() != wellness.SoundRain {
		t.Fatalf("sound off should keep state only, played %v", silent.played)
	}
}
