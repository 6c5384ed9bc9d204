package config

import "testing"

func TestConstants(t *testing.T) {
	if ExerciseDuration <= 0 {
		t.Fatalf("ExerciseDuration must be positive")
	}
	if BreathPhaseDuration <= 0 {
		t.Fatalf("BreathPhaseDuration must be positive")
	}
	if DefaultExerciseSeconds != 30 {
		t.Fatalf("expected 30 second exercise timer, got %d", DefaultExerciseSeconds)
	}
	if DefaultPlanSize != 5 {
		t.Fatalf("expected plan size 5, got %d", DefaultPlanSize)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if DefaultBodyPart != "full" || DefaultEquipment != "none" {
		t.Fatalf("unexpected selector defaults")
	}
}
