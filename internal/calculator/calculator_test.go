package calculator

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCalculateMale(t *testing.T) {
	res, err := Calculate(Input{Age: 30, Gender: Male, HeightCm: 180, WeightKg: 80, Activity: 1.2})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 800 + 1125 - 150 + 5
	if !near(res.BMR, 1780) {
		t.Fatalf("BMR = %v, want 1780", res.BMR)
	}
	if !near(res.TDEE, 2136) {
		t.Fatalf("TDEE = %v, want 2136", res.TDEE)
	}
	if res.RoundedCarbs() != 267 || res.RoundedProtein() != 107 || res.RoundedFat() != 71 {
		t.Fatalf("macros = %d/%d/%d", res.RoundedCarbs(), res.RoundedProtein(), res.RoundedFat())
	}
	if !near(res.CarbsBar, 53.4) {
		t.Fatalf("CarbsBar = %v", res.CarbsBar)
	}
}

func TestCalculateFemale(t *testing.T) {
	res, err := Calculate(Input{Age: 25, Gender: Female, HeightCm: 165, WeightKg: 60, Activity: 1.55})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 600 + 1031.25 - 125 - 161
	if !near(res.BMR, 1345.25) {
		t.Fatalf("BMR = %v, want 1345.25", res.BMR)
	}
	if res.RoundedBMR() != 1345 {
		t.Fatalf("RoundedBMR = %d", res.RoundedBMR())
	}
}

func TestCalculateBarsCapped(t *testing.T) {
	res, err := Calculate(Input{Age: 20, Gender: Male, HeightCm: 250, WeightKg: 300, Activity: 1.9})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.CarbsBar != 100 || res.ProteinBar != 100 || res.FatBar != 100 {
		t.Fatalf("bars not capped: %v %v %v", res.CarbsBar, res.ProteinBar, res.FatBar)
	}
}

func TestCalculateMissingFields(t *testing.T) {
	inputs := []Input{
		{Gender: Male, HeightCm: 180, WeightKg: 80, Activity: 1.2},
		{Age: 30, Gender: Male, WeightKg: 80, Activity: 1.2},
		{Age: 30, Gender: Male, HeightCm: 180, Activity: 1.2},
	}
	for _, in := range inputs {
		if _, err := Calculate(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Calculate(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestParseInput(t *testing.T) {
	in := ParseInput(" 30", "male", "180", "abc", "")
	if in.Age != 30 || in.Gender != Male || in.HeightCm != 180 {
		t.Fatalf("unexpected parse: %+v", in)
	}
	if in.WeightKg != 0 {
		t.Fatalf("expected bad weight to parse as zero")
	}
	if in.Activity != 1.2 {
		t.Fatalf("expected sedentary default, got %v", in.Activity)
	}
	if ParseGender("X") != Female {
		t.Fatalf("expected non-male to map to Female")
	}
}
