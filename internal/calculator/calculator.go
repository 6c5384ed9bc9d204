// Package calculator estimates daily energy needs with the Mifflin-St Jeor
// equation and splits them into a 50/20/30 carb/protein/fat macro target.
package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/util"
)

var ErrInvalidInput = errors.New("age, height and weight are required")

// Gender selects the sex constant in the BMR equation.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// ActivityLevel is a TDEE multiplier.
type ActivityLevel struct {
	Label  string
	Factor float64
}

// ActivityLevels are the multipliers offered by the calculator.
var ActivityLevels = []ActivityLevel{
	{Label: "Sedentary", Factor: 1.2},
	{Label: "Lightly active", Factor: 1.375},
	{Label: "Moderately active", Factor: 1.55},
	{Label: "Very active", Factor: 1.725},
	{Label: "Athlete", Factor: 1.9},
}

// Input holds the raw calculator fields.
type Input struct {
	Age      float64
	Gender   Gender
	HeightCm float64
	WeightKg float64
	Activity float64
}

// Result is the computed estimate. Gram and bar values are unrounded; use
// the Rounded* helpers for display.
type Result struct {
	BMR        float64
	TDEE       float64
	CarbsG     float64
	ProteinG   float64
	FatG       float64
	CarbsBar   float64
	ProteinBar float64
	FatBar     float64
}

// Calculate returns ErrInvalidInput when age, height or weight is zero or
// missing. Any gender other than Male uses the female constant.
func Calculate(in Input) (Result, error) {
	if in.Age <= 0 || in.HeightCm <= 0 || in.WeightKg <= 0 {
		return Result{}, ErrInvalidInput
	}
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*in.Age
	if in.Gender == Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * in.Activity

	carbs := (tdee * 0.5) / 4
	protein := (tdee * 0.2) / 4
	fat := (tdee * 0.3) / 9

	return Result{
		BMR:        bmr,
		TDEE:       tdee,
		CarbsG:     carbs,
		ProteinG:   protein,
		FatG:       fat,
		CarbsBar:   math.Min(100, carbs/5),
		ProteinBar: math.Min(100, protein/3),
		FatBar:     math.Min(100, fat/2),
	}, nil
}

func (r Result) RoundedBMR() int     { return util.Round(r.BMR) }
func (r Result) RoundedTDEE() int    { return util.Round(r.TDEE) }
func (r Result) RoundedCarbs() int   { return util.Round(r.CarbsG) }
func (r Result) RoundedProtein() int { return util.Round(r.ProteinG) }
func (r Result) RoundedFat() int     { return util.Round(r.FatG) }

// ParseInput converts form strings into an Input. Unparseable numbers become
// zero, so Calculate reports them as missing. An unparseable activity factor
// falls back to sedentary.
func ParseInput(age, gender, height, weight, activity string) Input {
	in := Input{
		Age:      parseNumber(age),
		Gender:   ParseGender(gender),
		HeightCm: parseNumber(height),
		WeightKg: parseNumber(weight),
		Activity: parseNumber(activity),
	}
	if in.Activity <= 0 {
		in.Activity = ActivityLevels[0].Factor
	}
	return in
}

// ParseGender accepts m/male/f/female in any case; anything else is Female.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male
	}
	return Female
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
