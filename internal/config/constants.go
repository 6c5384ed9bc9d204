package config

import "time"

// Timer durations.
const (
	ExerciseDuration       = 30 * time.Second
	BreathPhaseDuration    = 4 * time.Second
	DefaultMeditationMins  = 5
	SloganRotateInterval   = 4500 * time.Millisecond
	TickInterval           = time.Second
	MaxMeditationMinutes   = 180
	DefaultExerciseSeconds = int(ExerciseDuration / time.Second)
)

// Workout plan limits.
const (
	DefaultPlanSize = 5
	MaxPlanSize     = 5
)

// Defaults used when a selector is missing or unrecognized.
const (
	DefaultBodyPart  = "full"
	DefaultEquipment = "none"
	DefaultSection   = "home"
	DefaultTheme     = "default"
)

// Database/application settings.
const (
	AppName        = "greenbite"
	DBFileName     = "greenbite.db"
	LogFileName    = "greenbite.log"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "GREENBITE_"
)
