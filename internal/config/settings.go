package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Settings are the user-tunable knobs read from config.yaml.
type Settings struct {
	Theme              string `yaml:"theme"`
	ExerciseSeconds    int    `yaml:"exercise_seconds"`
	MeditationMinutes  int    `yaml:"meditation_minutes"`
	BreathPhaseSeconds int    `yaml:"breath_phase_seconds"`
	PlanSize           int    `yaml:"plan_size"`
	Sound              *bool  `yaml:"sound"`
	DataDir            string `yaml:"data_dir"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	sound := true
	return Settings{
		Theme:              DefaultTheme,
		ExerciseSeconds:    DefaultExerciseSeconds,
		MeditationMinutes:  DefaultMeditationMins,
		BreathPhaseSeconds: int(BreathPhaseDuration / time.Second),
		PlanSize:           DefaultPlanSize,
		Sound:              &sound,
	}
}

// Load reads settings from a YAML file, then applies environment overrides.
// A missing file is not an error. Env vars use the GREENBITE_ prefix:
//
//	GREENBITE_THEME, GREENBITE_EXERCISE_SECONDS, GREENBITE_MEDITATION_MINUTES,
//	GREENBITE_PLAN_SIZE, GREENBITE_SOUND, GREENBITE_DATA_DIR
func Load(path string) (Settings, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Settings) {
	if v := os.Getenv(EnvPrefix + "THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvPrefix + "EXERCISE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ExerciseSeconds = n
		}
	}
	if v := os.Getenv(EnvPrefix + "MEDITATION_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MeditationMinutes = n
		}
	}
	if v := os.Getenv(EnvPrefix + "PLAN_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PlanSize = n
		}
	}
	if v := os.Getenv(EnvPrefix + "SOUND"); v != "" {
		on := parseToggle(v)
		cfg.Sound = &on
	}
	if v := os.Getenv(EnvPrefix + "DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
}

func parseToggle(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "off", "false", "no":
		return false
	}
	return true
}

// Validate rejects settings the timers and planner cannot work with.
func (s Settings) Validate() error {
	if s.ExerciseSeconds <= 0 {
		return fmt.Errorf("%w: exercise_seconds must be positive", ErrInvalidConfig)
	}
	if s.MeditationMinutes <= 0 || s.MeditationMinutes > MaxMeditationMinutes {
		return fmt.Errorf("%w: meditation_minutes must be between 1 and %d", ErrInvalidConfig, MaxMeditationMinutes)
	}
	if s.BreathPhaseSeconds <= 0 {
		return fmt.Errorf("%w: breath_phase_seconds must be positive", ErrInvalidConfig)
	}
	if s.PlanSize < 1 || s.PlanSize > MaxPlanSize {
		return fmt.Errorf("%w: plan_size must be between 1 and %d", ErrInvalidConfig, MaxPlanSize)
	}
	return nil
}

func (s Settings) ExerciseDuration() time.Duration {
	return time.Duration(s.ExerciseSeconds) * time.Second
}

func (s Settings) BreathPhase() time.Duration {
	return time.Duration(s.BreathPhaseSeconds) * time.Second
}

// SoundEnabled reports whether audible signals should be attempted.
func (s Settings) SoundEnabled() bool {
	return s.Sound == nil || *s.Sound
}
