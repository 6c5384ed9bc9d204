package models

import (
	"strings"
	"time"
)

// Equipment tags an exercise with what it needs.
type Equipment string

const (
	EquipmentNone       Equipment = "none"
	EquipmentAny        Equipment = "any"
	EquipmentDumbbells  Equipment = "dumbbells"
	EquipmentResistance Equipment = "resistance"
)

// BodyPart keys the exercise catalog.
type BodyPart string

const (
	BodyFull BodyPart = "full"
	BodyArms BodyPart = "arms"
	BodyLegs BodyPart = "legs"
	BodyCore BodyPart = "core"
)

// Exercise is a single catalog entry.
type Exercise struct {
	Name      string
	Equipment []Equipment
}

// Uses reports whether the exercise is tagged with e.
func (e Exercise) Uses(tag Equipment) bool {
	for _, t := range e.Equipment {
		if t == tag {
			return true
		}
	}
	return false
}

// EquipmentLabel joins the equipment tags for display ("none, any").
func (e Exercise) EquipmentLabel() string {
	parts := make([]string, len(e.Equipment))
	for i, t := range e.Equipment {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// RecipeCategory groups recipes in the browser.
type RecipeCategory string

const (
	CategoryAll         RecipeCategory = "all"
	CategoryVegan       RecipeCategory = "vegan"
	CategoryHighProtein RecipeCategory = "highprotein"
	CategoryLowCarb     RecipeCategory = "lowcarb"
)

// Nutrition is the per-serving breakdown shown on a recipe card.
type Nutrition struct {
	Calories int
	Protein  string
	Carbs    string
	Fat      string
}

// Recipe is a static recipe entry.
type Recipe struct {
	ID          int
	Title       string
	Category    RecipeCategory
	Description string
	Image       string
	Ingredients []string
	Steps       []string
	Nutrition   Nutrition
}

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Subscription is a newsletter sign-up.
type Subscription struct {
	Email        string
	SubscribedAt time.Time
}

// MeditationSession records a completed meditation countdown.
type MeditationSession struct {
	ID          int64
	Minutes     int
	CompletedAt time.Time
}

// WorkoutLogEntry records an exercise timer that ran to zero.
type WorkoutLogEntry struct {
	ID          int64
	Exercise    string
	Seconds     int
	CompletedAt time.Time
}
