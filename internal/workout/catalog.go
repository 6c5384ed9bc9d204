// Package workout builds short exercise plans from a static catalog and runs
// the per-exercise countdown.
package workout

import "github.com/akyairhashvil/greenbite/internal/models"

// Catalog maps a body part to its exercises in display order.
type Catalog map[models.BodyPart][]models.Exercise

var (
	bodyweight = []models.Equipment{models.EquipmentNone, models.EquipmentAny}
	noneOnly   = []models.Equipment{models.EquipmentNone}
	dumbbells  = []models.Equipment{models.EquipmentDumbbells}
	bands      = []models.Equipment{models.EquipmentResistance}
	noneOrDB   = []models.Equipment{models.EquipmentNone, models.EquipmentDumbbells}
)

// DefaultCatalog is the built-in exercise table.
var DefaultCatalog = Catalog{
	models.BodyFull: {
		{Name: "Jumping Jacks", Equipment: bodyweight},
		{Name: "Burpees", Equipment: bodyweight},
		{Name: "Mountain Climbers", Equipment: bodyweight},
		{Name: "Bodyweight Squats", Equipment: bodyweight},
		{Name: "Push-ups", Equipment: bodyweight},
		{Name: "High Knees", Equipment: bodyweight},
		{Name: "Kettlebell Swings", Equipment: dumbbells},
		{Name: "Resistance Band Rows", Equipment: bands},
	},
	models.BodyArms: {
		{Name: "Alternating Dumbbell Curl", Equipment: dumbbells},
		{Name: "Hammer Curl", Equipment: dumbbells},
		{Name: "Overhead Press", Equipment: dumbbells},
		{Name: "Lateral Raises", Equipment: dumbbells},
		{Name: "Front Raises", Equipment: dumbbells},
		{Name: "Tricep Dips", Equipment: bodyweight},
		{Name: "Push-ups (Diamond)", Equipment: bodyweight},
		{Name: "Resistance Band Bicep Curl", Equipment: bands},
		{Name: "Resistance Band Tricep Pushdown", Equipment: bands},
	},
	models.BodyLegs: {
		{Name: "Lunges", Equipment: bodyweight},
		{Name: "Bodyweight Squats", Equipment: bodyweight},
		{Name: "Wall Sit", Equipment: noneOnly},
		{Name: "Step-Ups", Equipment: noneOnly},
		{Name: "Glute Bridges", Equipment: noneOnly},
		{Name: "Goblet Squat (Dumbbell)", Equipment: dumbbells},
		{Name: "Dumbbell Deadlift", Equipment: dumbbells},
		{Name: "Calf Raises", Equipment: noneOrDB},
		{Name: "Resistance Band Squats", Equipment: bands},
		{Name: "Resistance Band Side Steps", Equipment: bands},
	},
	models.BodyCore: {
		{Name: "Plank", Equipment: bodyweight},
		{Name: "Leg Raises", Equipment: noneOnly},
		{Name: "Russian Twists (bodyweight/dumbbell)", Equipment: noneOrDB},
		{Name: "Bicycle Crunches", Equipment: noneOnly},
		{Name: "Flutter Kicks", Equipment: noneOnly},
		{Name: "Dumbbell Side Bend", Equipment: dumbbells},
		{Name: "Resistance Band Pallof Press", Equipment: bands},
		{Name: "Mountain Climbers", Equipment: noneOnly},
	},
}

// BodyParts lists the selectable body parts in menu order.
func BodyParts() []models.BodyPart {
	return []models.BodyPart{models.BodyFull, models.BodyArms, models.BodyLegs, models.BodyCore}
}

// EquipmentOptions lists the selectable equipment filters in menu order.
func EquipmentOptions() []models.Equipment {
	return []models.Equipment{models.EquipmentNone, models.EquipmentAny, models.EquipmentDumbbells, models.EquipmentResistance}
}
