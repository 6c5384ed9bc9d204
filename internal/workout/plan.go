package workout

import (
	"strings"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/models"
)

// Plan is the ordered list of exercises shown to the user.
type Plan struct {
	Body      models.BodyPart
	Equipment models.Equipment
	Exercises []models.Exercise
}

// Names returns the exercise names in plan order.
func (p Plan) Names() []string {
	out := make([]string, len(p.Exercises))
	for i, ex := range p.Exercises {
		out[i] = ex.Name
	}
	return out
}

// ParseBodyPart maps a selector value to a body part. Empty or unknown values
// fall back to full body.
func ParseBodyPart(s string) models.BodyPart {
	v := models.BodyPart(strings.ToLower(strings.TrimSpace(s)))
	for _, b := range BodyParts() {
		if b == v {
			return v
		}
	}
	return models.BodyPart(config.DefaultBodyPart)
}

// ParseEquipment maps a selector value to an equipment tag. Empty or unknown
// values fall back to none.
func ParseEquipment(s string) models.Equipment {
	v := models.Equipment(strings.ToLower(strings.TrimSpace(s)))
	for _, e := range EquipmentOptions() {
		if e == v {
			return v
		}
	}
	return models.Equipment(config.DefaultEquipment)
}

// GeneratePlan keeps the exercises for body that are tagged "any" or with
// equipment, in catalog order, and truncates to size. A size outside
// 1..DefaultPlanSize uses DefaultPlanSize. An unknown body part yields an
// empty plan.
func GeneratePlan(catalog Catalog, body models.BodyPart, equipment models.Equipment, size int) Plan {
	if size <= 0 || size > config.DefaultPlanSize {
		size = config.DefaultPlanSize
	}
	plan := Plan{Body: body, Equipment: equipment}
	for _, ex := range catalog[body] {
		if len(plan.Exercises) == size {
			break
		}
		if ex.Uses(models.EquipmentAny) || ex.Uses(equipment) {
			plan.Exercises = append(plan.Exercises, ex)
		}
	}
	return plan
}
