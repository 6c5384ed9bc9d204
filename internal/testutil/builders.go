package testutil

import (
	"github.com/akyairhashvil/greenbite/internal/models"
)

// ExerciseBuilder provides fluent API for creating test exercises.
type ExerciseBuilder struct {
	exercise models.Exercise
}

func NewExercise() *ExerciseBuilder {
	return &ExerciseBuilder{
		exercise: models.Exercise{
			Name:      "Test Exercise",
			Equipment: []models.Equipment{models.EquipmentNone},
		},
	}
}

func (b *ExerciseBuilder) WithName(name string) *ExerciseBuilder {
	b.exercise.Name = name
	return b
}

func (b *ExerciseBuilder) WithEquipment(tags ...models.Equipment) *ExerciseBuilder {
	b.exercise.Equipment = append([]models.Equipment(nil), tags...)
	return b
}

func (b *ExerciseBuilder) Build() models.Exercise {
	return b.exercise
}

// RecipeBuilder provides fluent API for creating test recipes.
type RecipeBuilder struct {
	recipe models.Recipe
}

func NewRecipe() *RecipeBuilder {
	return &RecipeBuilder{
		recipe: models.Recipe{
			ID:          1,
			Title:       "Test Recipe",
			Category:    models.CategoryVegan,
			Description: "A test recipe.",
			Ingredients: []string{"1 test ingredient"},
			Steps:       []string{"Cook it."},
			Nutrition:   models.Nutrition{Calories: 100, Protein: "5g", Carbs: "10g", Fat: "3g"},
		},
	}
}

func (b *RecipeBuilder) WithID(id int) *RecipeBuilder {
	b.recipe.ID = id
	return b
}

func (b *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	b.recipe.Title = title
	return b
}

func (b *RecipeBuilder) WithDescription(d string) *RecipeBuilder {
	b.recipe.Description = d
	return b
}

func (b *RecipeBuilder) WithCategory(c models.RecipeCategory) *RecipeBuilder {
	b.recipe.Category = c
	return b
}

func (b *RecipeBuilder) WithNutrition(n models.Nutrition) *RecipeBuilder {
	b.recipe.Nutrition = n
	return b
}

func (b *RecipeBuilder) Build() models.Recipe {
	return b.recipe
}
