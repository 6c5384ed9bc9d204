// Package recipes holds the static recipe collection and its search filter.
package recipes

import "github.com/akyairhashvil/greenbite/internal/models"

// All is the built-in recipe collection.
var All = []models.Recipe{
	{
		ID:          1,
		Title:       "Avocado Salad",
		Category:    models.CategoryVegan,
		Description: "Creamy avocado, lime and herbs.",
		Image:       "Recipe Images/19960-avocado-salad-VAT-001-4x3-64241afdc3b04d00a9372e1573eac6f7.webp",
		Ingredients: []string{"2 ripe avocados", "1 lime (juice)", "Handful coriander", "Salt & pepper", "Olive oil"},
		Steps:       []string{"Cube avocados", "Whisk lime juice + oil", "Toss with herbs", "Season & serve"},
		Nutrition:   models.Nutrition{Calories: 220, Protein: "3g", Carbs: "12g", Fat: "18g"},
	},
	{
		ID:          2,
		Title:       "Grilled Chicken",
		Category:    models.CategoryHighProtein,
		Description: "Juicy grilled chicken breast.",
		Image:       "Recipe Images/grilled-chicken-salad-index-6628169554c88.webp",
		Ingredients: []string{"200g chicken breast", "1 tbsp olive oil", "Paprika", "Garlic", "Salt & pepper"},
		Steps:       []string{"Marinate 15 min", "Grill 5-7 min/side", "Rest 3 min", "Slice & serve"},
		Nutrition:   models.Nutrition{Calories: 320, Protein: "42g", Carbs: "2g", Fat: "14g"},
	},
	{
		ID:          3,
		Title:       "Zoodle Pesto",
		Category:    models.CategoryLowCarb,
		Description: "Zucchini noodles with basil pesto.",
		Image:       "Recipe Images/Pesto-Pasta-Salad-Final-1.webp",
		Ingredients: []string{"2 zucchini (spiralized)", "2 tbsp pesto", "Cherry tomatoes", "Parmesan", "Salt"},
		Steps:       []string{"Spiralize zucchini", "Sauté 2-3 min", "Toss pesto", "Top tomatoes & cheese"},
		Nutrition:   models.Nutrition{Calories: 260, Protein: "10g", Carbs: "14g", Fat: "18g"},
	},
}

// Categories lists the category filter options in menu order.
func Categories() []models.RecipeCategory {
	return []models.RecipeCategory{
		models.CategoryAll,
		models.CategoryVegan,
		models.CategoryHighProtein,
		models.CategoryLowCarb,
	}
}

// ByID returns the recipe with the given id.
func ByID(id int) (models.Recipe, bool) {
	for _, r := range All {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}
