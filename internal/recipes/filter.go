package recipes

import (
	"strings"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/util"
)

// Filter returns the recipes in category whose title or description contains
// query, case-insensitively. An empty or "all" category matches everything.
func Filter(list []models.Recipe, query string, category models.RecipeCategory) []models.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Recipe, 0, len(list))
	for _, r := range list {
		if category != "" && category != models.CategoryAll && r.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Title), q) && !strings.Contains(strings.ToLower(r.Description), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Search parses a free-form query such as "cat:vegan avocado" and filters
// with it. An explicit category argument wins over a cat: token unless it is
// empty or "all".
func Search(list []models.Recipe, raw string, category models.RecipeCategory) []models.Recipe {
	sq := util.ParseSearchQuery(raw)
	if (category == "" || category == models.CategoryAll) && len(sq.Category) > 0 {
		category = models.RecipeCategory(strings.ToLower(sq.Category[len(sq.Category)-1]))
	}
	return Filter(list, strings.Join(sq.Text, " "), category)
}
