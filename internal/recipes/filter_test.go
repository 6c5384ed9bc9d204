package recipes

import (
	"testing"

	"github.com/akyairhashvil/greenbite/internal/models"
)

func titles(list []models.Recipe) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category models.RecipeCategory
		want     []string
	}{
		{"all", "", models.CategoryAll, []string{"Avocado Salad", "Grilled Chicken", "Zoodle Pesto"}},
		{"empty category", "", "", []string{"Avocado Salad", "Grilled Chicken", "Zoodle Pesto"}},
		{"title match", "AVOCADO", models.CategoryAll, []string{"Avocado Salad"}},
		{"description match", "basil", models.CategoryAll, []string{"Zoodle Pesto"}},
		{"category", "", models.CategoryHighProtein, []string{"Grilled Chicken"}},
		{"category and query miss", "avocado", models.CategoryLowCarb, []string{}},
		{"no match", "tofu", models.CategoryAll, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(All, tt.query, tt.category))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Filter = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSearchCategoryToken(t *testing.T) {
	got := titles(Search(All, "cat:vegan", models.CategoryAll))
	if len(got) != 1 || got[0] != "Avocado Salad" {
		t.Fatalf("Search cat:vegan = %v", got)
	}
	got = titles(Search(All, "cat:vegan chicken", models.CategoryHighProtein))
	if len(got) != 1 || got[0] != "Grilled Chicken" {
		t.Fatalf("explicit category should win, got %v", got)
	}
}

func TestByID(t *testing.T) {
	r, ok := ByID(2)
	if !ok || r.Title != "Grilled Chicken" {
		t.Fatalf("ByID(2) = %+v, %v", r, ok)
	}
	if _, ok := ByID(99); ok {
		t.Fatalf("expected unknown id to miss")
	}
}
