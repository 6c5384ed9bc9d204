package recipes

import (
	"testing"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/testutil"
)

func TestFilterCustomList(t *testing.T) {
	list := []models.Recipe{
		testutil.NewRecipe().WithID(10).WithTitle("Lentil Soup").WithCategory(models.CategoryVegan).Build(),
		testutil.NewRecipe().WithID(11).WithTitle("Steak Bowl").WithDescription("Seared SOUP-free steak").
			WithCategory(models.CategoryHighProtein).Build(),
	}

	got := titles(Filter(list, "soup", models.CategoryAll))
	if len(got) != 2 {
		t.Fatalf("expected title and description matches, got %v", got)
	}
	got = titles(Filter(list, "soup", models.CategoryVegan))
	if len(got) != 1 || got[0] != "Lentil Soup" {
		t.Fatalf("expected vegan match only, got %v", got)
	}
}
