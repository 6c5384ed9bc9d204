package cli

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/recipes"
	"github.com/spf13/cobra"
)

func newRecipesCmd(opts *globalOptions) *cobra.Command {
	var category string
	var id int

	cmd := &cobra.Command{
		Use:   "recipes [query...]",
		Short: "Search the recipe collection",
		Long: `List recipes whose title or description contains the query.

Categories: all, vegan, highprotein, lowcarb. The query may also carry a
cat:<category> token. Use --id to show one recipe in full.`,
		Example: "  greenbite recipes avocado\n  greenbite recipes cat:lowcarb\n  greenbite recipes --id 2",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if id != 0 {
				r, ok := recipes.ByID(id)
				if !ok {
					return fmt.Errorf("recipe %d not found", id)
				}
				if opts.jsonOutput {
					return outputJSON(w, r)
				}
				printRecipe(cmd, r)
				return nil
			}

			list := recipes.Search(recipes.All, strings.Join(args, " "), models.RecipeCategory(strings.ToLower(category)))
			if opts.jsonOutput {
				if list == nil {
					list = []models.Recipe{}
				}
				return outputJSON(w, list)
			}
			PrintSection(w, "Recipes")
			if len(list) == 0 {
				PrintEmptyState(w, "No recipes found.")
				return nil
			}
			for _, r := range list {
				PrintListItem(w, fmt.Sprintf("[%d] %s", r.ID, r.Title), fmt.Sprintf("%s, %d kcal", r.Category, r.Nutrition.Calories))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryAll), "Recipe category")
	cmd.Flags().IntVar(&id, "id", 0, "Show a single recipe")
	return cmd
}

func printRecipe(cmd *cobra.Command, r models.Recipe) {
	w := cmd.OutOrStdout()
	PrintSection(w, r.Title)
	fmt.Fprintf(w, "  %s\n\n", r.Description)
	_, _ = labelColor.Fprintln(w, "  Ingredients")
	for _, ing := range r.Ingredients {
		PrintListItem(w, ing, "")
	}
	fmt.Fprintln(w)
	_, _ = labelColor.Fprintln(w, "  Steps")
	for i, step := range r.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintln(w)
	_, _ = labelColor.Fprintln(w, "  Nutrition")
	PrintLabelValue(w, "Calories", fmt.Sprintf("%d", r.Nutrition.Calories))
	PrintLabelValue(w, "Protein", r.Nutrition.Protein)
	PrintLabelValue(w, "Carbs", r.Nutrition.Carbs)
	PrintLabelValue(w, "Fat", r.Nutrition.Fat)
}
