package export

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/xuri/excelize/v2"
)

// RecipeSheet is the worksheet name used by WriteRecipesXLSX.
const RecipeSheet = "Recipes"

var recipeHeader = []string{"Title", "Category", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)"}

// WriteRecipesXLSX writes a nutrition workbook with one row per recipe.
func WriteRecipesXLSX(w io.Writer, list []models.Recipe) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecipeSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range recipeHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(RecipeSheet, cell, title); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetCellStyle(RecipeSheet, "A1", "F1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(RecipeSheet, "A", "A", 24); err != nil {
		return fmt.Errorf("size columns: %w", err)
	}

	for i, r := range list {
		row := []interface{}{
			r.Title,
			string(r.Category),
			r.Nutrition.Calories,
			Grams(r.Nutrition.Protein),
			Grams(r.Nutrition.Carbs),
			Grams(r.Nutrition.Fat),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(RecipeSheet, cell, &row); err != nil {
			return fmt.Errorf("write recipe %d: %w", r.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
