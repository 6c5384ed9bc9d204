// Package export writes workout plans and recipes to PDF and XLSX files.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/workout"
	"github.com/go-pdf/fpdf"
)

func newDocument() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("GreenBite", true)
	pdf.SetAuthor("GreenBite", true)
	// Core fonts are cp1252; translate UTF-8 text (é, –, ’) before drawing.
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// WritePlanPDF renders a workout plan as a one-page PDF.
func WritePlanPDF(w io.Writer, plan workout.Plan, seconds int) error {
	pdf, tr := newDocument()
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Your Plan"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Body part: %s    Equipment: %s", plan.Body, plan.Equipment)))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%d seconds per exercise", seconds)))
	pdf.Ln(12)

	if len(plan.Exercises) == 0 {
		pdf.Cell(0, 8, tr("  - No exercises match this selection."))
		pdf.Ln(8)
	}
	for i, ex := range plan.Exercises {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, ex.Name)))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, tr("     "+ex.EquipmentLabel()))
		pdf.Ln(8)
	}

	return output(pdf, w)
}

// WriteRecipesPDF renders one section per recipe.
func WriteRecipesPDF(w io.Writer, list []models.Recipe) error {
	pdf, tr := newDocument()
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("GreenBite Recipes"))
	pdf.Ln(14)

	for i, r := range list {
		if i > 0 {
			pdf.Ln(6)
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(fmt.Sprintf("%s (%s)", r.Title, r.Category)))
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, tr(r.Description), "", "", false)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Ingredients")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for _, ing := range r.Ingredients {
			pdf.Cell(0, 6, tr("  - "+ing))
			pdf.Ln(6)
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Steps")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for n, step := range r.Steps {
			pdf.Cell(0, 6, tr(fmt.Sprintf("  %d. %s", n+1, step)))
			pdf.Ln(6)
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Nutrition")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for _, row := range nutritionRows(r.Nutrition) {
			pdf.CellFormat(30, 6, row[0], "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, row[1], "1", 1, "R", false, 0, "")
		}
	}

	return output(pdf, w)
}

func nutritionRows(n models.Nutrition) [][2]string {
	return [][2]string{
		{"Calories", fmt.Sprintf("%d", n.Calories)},
		{"Protein", n.Protein},
		{"Carbs", n.Carbs},
		{"Fat", n.Fat},
	}
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Grams parses a nutrition string like "42g" into a number. Unparseable
// values are zero.
func Grams(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "g")
	var v float64
	if _, err := fmt.Sscanf(s, "%g", &v); err != nil {
		return 0
	}
	return v
}
