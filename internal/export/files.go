package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/workout"
)

// PlanToFile writes the plan PDF to path, creating parent directories.
func PlanToFile(path string, plan workout.Plan, seconds int) (string, error) {
	return writeFile(path, func(f *os.File) error { return WritePlanPDF(f, plan, seconds) })
}

// RecipesToFile picks PDF or XLSX output from the file extension.
func RecipesToFile(path string, list []models.Recipe) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeFile(path, func(f *os.File) error { return WriteRecipesXLSX(f, list) })
	case ".pdf":
		return writeFile(path, func(f *os.File) error { return WriteRecipesPDF(f, list) })
	default:
		return "", fmt.Errorf("unsupported export format %q (use .pdf or .xlsx)", filepath.Ext(path))
	}
}

func writeFile(path string, write func(f *os.File) error) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
