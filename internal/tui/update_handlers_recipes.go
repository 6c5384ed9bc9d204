package tui

import (
	"path/filepath"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/export"
	"github.com/akyairhashvil/greenbite/internal/recipes"
	"github.com/akyairhashvil/greenbite/internal/util"
)

// refreshRecipes reapplies the search box and category to the catalog.
func (m *MainModel) refreshRecipes() {
	m.results = recipes.Search(recipes.All, m.search.Value(), m.recipeCategory())
	if m.recipeCursor >= len(m.results) {
		m.recipeCursor = 0
	}
}

func (m MainModel) cycleCategory() MainModel {
	m.category = util.Wrap(m.category+1, len(recipes.Categories()))
	m.refreshRecipes()
	return m
}

func (m MainModel) moveRecipeCursor(delta int) MainModel {
	if len(m.results) == 0 {
		return m
	}
	m.recipeCursor = util.Clamp(m.recipeCursor+delta, 0, len(m.results)-1)
	return m
}

func (m MainModel) openRecipe() MainModel {
	if m.recipeCursor < len(m.results) {
		r := m.results[m.recipeCursor]
		m.detail = &r
	}
	return m
}

// exportRecipes writes the currently listed recipes to the reports dir.
func (m MainModel) exportRecipes(name string) MainModel {
	if len(m.results) == 0 {
		m.Message = "No recipes to export."
		return m
	}
	path, err := export.RecipesToFile(filepath.Join(m.exportDir(), name), m.results)
	if err != nil {
		util.LogError("export recipes", err)
		m.err = err
		return m
	}
	m.Message = "Exported to " + path
	return m
}

func (m MainModel) exportDir() string {
	if m.reportsDir != "" {
		return m.reportsDir
	}
	return util.ReportsDir(config.AppName)
}
