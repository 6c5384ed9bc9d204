package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/export"
	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/recipes"
	"github.com/akyairhashvil/greenbite/internal/util"
	"github.com/akyairhashvil/greenbite/internal/workout"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export plans and recipes to PDF or XLSX",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newExportPlanCmd(opts), newExportRecipesCmd(opts))
	return cmd
}

func defaultExportPath(name string) string {
	return filepath.Join(util.ReportsDir(config.AppName), name)
}

func newExportPlanCmd(opts *globalOptions) *cobra.Command {
	var body, equipment, out string
	var seconds int

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Write a workout plan PDF",
		Example: "  greenbite export plan --body core --out core.pdf",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := workout.GeneratePlan(workout.DefaultCatalog, workout.ParseBodyPart(body), workout.ParseEquipment(equipment), config.DefaultPlanSize)
			if out == "" {
				out = defaultExportPath("greenbite-plan.pdf")
			}
			if !strings.EqualFold(filepath.Ext(out), ".pdf") {
				return fmt.Errorf("plan export only supports .pdf, got %q", filepath.Ext(out))
			}
			path, err := export.PlanToFile(out, plan, seconds)
			if err != nil {
				return err
			}
			return reportExport(cmd, opts, path)
		},
	}
	cmd.Flags().StringVarP(&body, "body", "b", config.DefaultBodyPart, "Body part to train")
	cmd.Flags().StringVarP(&equipment, "equipment", "e", config.DefaultEquipment, "Available equipment")
	cmd.Flags().IntVar(&seconds, "seconds", config.DefaultExerciseSeconds, "Seconds per exercise printed on the plan")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default ~/Documents/GREENBITE/greenbite-plan.pdf)")
	return cmd
}

func newExportRecipesCmd(opts *globalOptions) *cobra.Command {
	var category, out string

	cmd := &cobra.Command{
		Use:     "recipes [query...]",
		Short:   "Write recipes to a PDF or an XLSX nutrition workbook",
		Example: "  greenbite export recipes --out recipes.xlsx\n  greenbite export recipes --category vegan --out vegan.pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := recipes.Search(recipes.All, strings.Join(args, " "), models.RecipeCategory(strings.ToLower(category)))
			if len(list) == 0 {
				return fmt.Errorf("no recipes match")
			}
			if out == "" {
				out = defaultExportPath("greenbite-recipes.xlsx")
			}
			path, err := export.RecipesToFile(out, list)
			if err != nil {
				return err
			}
			return reportExport(cmd, opts, path)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryAll), "Recipe category")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, .pdf or .xlsx (default ~/Documents/GREENBITE/greenbite-recipes.xlsx)")
	return cmd
}

func reportExport(cmd *cobra.Command, opts *globalOptions, path string) error {
	if opts.jsonOutput {
		return outputJSON(cmd.OutOrStdout(), map[string]string{"path": path})
	}
	PrintSuccess(cmd.OutOrStdout(), "Exported to "+path)
	return nil
}
