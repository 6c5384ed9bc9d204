package cli

import (
	"fmt"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/workout"
	"github.com/spf13/cobra"
)

type planExercise struct {
	Name      string             `json:"name"`
	Equipment []models.Equipment `json:"equipment"`
}

type planOutput struct {
	Body      models.BodyPart  `json:"body"`
	Equipment models.Equipment `json:"equipment"`
	Exercises []planExercise   `json:"exercises"`
}

func newPlanCmd(opts *globalOptions) *cobra.Command {
	var body, equipment string
	var size int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a workout plan",
		Long: `Generate a short workout plan for a body part and the equipment you have.

Body parts: full, arms, legs, core. Equipment: none, any, dumbbells, resistance.
Unknown values fall back to full body and no equipment.`,
		Example: "  greenbite plan --body legs --equipment dumbbells",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				size = config.DefaultPlanSize
				if env, err := loadEnv(opts); err == nil {
					size = env.cfg.PlanSize
					env.Close()
				}
			}
			plan := workout.GeneratePlan(workout.DefaultCatalog, workout.ParseBodyPart(body), workout.ParseEquipment(equipment), size)
			return printPlan(cmd, opts, plan)
		},
	}
	cmd.Flags().StringVarP(&body, "body", "b", config.DefaultBodyPart, "Body part to train")
	cmd.Flags().StringVarP(&equipment, "equipment", "e", config.DefaultEquipment, "Available equipment")
	cmd.Flags().IntVarP(&size, "size", "n", config.DefaultPlanSize, fmt.Sprintf("Number of exercises (1-%d)", config.MaxPlanSize))
	return cmd
}

func printPlan(cmd *cobra.Command, opts *globalOptions, plan workout.Plan) error {
	w := cmd.OutOrStdout()
	if opts.jsonOutput {
		out := planOutput{Body: plan.Body, Equipment: plan.Equipment, Exercises: []planExercise{}}
		for _, ex := range plan.Exercises {
			out.Exercises = append(out.Exercises, planExercise{Name: ex.Name, Equipment: ex.Equipment})
		}
		return outputJSON(w, out)
	}

	PrintSection(w, "Your Plan")
	PrintLabelValue(w, "Body part", string(plan.Body))
	PrintLabelValue(w, "Equipment", string(plan.Equipment))
	fmt.Fprintln(w)
	if len(plan.Exercises) == 0 {
		PrintEmptyState(w, "No exercises match this selection.")
		return nil
	}
	for _, ex := range plan.Exercises {
		PrintListItem(w, ex.Name, ex.EquipmentLabel())
	}
	return nil
}
