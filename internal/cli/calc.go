package cli

import (
	"fmt"

	"github.com/akyairhashvil/greenbite/internal/calculator"
	"github.com/spf13/cobra"
)

type calcOutput struct {
	BMR      int `json:"bmr"`
	TDEE     int `json:"tdee"`
	CarbsG   int `json:"carbs_g"`
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
}

func newCalcCmd(opts *globalOptions) *cobra.Command {
	var age, height, weight, activity float64
	var gender string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate BMR, TDEE and daily macros",
		Long: `Estimate basal metabolic rate with the Mifflin-St Jeor equation, scale it by
an activity factor and split the result 50/20/30 into carbs, protein and fat.

Activity factors: 1.2 sedentary, 1.375 light, 1.55 moderate, 1.725 very, 1.9 athlete.`,
		Example: "  greenbite calc --age 30 --gender male --height 180 --weight 80 --activity 1.55",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := calculator.Input{
				Age:      age,
				Gender:   calculator.ParseGender(gender),
				HeightCm: height,
				WeightKg: weight,
				Activity: activity,
			}
			if in.Activity <= 0 {
				in.Activity = calculator.ActivityLevels[0].Factor
			}
			res, err := calculator.Calculate(in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(w, calcOutput{
					BMR:      res.RoundedBMR(),
					TDEE:     res.RoundedTDEE(),
					CarbsG:   res.RoundedCarbs(),
					ProteinG: res.RoundedProtein(),
					FatG:     res.RoundedFat(),
				})
			}
			PrintSection(w, "Daily energy")
			PrintLabelValue(w, "BMR", fmt.Sprintf("%d kcal", res.RoundedBMR()))
			PrintLabelValue(w, "TDEE", fmt.Sprintf("%d kcal", res.RoundedTDEE()))
			PrintLabelValue(w, "Carbs", fmt.Sprintf("%dg", res.RoundedCarbs()))
			PrintLabelValue(w, "Protein", fmt.Sprintf("%dg", res.RoundedProtein()))
			PrintLabelValue(w, "Fat", fmt.Sprintf("%dg", res.RoundedFat()))
			return nil
		},
	}
	cmd.Flags().Float64Var(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&gender, "gender", "male", "male or female")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&activity, "activity", calculator.ActivityLevels[0].Factor, "Activity factor")
	return cmd
}
