package cli

import (
	"fmt"

	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/spf13/cobra"
)

type historyOutput struct {
	MeditationSessions int                      `json:"meditation_sessions"`
	Workouts           []models.WorkoutLogEntry `json:"workouts"`
}

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed workouts and meditation sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			db, err := env.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			sessions, err := db.CountMeditations(cmd.Context())
			if err != nil {
				return err
			}
			workouts, err := db.RecentWorkouts(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				if workouts == nil {
					workouts = []models.WorkoutLogEntry{}
				}
				return outputJSON(w, historyOutput{MeditationSessions: sessions, Workouts: workouts})
			}
			PrintSection(w, "History")
			PrintLabelValue(w, "Meditation sessions", fmt.Sprintf("%d", sessions))
			fmt.Fprintln(w)
			if len(workouts) == 0 {
				PrintEmptyState(w, "No workouts logged yet.")
				return nil
			}
			for _, e := range workouts {
				PrintListItem(w, e.Exercise, fmt.Sprintf("%ds, %s", e.Seconds, e.CompletedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of workouts to show")
	return cmd
}
