package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/akyairhashvil/greenbite/internal/clock"
	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/util"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	"github.com/akyairhashvil/greenbite/internal/workout"
	"github.com/spf13/cobra"
)

// workoutLogger records finished runs.
type workoutLogger interface {
	LogWorkout(ctx context.Context, exercise string, seconds int) error
}

func newTimerCmd(opts *globalOptions) *cobra.Command {
	var seconds int
	var exercise string

	cmd := &cobra.Command{
		Use:     "timer",
		Short:   "Run an exercise countdown",
		Long:    "Count down one exercise in the terminal and ring the bell at zero. Completed runs are logged.",
		Example: "  greenbite timer --exercise Burpees --seconds 45",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			if !cmd.Flags().Changed("seconds") {
				seconds = env.cfg.ExerciseSeconds
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var logger workoutLogger
			if db, err := env.openStore(ctx); err != nil {
				util.LogError("timer: open database", err)
			} else {
				defer func() { util.LogError("close database", db.Close()) }()
				logger = db
			}

			var player wellness.Player
			if env.cfg.SoundEnabled() {
				player = &wellness.BellPlayer{W: cmd.OutOrStdout()}
			}
			return runTimer(ctx, clock.RealClock{}, cmd.OutOrStdout(), exercise, time.Duration(seconds)*time.Second, player, logger)
		},
	}
	cmd.Flags().IntVarP(&seconds, "seconds", "s", config.DefaultExerciseSeconds, "Countdown length in seconds")
	cmd.Flags().StringVarP(&exercise, "exercise", "x", "Exercise", "Exercise name to show and log")
	return cmd
}

// runTimer counts down on clk until expiry or until ctx is cancelled.
func runTimer(ctx context.Context, clk clock.Clock, w io.Writer, exercise string, d time.Duration, player wellness.Player, logger workoutLogger) error {
	secs := int(d / time.Second)
	if secs <= 0 {
		secs = config.DefaultExerciseSeconds
	}
	r := workout.NewRunner(clk, time.Duration(secs)*time.Second)
	expired := make(chan struct{})
	r.OnUpdate = func(u workout.Update) {
		fmt.Fprintf(w, "\r%s  %s", u.Exercise, u.Display)
	}
	r.OnExpire = func(name string) error {
		defer close(expired)
		if logger != nil {
			util.LogError("log workout", logger.LogWorkout(ctx, name, secs))
		}
		return wellness.Chime(player)
	}

	r.Select(exercise)
	snap := r.Snapshot()
	fmt.Fprintf(w, "%s  %s", snap.Exercise, snap.Display)
	r.Start(ctx)

	select {
	case <-expired:
		fmt.Fprintln(w)
		PrintSuccess(w, fmt.Sprintf("Time's up! %s done.", exercise))
		return nil
	case <-ctx.Done():
		r.Stop()
		fmt.Fprintln(w)
		PrintWarning(w, "Timer stopped.")
		return nil
	}
}
