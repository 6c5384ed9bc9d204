// Package cli wires the greenbite command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version printed by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. With no subcommand it launches the
// interactive UI.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "greenbite",
		Version: version,
		Short:   "Recipes, workouts and mindfulness in your terminal",
		Long: `greenbite is a terminal wellness companion.

Run it with no arguments for the interactive app, or use the subcommands to
generate workout plans, run timers, browse recipes and export them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory for the database, log and config (default $XDG_DATA_HOME/greenbite)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.yaml (default <data-dir>/config.yaml)")

	rootCmd.AddGroup(&cobra.Group{ID: "fitness", Title: "Fitness:"})
	rootCmd.AddGroup(&cobra.Group{ID: "food", Title: "Food:"})
	rootCmd.AddGroup(&cobra.Group{ID: "community", Title: "Contact & Newsletter:"})

	addToGroup(rootCmd, "fitness", newPlanCmd(opts), newTimerCmd(opts), newHistoryCmd(opts))
	addToGroup(rootCmd, "food", newRecipesCmd(opts), newCalcCmd(opts), newExportCmd(opts))
	addToGroup(rootCmd, "community", newSubscribeCmd(opts), newUnsubscribeCmd(opts), newContactCmd(opts))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the greenbite version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return rootCmd
}

func addToGroup(root *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.GroupID = group
		root.AddCommand(c)
	}
}

// FormatError renders err the way the CLI prints failures.
func FormatError(err error) string {
	return formatError(err)
}
