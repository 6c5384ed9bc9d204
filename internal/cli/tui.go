package cli

import (
	"errors"
	"io"
	"os"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/tui"
	"github.com/akyairhashvil/greenbite/internal/util"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the interactive app needs a terminal; see greenbite --help for scriptable commands")

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiOptions shares one terminal bell between timer expiries and the
// ambience keys. With sound disabled both stay silent.
func tuiOptions(cfg config.Settings, bell io.Writer) tui.Options {
	opts := tui.Options{
		Settings:   cfg,
		ReportsDir: util.ReportsDir(config.AppName),
	}
	if cfg.SoundEnabled() {
		player := &wellness.BellPlayer{W: bell}
		opts.Player = player
		opts.Ambience = player
	}
	return opts
}

func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	if !isTerminal() {
		return errNotTerminal
	}
	env, err := loadEnv(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	db, err := env.openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { util.LogError("close database", db.Close()) }()

	tui.AppVersion = version
	model := tui.NewMainModel(ctx, db, tuiOptions(env.cfg, os.Stderr))

	p := tea.NewProgram(model, tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
