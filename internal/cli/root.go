package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/itemdeck/internal/config"
	"github.com/Makepad-fr/itemdeck/internal/logging"
	"github.com/Makepad-fr/itemdeck/internal/store"
	"github.com/Makepad-fr/itemdeck/internal/tui"
	"github.com/Makepad-fr/itemdeck/internal/ui"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// Exit codes: 0 ok, 1 runtime error, 2 usage or invalid input.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by what the user typed or fed in.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// Options carry root flags into subcommands.
type Options struct {
	ConfigPath string
	Theme      string
	Verbose    bool
}

// app is what PersistentPreRunE prepares for every command.
type app struct {
	opt    Options
	cfg    config.Config
	logger *zap.Logger
}

func (a *app) newStore() *store.Store {
	return store.New(
		store.WithIDGenerator(store.Generator(a.cfg.IDStrategy)),
		store.WithLogger(a.logger),
	)
}

func (a *app) setup(interactive bool) error {
	cfg, err := config.Load(a.opt.ConfigPath)
	if err != nil {
		return usage("config: %w", err)
	}
	if a.opt.Theme != "" {
		cfg.Theme = a.opt.Theme
		if err := cfg.Validate(); err != nil {
			return usage("--theme: %w", err)
		}
	}
	ui.SetTheme(cfg.Theme)

	logger, err := logging.New(cfg, a.opt.Verbose, interactive)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	logger.Debug("configuration loaded", zap.String("source", cfg.Source), zap.String("theme", cfg.Theme))
	return nil
}

// NewRootCmd builds the command tree. Running it without a subcommand opens the TUI.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "itemdeck",
		Short: "itemdeck - create, edit and delete short text items",
		Long: `itemdeck keeps a list of short items (title + description) in memory.

Run without arguments to open the interactive list:
  a add • e edit • d delete • q quit

Nothing is saved; the list lives as long as the process.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usage("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Parent() == nil)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.newStore(), tui.Options{
				DateLayout: a.cfg.DateLayout,
				Logger:     a.logger,
			})
		},
	}
	root.PersistentFlags().StringVarP(&a.opt.ConfigPath, "config", "c", "", "config file (or set "+config.EnvConfig+")")
	root.PersistentFlags().StringVar(&a.opt.Theme, "theme", "", "color theme: classic, neon or mono")
	root.PersistentFlags().BoolVarP(&a.opt.Verbose, "verbose", "v", false, "enable debug logging")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(newApplyCmd(a))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "itemdeck "+Version)
		},
	})
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Hint: run `itemdeck --help` for usage"))
		return exitUsage
	}
	return exitError
}
