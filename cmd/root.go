package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kievzenit/kut/internal/compiler_errors"
	"github.com/kievzenit/kut/internal/config"
	"github.com/kievzenit/kut/internal/logging"
	"github.com/spf13/cobra"
)

// errReported means the diagnostics were already written to stderr.
var errReported = errors.New("build failed")

type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kut",
		Short: "Parser front end for the kut expression language",
		Long: `kut parses programs made of empty statements, global declarations
and arithmetic expression statements, and prints the resulting syntax tree.

  global int x;
  (x + 1) * 2;`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newParseCmd(a),
		newTokensCmd(a),
		newWatchCmd(a),
	)

	return root
}

func (a *app) setup(logOutput io.Writer) error {
	cfg, err := config.LoadOrDefault(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(logOutput, cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func report(w io.Writer, err error) error {
	eh := compiler_errors.NewErrorHandler(w)
	eh.AddError(err)
	eh.Flush()

	return errReported
}
