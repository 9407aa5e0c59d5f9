package main

import (
	"errors"
	"fmt"

	"github.com/kievzenit/kut/internal/frontend"
	"github.com/kievzenit/kut/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-parse a source file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if path == "-" {
				return errors.New("standard input cannot be watched, pass a file path")
			}

			w, err := watcher.New(path, a.cfg.Watch.Debounce.Duration, a.logger)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}

			reparse := func() {
				result, err := frontend.ParseFile(path, frontend.Options{
					Logger:     a.logger,
					KeepTokens: a.cfg.Output.ShowTokens,
				})
				if err != nil {
					report(cmd.ErrOrStderr(), err)
					return
				}

				if err := printResult(cmd.OutOrStdout(), result, a.cfg.Output.Format); err != nil {
					a.logger.Error("failed to print result", "file", path, "error", err)
				}
			}

			reparse()
			a.logger.Info("watching", "file", path)

			return w.Run(cmd.Context(), reparse)
		},
	}
}
