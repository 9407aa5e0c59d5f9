package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/kievzenit/kut/internal/astdump"
	"github.com/kievzenit/kut/internal/config"
	"github.com/kievzenit/kut/internal/frontend"
	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

func newParseCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a source file and print its syntax tree",
		Long: `Parse a source file and print its syntax tree.

Use - as FILE to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			if !slices.Contains(config.OutputFormats, format) {
				return fmt.Errorf("unknown format %q, expected one of %v", format, config.OutputFormats)
			}

			name, src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := frontend.ParseSource(name, src, frontend.Options{
				Logger:     a.logger,
				KeepTokens: a.cfg.Output.ShowTokens,
			})
			if err != nil {
				return report(cmd.ErrOrStderr(), err)
			}

			return printResult(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: sexpr, litter or yaml (default from config)")

	return cmd
}

func printResult(w io.Writer, result *frontend.Result, format string) error {
	for _, token := range result.Tokens {
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\n", token.Metadata.Line, token.Metadata.Column, token.String()); err != nil {
			return err
		}
	}

	return astdump.Dump(w, result.Program, format)
}

func readSource(cmd *cobra.Command, arg string) (string, []byte, error) {
	if arg == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		return stdinName, src, err
	}

	src, err := readFile(arg)
	return arg, src, err
}
