package main

import (
	"fmt"
	"os"

	"github.com/kievzenit/kut/internal/frontend"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			tokens, err := frontend.Tokenize(name, src)
			if err != nil {
				return report(cmd.ErrOrStderr(), err)
			}
			a.logger.Debug("tokenized", "file", name, "tokens", len(tokens))

			out := cmd.OutOrStdout()
			for _, token := range tokens {
				fmt.Fprintf(out, "%d:%d\t%s\n", token.Metadata.Line, token.Metadata.Column, token.String())
			}
			return nil
		},
	}
}

func readFile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return src, nil
}
