package main

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/cluegen/internal/cli"
	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write crossword data with a clue for every word of the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			lookup, closer, err := newDefinitionLookup(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := closer.Close(); err != nil {
					slog.Default().Warn("failed to close the dictionary client", "error", err)
				}
			}()

			if err := cli.GenerateCrosswordData(cmd.Context(), lookup, cli.GenerateOptions{
				InputFile:  cfg.Words.InputFile,
				OutputFile: cfg.Words.OutputFile,
				Delay:      cfg.Enricher.Delay,
			}, cli.NewProgressReporter()); err != nil {
				return fmt.Errorf("cli.GenerateCrosswordData > %w", err)
			}
			return nil
		},
	}
}
