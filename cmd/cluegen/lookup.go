package main

import (
	"log/slog"

	"github.com/at-ishikawa/cluegen/internal/cli"
	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show the clue a word would get",
		Args:  cobra.ExactArgs(1),
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

			cli.LookupClue(cmd.Context(), lookup, args[0], cli.NewProgressReporter())
			return nil
		},
	}
}
