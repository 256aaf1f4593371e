package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/cluegen/internal/crossword"
	"github.com/at-ishikawa/cluegen/internal/dictionary"
	"github.com/at-ishikawa/cluegen/internal/wordlist"
)

type GenerateOptions struct {
	InputFile  string
	OutputFile string
	Delay      time.Duration
}

// GenerateCrosswordData reads the word list, resolves a clue for every word and writes the
// crossword data file. Nothing is written unless every word has been processed.
func GenerateCrosswordData(
	ctx context.Context,
	lookup dictionary.DefinitionLookup,
	options GenerateOptions,
	reporter *ProgressReporter,
) error {
	words, err := wordlist.Read(options.InputFile)
	if err != nil {
		return fmt.Errorf("wordlist.Read > %w", err)
	}
	slog.Default().Debug("word list loaded", "file", options.InputFile, "count", len(words))

	enricher := crossword.NewEnricher(lookup, options.Delay, reporter)
	entries, err := enricher.Enrich(ctx, words)
	if err != nil {
		return fmt.Errorf("enricher.Enrich > %w", err)
	}

	if err := crossword.WriteFile(options.OutputFile, entries); err != nil {
		return fmt.Errorf("crossword.WriteFile > %w", err)
	}
	slog.Default().Debug("crossword data written", "file", options.OutputFile, "count", len(entries))

	reporter.Complete()
	return nil
}

// LookupClue prints the clue crossword data would get for word.
func LookupClue(ctx context.Context, lookup dictionary.DefinitionLookup, word string, reporter *ProgressReporter) {
	enricher := crossword.NewEnricher(lookup, 0, reporter)
	reporter.Clue(word, enricher.Clue(ctx, word))
}
