package crossword

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/cluegen/internal/dictionary"
	"golang.org/x/time/rate"
)

// ProgressReporter is notified before each word is looked up.
type ProgressReporter interface {
	Processing(index, total int, word string)
}

type noopProgressReporter struct{}

func (noopProgressReporter) Processing(int, int, string) {}

type Enricher struct {
	lookup   dictionary.DefinitionLookup
	limiter  *rate.Limiter
	progress ProgressReporter
}

// NewEnricher creates an Enricher which starts consecutive lookups at least delay apart.
// A zero delay disables the pacing.
func NewEnricher(lookup dictionary.DefinitionLookup, delay time.Duration, progress ProgressReporter) *Enricher {
	if progress == nil {
		progress = noopProgressReporter{}
	}
	return &Enricher{
		lookup:   lookup,
		limiter:  rate.NewLimiter(rate.Every(delay), 1),
		progress: progress,
	}
}

// Enrich returns one entry per word, in order, with IDs starting from 1.
// Lookup failures fall back to FallbackClue; only a cancelled ctx stops the run.
func (e *Enricher) Enrich(ctx context.Context, words []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(words))
	for i, word := range words {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("limiter.Wait > %w", err)
		}

		e.progress.Processing(i+1, len(words), word)
		entries = append(entries, Entry{
			ID:   i + 1,
			Word: word,
			Clue: e.Clue(ctx, word),
		})
	}
	return entries, nil
}

// Clue looks up the definition of word, or returns FallbackClue if the lookup fails.
func (e *Enricher) Clue(ctx context.Context, word string) string {
	definition, err := e.lookup.LookupDefinition(ctx, word)
	if err != nil {
		slog.Default().Warn("failed to look up a clue",
			"word", word,
			"reason", dictionary.ReasonOf(err),
			"error", err)
		return FallbackClue(word)
	}
	return definition
}
