package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ProgressReporter prints the progress of crossword data generation to the terminal.
type ProgressReporter struct {
	stdoutWriter io.Writer
	bold         *color.Color
	green        *color.Color
}

func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		green:        color.New(color.FgGreen),
	}
}

// Processing implements crossword.ProgressReporter.
func (reporter *ProgressReporter) Processing(index, total int, word string) {
	_, _ = fmt.Fprintf(reporter.stdoutWriter, "Processing %d/%d: %s\n", index, total, reporter.bold.Sprint(word))
}

func (reporter *ProgressReporter) Clue(word, clue string) {
	_, _ = fmt.Fprintf(reporter.stdoutWriter, "%s: %s\n", reporter.bold.Sprint(word), clue)
}

func (reporter *ProgressReporter) Complete() {
	_, _ = reporter.green.Fprintln(reporter.stdoutWriter, "Crossword data generation complete!")
}
