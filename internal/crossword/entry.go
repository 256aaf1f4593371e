// Package crossword builds the crossword word data: every word of a word list
// paired with its position and a clue.
package crossword

import "fmt"

// Entry is one enriched word of the crossword data.
type Entry struct {
	ID   int    `json:"id" yaml:"id"`
	Word string `json:"word" yaml:"word"`
	Clue string `json:"clue" yaml:"clue"`
}

// FallbackClue is used when no definition can be found for word.
func FallbackClue(word string) string {
	return fmt.Sprintf("A term related to %s", word)
}
