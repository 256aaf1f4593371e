// https://dictionaryapi.dev
package freedictionary

import (
	"fmt"

	"github.com/at-ishikawa/cluegen/internal/dictionary"
)

// Entry is one element of the API response. The API returns one entry per etymology.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition keeps Definition as a pointer so that a missing field can be told apart
// from an empty one.
type Definition struct {
	Definition *string `json:"definition"`
	Example    string  `json:"example,omitempty"`
}

// FirstDefinition returns the first definition of the first meaning of the first entry.
func FirstDefinition(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no entries > %w", dictionary.ErrNoDefinition)
	}
	meanings := entries[0].Meanings
	if len(meanings) == 0 {
		return "", fmt.Errorf("no meanings in %q > %w", entries[0].Word, dictionary.ErrNoDefinition)
	}
	definitions := meanings[0].Definitions
	if len(definitions) == 0 {
		return "", fmt.Errorf("no definitions in %q > %w", entries[0].Word, dictionary.ErrNoDefinition)
	}
	if definitions[0].Definition == nil {
		return "", fmt.Errorf("missing definition field in %q > %w", entries[0].Word, dictionary.ErrNoDefinition)
	}
	return *definitions[0].Definition, nil
}
