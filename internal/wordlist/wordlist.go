// Package wordlist reads the list of words to build crossword data from.
package wordlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Read returns the words in the file at path, in file order and unmodified.
// .yml/.yaml files are parsed as a YAML sequence, anything else as a JSON array of strings.
func Read(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(contents, &words); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
		}
	default:
		if err := json.Unmarshal(contents, &words); err != nil {
			return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
		}
	}

	if words == nil {
		return nil, fmt.Errorf("%s does not contain a list of words", path)
	}
	return words, nil
}
