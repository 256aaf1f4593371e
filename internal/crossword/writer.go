package crossword

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteFile writes entries to path as YAML for .yml/.yaml files and as indented JSON otherwise.
// The file is replaced atomically, so a failed write never leaves a partial file behind.
func WriteFile(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	contents, err := encode(path, entries)
	if err != nil {
		return fmt.Errorf("encode > %w", err)
	}

	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tempPath := file.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("os.Chmod > %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

func encode(path string, entries []Entry) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(entries); err != nil {
			return nil, fmt.Errorf("encoder.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encoder.Close > %w", err)
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(entries); err != nil {
			return nil, fmt.Errorf("encoder.Encode > %w", err)
		}
		return buf.Bytes(), nil
	}
}
