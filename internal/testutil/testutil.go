// Package testutil provides shared test helpers for creating config files and a fake dictionary API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file which reads wordsList.json and writes crosswordData.json
// in tmpDir, looks words up at baseURL and does not pace lookups.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`words:
  input_file: %s
  output_file: %s
enricher:
  delay: 0s
dictionaries:
  free_dictionary:
    base_url: %s
`,
		filepath.Join(tmpDir, "wordsList.json"),
		filepath.Join(tmpDir, "crosswordData.json"),
		baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordList writes words as the JSON word list SetupTestConfig points to.
func WriteWordList(t *testing.T, tmpDir string, words []string) {
	t.Helper()

	contents, err := json.Marshal(words)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "wordsList.json"), contents, 0644))
}

// NewDictionaryServer starts a fake Free Dictionary API which knows the given word definitions
// and answers 404 for any other word. The server is closed when the test ends.
func NewDictionaryServer(t *testing.T, definitions map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		word := strings.TrimPrefix(r.URL.Path, "/")
		definition, ok := definitions[word]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title": "No Definitions Found"}`))
			return
		}

		body, err := json.Marshal([]map[string]any{
			{
				"word": word,
				"meanings": []map[string]any{
					{
						"partOfSpeech": "noun",
						"definitions": []map[string]any{
							{"definition": definition},
						},
					},
				},
			},
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}
