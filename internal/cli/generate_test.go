package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/cluegen/internal/dictionary"
	mock_dictionary "github.com/at-ishikawa/cluegen/internal/mocks/dictionary"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProgressReporter(stdout *bytes.Buffer) *ProgressReporter {
	return &ProgressReporter{
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		green:        color.New(color.FgGreen),
	}
}

func TestGenerateCrosswordData(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name       string
		inputFile  string
		input      string
		outputFile string
		setup      func(lookup *mock_dictionary.MockDefinitionLookup)

		wantErr    bool
		wantOutput string
		wantStdout string
	}{
		{
			name:       "definition found and lookup failed",
			inputFile:  "wordsList.json",
			input:      `["apple", "zxqv123"]`,
			outputFile: "crosswordData.json",
			setup: func(lookup *mock_dictionary.MockDefinitionLookup) {
				gomock.InOrder(
					lookup.EXPECT().LookupDefinition(gomock.Any(), "apple").
						Return("A round fruit with red or green skin", nil),
					lookup.EXPECT().LookupDefinition(gomock.Any(), "zxqv123").
						Return("", fmt.Errorf("client.lookupAPI > %w", dictionary.ErrNotFound)),
				)
			},
			wantOutput: `[
  {
    "id": 1,
    "word": "apple",
    "clue": "A round fruit with red or green skin"
  },
  {
    "id": 2,
    "word": "zxqv123",
    "clue": "A term related to zxqv123"
  }
]
`,
			wantStdout: "Processing 1/2: apple\nProcessing 2/2: zxqv123\nCrossword data generation complete!\n",
		},
		{
			name:       "empty word list",
			inputFile:  "wordsList.json",
			input:      `[]`,
			outputFile: "crosswordData.json",
			setup:      func(lookup *mock_dictionary.MockDefinitionLookup) {},
			wantOutput: "[]\n",
			wantStdout: "Crossword data generation complete!\n",
		},
		{
			name:       "yaml in and out",
			inputFile:  "wordsList.yml",
			input:      "- apple\n",
			outputFile: "crosswordData.yaml",
			setup: func(lookup *mock_dictionary.MockDefinitionLookup) {
				lookup.EXPECT().LookupDefinition(gomock.Any(), "apple").Return("a fruit", nil)
			},
			wantOutput: "- id: 1\n  word: apple\n  clue: a fruit\n",
			wantStdout: "Processing 1/1: apple\nCrossword data generation complete!\n",
		},
		{
			name:       "invalid word list stops before any lookup",
			inputFile:  "wordsList.json",
			input:      `["apple"`,
			outputFile: "crosswordData.json",
			setup:      func(lookup *mock_dictionary.MockDefinitionLookup) {},
			wantErr:    true,
		},
		{
			name:       "output cannot be written",
			inputFile:  "wordsList.json",
			input:      `["apple"]`,
			outputFile: filepath.Join("missing", "crosswordData.json"),
			setup: func(lookup *mock_dictionary.MockDefinitionLookup) {
				lookup.EXPECT().LookupDefinition(gomock.Any(), "apple").Return("a fruit", nil)
			},
			wantErr:    true,
			wantStdout: "Processing 1/1: apple\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			inputFile := filepath.Join(tempDir, tt.inputFile)
			outputFile := filepath.Join(tempDir, tt.outputFile)
			require.NoError(t, os.WriteFile(inputFile, []byte(tt.input), 0644))

			ctrl := gomock.NewController(t)
			lookup := mock_dictionary.NewMockDefinitionLookup(ctrl)
			tt.setup(lookup)

			var stdout bytes.Buffer
			err := GenerateCrosswordData(context.Background(), lookup, GenerateOptions{
				InputFile:  inputFile,
				OutputFile: outputFile,
			}, newTestProgressReporter(&stdout))

			assert.Equal(t, tt.wantStdout, stdout.String())
			if tt.wantErr {
				assert.Error(t, err)
				_, statErr := os.Stat(outputFile)
				assert.True(t, os.IsNotExist(statErr))
				return
			}
			require.NoError(t, err)

			got, err := os.ReadFile(outputFile)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, string(got))
		})
	}
}

func TestGenerateCrosswordData_MissingInput(t *testing.T) {
	tempDir := t.TempDir()
	ctrl := gomock.NewController(t)
	lookup := mock_dictionary.NewMockDefinitionLookup(ctrl)

	var stdout bytes.Buffer
	err := GenerateCrosswordData(context.Background(), lookup, GenerateOptions{
		InputFile:  filepath.Join(tempDir, "wordsList.json"),
		OutputFile: filepath.Join(tempDir, "crosswordData.json"),
	}, newTestProgressReporter(&stdout))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, stdout.String())
}

func TestLookupClue(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name       string
		definition string
		err        error
		want       string
	}{
		{
			name:       "definition found",
			definition: "A round fruit with red or green skin",
			want:       "apple: A round fruit with red or green skin\n",
		},
		{
			name: "lookup failed",
			err:  dictionary.ErrNotFound,
			want: "apple: A term related to apple\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lookup := mock_dictionary.NewMockDefinitionLookup(ctrl)
			lookup.EXPECT().LookupDefinition(gomock.Any(), "apple").Return(tt.definition, tt.err)

			var stdout bytes.Buffer
			LookupClue(context.Background(), lookup, "apple", newTestProgressReporter(&stdout))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}
