package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawFavorite
	}{
		{
			name:  "ids with names",
			input: `[{"id": 25, "name": "pikachu"}, {"id": 133}]`,
			expected: []RawFavorite{
				{ID: 25, Name: "pikachu", LineNum: 1},
				{ID: 133, LineNum: 2},
			},
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: []RawFavorite{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	parser := &JSONParser{}

	_, err := parser.Parse(strings.NewReader("not json"))
	require.Error(t, err)

	_, err = parser.Parse(strings.NewReader(`[{"id": "twenty-five"}]`))
	require.Error(t, err)
}

func TestJSONParser_Parse_RejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing id",
			input:   `[{"id": 25}, {"name": "eevee"}]`,
			wantErr: "entry 2: missing required field: id",
		},
		{
			name:    "null id",
			input:   `[{"id": null}]`,
			wantErr: "entry 1: missing required field: id",
		},
		{
			name:    "unknown field",
			input:   `[{"id": 6, "evolution_tree": {}}]`,
			wantErr: `unknown field "evolution_tree"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJSONParser_Parse_ExplicitZeroID(t *testing.T) {
	parser := &JSONParser{}

	result, err := parser.Parse(strings.NewReader(`[{"id": 0}]`))
	require.NoError(t, err)
	assert.Equal(t, []RawFavorite{{ID: 0, LineNum: 1}}, result)
}

func TestCSVParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawFavorite
	}{
		{
			name:  "id only",
			input: "id\n25\n133\n",
			expected: []RawFavorite{
				{ID: 25, LineNum: 2},
				{ID: 133, LineNum: 3},
			},
		},
		{
			name:  "columns in any order",
			input: "name,ID\npikachu, 25\n",
			expected: []RawFavorite{
				{ID: 25, Name: "pikachu", LineNum: 2},
			},
		},
		{
			name:     "header only",
			input:    "id,name\n",
			expected: []RawFavorite{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCSVParser_Parse_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty input", "", "reading CSV header"},
		{"missing id column", "name\npikachu\n", "missing required column: id"},
		{"non-numeric id", "id\n25\nabc\n", "line 3: invalid id value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("JSON"))
	assert.IsType(t, &CSVParser{}, ForFormat("csv"))
	assert.Nil(t, ForFormat("xml"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("favorites.json"))
	assert.IsType(t, &CSVParser{}, ForFile("/tmp/FAVORITES.CSV"))
	assert.Nil(t, ForFile("favorites.txt"))
}
