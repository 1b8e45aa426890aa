package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses favorites from a JSON array of {"id": n} objects.
// Unknown fields are rejected.
type JSONParser struct{}

// jsonFavorite distinguishes a missing id from an explicit zero.
type jsonFavorite struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// Parse reads JSON from the reader and returns parsed favorites.
// Entries are numbered by array position, starting at 1.
func (p *JSONParser) Parse(r io.Reader) ([]RawFavorite, error) {
	var entries []jsonFavorite

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	favorites := make([]RawFavorite, 0, len(entries))
	for i, e := range entries {
		if e.ID == nil {
			return nil, fmt.Errorf("entry %d: missing required field: id", i+1)
		}
		favorites = append(favorites, RawFavorite{
			ID:      *e.ID,
			Name:    e.Name,
			LineNum: i + 1,
		})
	}

	return favorites, nil
}
