package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVParser parses favorites from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed favorites.
// Expected columns: id, name (optional)
func (p *CSVParser) Parse(r io.Reader) ([]RawFavorite, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	if _, ok := colIndex["id"]; !ok {
		return nil, fmt.Errorf("missing required column: id")
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawFavorites.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawFavorite, error) {
	favorites := []RawFavorite{}
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		fav, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}

	return favorites, nil
}

// parseRecord converts a CSV record to a RawFavorite.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawFavorite, error) {
	idStr := strings.TrimSpace(getColumn(record, colIndex, "id"))
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return RawFavorite{}, fmt.Errorf("line %d: invalid id value %q: %w", lineNum, idStr, err)
	}

	return RawFavorite{
		ID:      id,
		Name:    getColumn(record, colIndex, "name"),
		LineNum: lineNum,
	}, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
