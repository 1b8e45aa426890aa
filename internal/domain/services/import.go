package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/infrastructure/parsers"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate without saving
}

// ImportError represents an error for a specific favorite during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// Import adds parsed favorites that are not already present, keeping file order.
// Invalid rows are reported and never abort the rest of the import.
func (s *FavoritesService) Import(ctx context.Context, raws []parsers.RawFavorite, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}
	seen := make(map[entities.EntityID]bool, len(raws))

	for i, raw := range raws {
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		if raw.ID <= 0 {
			result.Errors = append(result.Errors, ImportError{
				Line:    lineNum,
				Value:   strconv.Itoa(raw.ID),
				Message: fmt.Sprintf("invalid id %d", raw.ID),
			})
			continue
		}

		id := entities.EntityID(raw.ID)
		if seen[id] {
			result.Skipped++
			continue
		}
		seen[id] = true

		exists, err := s.IsFavorite(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped++
			continue
		}

		if !opts.DryRun {
			if _, err := s.Toggle(ctx, id); err != nil {
				return nil, err
			}
		}
		result.Imported++
	}

	return result, nil
}
