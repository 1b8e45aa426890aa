// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityID identifies one base catalog entry and its default form.
type EntityID int

// ParseEntityID parses a positive decimal identifier.
func ParseEntityID(s string) (EntityID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return EntityID(n), nil
}

// IDFromRef extracts the trailing numeric path segment of a resource URL,
// e.g. ".../pokemon-species/25/" yields 25.
func IDFromRef(ref string) (EntityID, bool) {
	trimmed := strings.TrimRight(ref, "/")
	idx := strings.LastIndex(trimmed, "/")
	n, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return EntityID(n), true
}

// String returns the decimal form used in catalog paths.
func (id EntityID) String() string {
	return strconv.Itoa(int(id))
}

// LocalizedName is a resolved display name. It is never empty.
type LocalizedName string

// UnknownName is used when no name could be resolved at all.
const UnknownName LocalizedName = "unknown"

// Translation is one entry of a record's name-translation list.
type Translation struct {
	LocaleTag string `json:"locale_tag"`
	Name      string `json:"name"`
}

// Stat is one named base stat, kept in source order.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// FormRecord describes one discovered special form.
// SourceRef is unique within a SpeciesAggregate.
type FormRecord struct {
	SourceRef string   `json:"source_ref"`
	Label     string   `json:"label"`
	Types     []string `json:"types"`
	SpriteRef string   `json:"sprite_ref"`
}

// SpeciesAggregate is the complete view model for one catalog entry.
// It is built once per request and never mutated afterwards.
type SpeciesAggregate struct {
	ID            EntityID       `json:"id"`
	Name          LocalizedName  `json:"name"`
	CanonicalName string         `json:"canonical_name"`
	Types         []string       `json:"types"`
	Stats         []Stat         `json:"stats"`
	SpriteRef     string         `json:"sprite_ref"`
	Forms         []FormRecord   `json:"forms"`
	EvolutionTree *EvolutionNode `json:"evolution_tree"`
}
