package entities

// NamedRef is a catalog reference: a canonical name plus the resource URL.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RawEntity is the base entity record as returned by the catalog.
type RawEntity struct {
	ID         EntityID
	Name       string
	Types      []string
	Stats      []Stat
	SpriteRef  string
	SpeciesRef string
}

// RawVariant is one entry of a species' variant list.
type RawVariant struct {
	SourceRef string
	VariantID string
	IsDefault bool
}

// RawSpecies is the species metadata record.
type RawSpecies struct {
	ID           EntityID
	Name         string
	Translations []Translation
	Variants     []RawVariant
	ChainRef     string
}

// RawCondition is one unresolved trigger-condition record on an evolution edge.
type RawCondition struct {
	Trigger      string
	MinLevel     *int
	Item         *NamedRef
	MinHappiness *int
	TimeOfDay    string
	Location     *NamedRef
}

// RawChainNode is one node of the catalog's evolution chain description.
type RawChainNode struct {
	Species    NamedRef
	Conditions []RawCondition
	EvolvesTo  []RawChainNode
}

// NamedRecord is any catalog resource that carries a translated name list.
type NamedRecord struct {
	CanonicalName string
	Translations  []Translation
}

// EntityPage is one page of the paginated entity listing.
type EntityPage struct {
	Total   int
	Results []NamedRef
}
