package entities

// CatalogEntry is one row of the catalog listing.
type CatalogEntry struct {
	ID            EntityID      `json:"id"`
	CanonicalName string        `json:"canonical_name"`
	Name          LocalizedName `json:"name"`
	SpriteRef     string        `json:"sprite_ref"`
}
