package services

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testBaseURL = "https://pokeapi.test/api/v2"

func pokemonURL(id int) string {
	return fmt.Sprintf("%s/pokemon/%d/", testBaseURL, id)
}

func speciesURL(id int) string {
	return fmt.Sprintf("%s/pokemon-species/%d/", testBaseURL, id)
}

func itemURL(name string) string {
	return fmt.Sprintf("%s/item/%s/", testBaseURL, name)
}

func locationURL(name string) string {
	return fmt.Sprintf("%s/location/%s/", testBaseURL, name)
}

func chainURL(id int) string {
	return fmt.Sprintf("%s/evolution-chain/%d/", testBaseURL, id)
}

func intPtr(n int) *int {
	return &n
}

func named(canonical, korean string) *entities.NamedRecord {
	rec := &entities.NamedRecord{CanonicalName: canonical}
	if korean != "" {
		rec.Translations = []entities.Translation{
			{LocaleTag: "en", Name: canonical},
			{LocaleTag: "ko", Name: korean},
		}
	}
	return rec
}

// addSpeciesName registers the named record used to resolve a chain node.
func addSpeciesName(c *mocks.Catalog, id int, canonical, korean string) {
	c.Named[speciesURL(id)] = named(canonical, korean)
}

func chainNode(id int, name string, conditions []entities.RawCondition, children ...entities.RawChainNode) entities.RawChainNode {
	return entities.RawChainNode{
		Species:    entities.NamedRef{Name: name, URL: speciesURL(id)},
		Conditions: conditions,
		EvolvesTo:  children,
	}
}

// eeveeCatalog builds a branching chain: eevee -> vaporeon, jolteon, flareon.
func eeveeCatalog() (*mocks.Catalog, *entities.RawChainNode) {
	c := mocks.NewCatalog()
	addSpeciesName(c, 133, "eevee", "이브이")
	addSpeciesName(c, 134, "vaporeon", "샤미드")
	addSpeciesName(c, 135, "jolteon", "쥬피썬더")
	addSpeciesName(c, 136, "flareon", "부스터")
	c.Named[itemURL("water-stone")] = named("water-stone", "물의돌")
	c.Named[itemURL("thunder-stone")] = named("thunder-stone", "천둥의돌")
	c.Named[itemURL("fire-stone")] = named("fire-stone", "불꽃의돌")

	useItem := func(item string) []entities.RawCondition {
		return []entities.RawCondition{{
			Trigger: "use-item",
			Item:    &entities.NamedRef{Name: item, URL: itemURL(item)},
		}}
	}

	root := chainNode(133, "eevee", nil,
		chainNode(134, "vaporeon", useItem("water-stone")),
		chainNode(135, "jolteon", useItem("thunder-stone")),
		chainNode(136, "flareon", useItem("fire-stone")),
	)
	c.Chains[chainURL(67)] = &root
	return c, &root
}

// charizardCatalog builds charmander's full aggregate inputs, including
// special form variants with a duplicate source ref and a regional variant.
func charizardCatalog() *mocks.Catalog {
	c := mocks.NewCatalog()
	addSpeciesName(c, 4, "charmander", "파이리")
	addSpeciesName(c, 5, "charmeleon", "리자드")
	addSpeciesName(c, 6, "charizard", "리자몽")

	c.Entities["6"] = &entities.RawEntity{
		ID:         6,
		Name:       "charizard",
		Types:      []string{"fire", "flying"},
		Stats:      []entities.Stat{{Name: "hp", Base: 78}, {Name: "attack", Base: 84}},
		SpriteRef:  "https://img.test/6.png",
		SpeciesRef: speciesURL(6),
	}
	c.Entities[pokemonURL(10034)] = &entities.RawEntity{
		ID: 10034, Name: "charizard-mega-x", Types: []string{"fire", "dragon"}, SpriteRef: "https://img.test/10034.png",
	}
	c.Entities[pokemonURL(10035)] = &entities.RawEntity{
		ID: 10035, Name: "charizard-mega-y", Types: []string{"fire", "flying"}, SpriteRef: "https://img.test/10035.png",
	}

	c.Species[speciesURL(6)] = &entities.RawSpecies{
		ID:   6,
		Name: "charizard",
		Translations: []entities.Translation{
			{LocaleTag: "ja", Name: "リザードン"},
			{LocaleTag: "ko", Name: "리자몽"},
		},
		Variants: []entities.RawVariant{
			{SourceRef: pokemonURL(6), VariantID: "charizard", IsDefault: true},
			{SourceRef: pokemonURL(10034), VariantID: "charizard-mega-x"},
			{SourceRef: pokemonURL(10035), VariantID: "charizard-mega-y"},
			{SourceRef: pokemonURL(10034), VariantID: "charizard-mega-x"},
			{SourceRef: pokemonURL(10196), VariantID: "charizard-gmax"},
		},
		ChainRef: chainURL(2),
	}

	root := chainNode(4, "charmander", nil,
		chainNode(5, "charmeleon", []entities.RawCondition{{Trigger: "level-up", MinLevel: intPtr(16)}},
			chainNode(6, "charizard", []entities.RawCondition{{Trigger: "level-up", MinLevel: intPtr(36)}}),
		),
	)
	c.Chains[chainURL(2)] = &root
	return c
}
