package pokeapi

// Wire shapes of the PokeAPI v2 resources the client reads.

type apiRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiName struct {
	Name     string `json:"name"`
	Language apiRef `json:"language"`
}

type apiPokemon struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Slot int    `json:"slot"`
		Type apiRef `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int    `json:"base_stat"`
		Stat     apiRef `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Species apiRef `json:"species"`
}

type apiSpecies struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Names     []apiName `json:"names"`
	Varieties []struct {
		IsDefault bool   `json:"is_default"`
		Pokemon   apiRef `json:"pokemon"`
	} `json:"varieties"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type apiEvolutionDetail struct {
	Trigger      apiRef  `json:"trigger"`
	MinLevel     *int    `json:"min_level"`
	Item         *apiRef `json:"item"`
	HeldItem     *apiRef `json:"held_item"`
	MinHappiness *int    `json:"min_happiness"`
	TimeOfDay    string  `json:"time_of_day"`
	Location     *apiRef `json:"location"`
}

type apiChainLink struct {
	Species          apiRef               `json:"species"`
	EvolutionDetails []apiEvolutionDetail `json:"evolution_details"`
	EvolvesTo        []apiChainLink       `json:"evolves_to"`
}

type apiEvolutionChain struct {
	ID    int          `json:"id"`
	Chain apiChainLink `json:"chain"`
}

type apiNamedResource struct {
	Name  string    `json:"name"`
	Names []apiName `json:"names"`
}

type apiResourceList struct {
	Count   int      `json:"count"`
	Results []apiRef `json:"results"`
}
