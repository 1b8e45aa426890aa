// Package pokeapi provides a Catalog implementation over the PokeAPI v2 REST API.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

const maxErrorBody = 512

// Client implements ports.Catalog against a PokeAPI-compatible server.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient creates a new PokeAPI client.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("catalog base URL is required")
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}, nil
}

// FetchEntity fetches /pokemon/{ref}.
func (c *Client) FetchEntity(ctx context.Context, ref string) (*entities.RawEntity, error) {
	var p apiPokemon
	if err := c.get(ctx, c.resolve("pokemon", ref), &p); err != nil {
		return nil, err
	}

	e := &entities.RawEntity{
		ID:         entities.EntityID(p.ID),
		Name:       p.Name,
		Types:      make([]string, 0, len(p.Types)),
		Stats:      make([]entities.Stat, 0, len(p.Stats)),
		SpriteRef:  p.Sprites.Other.OfficialArtwork.FrontDefault,
		SpeciesRef: p.Species.URL,
	}
	if e.SpriteRef == "" {
		e.SpriteRef = p.Sprites.FrontDefault
	}
	for _, t := range p.Types {
		e.Types = append(e.Types, t.Type.Name)
	}
	for _, s := range p.Stats {
		e.Stats = append(e.Stats, entities.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return e, nil
}

// FetchSpeciesMeta fetches /pokemon-species/{ref}.
func (c *Client) FetchSpeciesMeta(ctx context.Context, ref string) (*entities.RawSpecies, error) {
	var s apiSpecies
	if err := c.get(ctx, c.resolve("pokemon-species", ref), &s); err != nil {
		return nil, err
	}

	species := &entities.RawSpecies{
		ID:           entities.EntityID(s.ID),
		Name:         s.Name,
		Translations: toTranslations(s.Names),
		Variants:     make([]entities.RawVariant, 0, len(s.Varieties)),
	}
	for _, v := range s.Varieties {
		species.Variants = append(species.Variants, entities.RawVariant{
			SourceRef: v.Pokemon.URL,
			VariantID: v.Pokemon.Name,
			IsDefault: v.IsDefault,
		})
	}
	if s.EvolutionChain != nil {
		species.ChainRef = s.EvolutionChain.URL
	}
	return species, nil
}

// FetchChain fetches /evolution-chain/{ref} and returns its root link.
func (c *Client) FetchChain(ctx context.Context, ref string) (*entities.RawChainNode, error) {
	var ch apiEvolutionChain
	if err := c.get(ctx, c.resolve("evolution-chain", ref), &ch); err != nil {
		return nil, err
	}
	root := toChainNode(ch.Chain)
	return &root, nil
}

// FetchNamed fetches any resource with a "names" list. ref is a resource URL
// or a path relative to the base URL such as "item/metal-coat".
func (c *Client) FetchNamed(ctx context.Context, ref string) (*entities.NamedRecord, error) {
	var n apiNamedResource
	if err := c.get(ctx, c.resolve("", ref), &n); err != nil {
		return nil, err
	}
	return &entities.NamedRecord{
		CanonicalName: n.Name,
		Translations:  toTranslations(n.Names),
	}, nil
}

// ListEntities fetches one page of /pokemon.
func (c *Client) ListEntities(ctx context.Context, limit, offset int) (*entities.EntityPage, error) {
	url := c.baseURL + "/pokemon?limit=" + strconv.Itoa(limit) + "&offset=" + strconv.Itoa(offset)

	var list apiResourceList
	if err := c.get(ctx, url, &list); err != nil {
		return nil, err
	}

	page := &entities.EntityPage{
		Total:   list.Count,
		Results: make([]entities.NamedRef, 0, len(list.Results)),
	}
	for _, r := range list.Results {
		page.Results = append(page.Results, entities.NamedRef{Name: r.Name, URL: r.URL})
	}
	return page, nil
}

// resolve turns an id, name, relative path, or absolute URL into a request URL.
func (c *Client) resolve(kind, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	ref = strings.Trim(ref, "/")
	if kind == "" {
		return c.baseURL + "/" + ref + "/"
	}
	return c.baseURL + "/" + kind + "/" + ref + "/"
}

// get performs a GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: building request for %s: %v", entities.ErrUnavailable, url, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", entities.ErrUnavailable, url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", entities.ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: GET %s: status %d: %s", entities.ErrUnavailable, url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", entities.ErrUnavailable, url, err)
	}
	return nil
}

func toTranslations(names []apiName) []entities.Translation {
	out := make([]entities.Translation, 0, len(names))
	for _, n := range names {
		out = append(out, entities.Translation{LocaleTag: n.Language.Name, Name: n.Name})
	}
	return out
}

func toChainNode(link apiChainLink) entities.RawChainNode {
	node := entities.RawChainNode{
		Species:    entities.NamedRef{Name: link.Species.Name, URL: link.Species.URL},
		Conditions: make([]entities.RawCondition, 0, len(link.EvolutionDetails)),
		EvolvesTo:  make([]entities.RawChainNode, 0, len(link.EvolvesTo)),
	}
	for _, d := range link.EvolutionDetails {
		item := d.Item
		if item == nil {
			item = d.HeldItem
		}
		node.Conditions = append(node.Conditions, entities.RawCondition{
			Trigger:      d.Trigger.Name,
			MinLevel:     d.MinLevel,
			Item:         toNamedRef(item),
			MinHappiness: d.MinHappiness,
			TimeOfDay:    d.TimeOfDay,
			Location:     toNamedRef(d.Location),
		})
	}
	for _, child := range link.EvolvesTo {
		node.EvolvesTo = append(node.EvolvesTo, toChainNode(child))
	}
	return node
}

func toNamedRef(r *apiRef) *entities.NamedRef {
	if r == nil {
		return nil
	}
	return &entities.NamedRef{Name: r.Name, URL: r.URL}
}
