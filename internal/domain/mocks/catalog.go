// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// Catalog is a mock implementation of ports.Catalog backed by maps keyed by ref.
// It is safe for concurrent use.
type Catalog struct {
	Entities map[string]*entities.RawEntity
	Species  map[string]*entities.RawSpecies
	Chains   map[string]*entities.RawChainNode
	Named    map[string]*entities.NamedRecord
	Listing  []entities.NamedRef

	// Errs forces an error for a ref, regardless of which method is called.
	Errs map[string]error
	// Delays adds latency before answering for a ref.
	Delays map[string]time.Duration
	// ListErr is returned by ListEntities when set.
	ListErr error

	mu    sync.Mutex
	calls map[string]int
}

// NewCatalog creates an empty mock Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Entities: make(map[string]*entities.RawEntity),
		Species:  make(map[string]*entities.RawSpecies),
		Chains:   make(map[string]*entities.RawChainNode),
		Named:    make(map[string]*entities.NamedRecord),
		Errs:     make(map[string]error),
		Delays:   make(map[string]time.Duration),
	}
}

// Calls returns how many times ref was requested.
func (m *Catalog) Calls(ref string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[ref]
}

func (m *Catalog) enter(ctx context.Context, ref string) error {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[ref]++
	m.mu.Unlock()

	if d := m.Delays[ref]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", entities.ErrUnavailable, ctx.Err())
		}
	}
	if err := m.Errs[ref]; err != nil {
		return err
	}
	return nil
}

func notFound(ref string) error {
	return fmt.Errorf("%w: %s", entities.ErrNotFound, ref)
}

// FetchEntity returns the configured entity for ref.
func (m *Catalog) FetchEntity(ctx context.Context, ref string) (*entities.RawEntity, error) {
	if err := m.enter(ctx, ref); err != nil {
		return nil, err
	}
	e, ok := m.Entities[ref]
	if !ok {
		return nil, notFound(ref)
	}
	return e, nil
}

// FetchSpeciesMeta returns the configured species for ref.
func (m *Catalog) FetchSpeciesMeta(ctx context.Context, ref string) (*entities.RawSpecies, error) {
	if err := m.enter(ctx, ref); err != nil {
		return nil, err
	}
	s, ok := m.Species[ref]
	if !ok {
		return nil, notFound(ref)
	}
	return s, nil
}

// FetchChain returns the configured chain for ref.
func (m *Catalog) FetchChain(ctx context.Context, ref string) (*entities.RawChainNode, error) {
	if err := m.enter(ctx, ref); err != nil {
		return nil, err
	}
	c, ok := m.Chains[ref]
	if !ok {
		return nil, notFound(ref)
	}
	return c, nil
}

// FetchNamed returns the configured named record for ref.
func (m *Catalog) FetchNamed(ctx context.Context, ref string) (*entities.NamedRecord, error) {
	if err := m.enter(ctx, ref); err != nil {
		return nil, err
	}
	n, ok := m.Named[ref]
	if !ok {
		return nil, notFound(ref)
	}
	return n, nil
}

// ListEntities pages over Listing.
func (m *Catalog) ListEntities(_ context.Context, limit, offset int) (*entities.EntityPage, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	page := &entities.EntityPage{Total: len(m.Listing)}
	if offset >= len(m.Listing) {
		return page, nil
	}
	end := min(offset+limit, len(m.Listing))
	page.Results = append([]entities.NamedRef(nil), m.Listing[offset:end]...)
	return page, nil
}
