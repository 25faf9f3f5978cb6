package memory

import (
	"context"
	"slices"
	"sync"

	"tokenregistry/internal/audit"
	"tokenregistry/pkg/domain"
)

type tokenKey struct {
	registry domain.Address
	id       domain.TokenID
}

// InMemoryStore keeps every record in process. Used by default and in tests.
type InMemoryStore struct {
	mu         sync.RWMutex
	byRegistry map[domain.Address][]audit.Record
	byToken    map[tokenKey][]audit.Record
}

var _ audit.Store = (*InMemoryStore)(nil)

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byRegistry: make(map[domain.Address][]audit.Record),
		byToken:    make(map[tokenKey][]audit.Record),
	}
}

func (s *InMemoryStore) Append(_ context.Context, records ...audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.byRegistry[r.Registry] = append(s.byRegistry[r.Registry], r)
		if r.HasToken() {
			k := tokenKey{registry: r.Registry, id: r.TokenID}
			s.byToken[k] = append(s.byToken[k], r)
		}
	}
	return nil
}

func (s *InMemoryStore) ListByRegistry(_ context.Context, reg domain.Address, limit int) ([]audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.byRegistry[reg]
	start := 0
	if limit > 0 && len(all) > limit {
		start = len(all) - limit
	}
	out := slices.Clone(all[start:])
	slices.Reverse(out)
	return out, nil
}

func (s *InMemoryStore) ListByToken(_ context.Context, reg domain.Address, id domain.TokenID) ([]audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byToken[tokenKey{registry: reg, id: id}]), nil
}

// Clear drops every record.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRegistry = make(map[domain.Address][]audit.Record)
	s.byToken = make(map[tokenKey][]audit.Record)
}
