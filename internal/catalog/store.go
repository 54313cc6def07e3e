package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a material ID does not exist in the store.
var ErrNotFound = errors.New("material not found")

// Store is the read/write surface over the material catalog. The Q&A engine
// only uses GetAll and Get; Put and Delete serve the API and seed tooling.
type Store interface {
	GetAll(ctx context.Context) ([]MaterialRecord, error)
	Get(ctx context.Context, id string) (MaterialRecord, error)
	Put(ctx context.Context, rec MaterialRecord) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is an in-process Store for tests and for running without a
// database. GetAll returns records ordered by ID so iteration order is
// stable across calls.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]MaterialRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]MaterialRecord)}
}

// NewMemoryStoreWith returns a store pre-populated with the given records.
func NewMemoryStoreWith(recs []MaterialRecord) *MemoryStore {
	s := NewMemoryStore()
	for _, r := range recs {
		s.records[r.ID] = r
	}
	return s
}

func (s *MemoryStore) GetAll(_ context.Context) ([]MaterialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MaterialRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (MaterialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return MaterialRecord{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) Put(_ context.Context, rec MaterialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}
