// Package memory provides an in-memory implementation of the
// KnowledgeStore port, used by tests and ephemeral runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driven"
	"github.com/Benjaminr180/experto-cli/internal/text"
)

// Ensure Store implements the interface.
var _ driven.KnowledgeStore = (*Store)(nil)

// Store is an in-memory knowledge store. Records live in insertion order
// and identifiers are assigned monotonically, mirroring the SQLite
// adapter's behaviour.
type Store struct {
	mu      sync.RWMutex
	records []domain.KnowledgeRecord
	nextID  int64
}

// NewStore creates an empty in-memory knowledge store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Bootstrap inserts the seed records iff the store is empty.
func (s *Store) Bootstrap(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) > 0 {
		return nil
	}
	for _, seed := range domain.Seeds() {
		s.insert(seed.Question, seed.Answer)
	}
	return nil
}

// LoadAll returns a copy of every stored record in insertion order.
func (s *Store) LoadAll(_ context.Context) ([]domain.KnowledgeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.KnowledgeRecord, len(s.records))
	copy(records, s.records)
	return records, nil
}

// Append normalises questionRaw and stores a new record.
func (s *Store) Append(_ context.Context, questionRaw, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(text.Normalise(questionRaw), answer)
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records), nil
}

// insert appends a record with a fresh ID. Caller holds the lock;
// question is already normalised.
func (s *Store) insert(question, answer string) {
	s.records = append(s.records, domain.KnowledgeRecord{
		ID:        s.nextID,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	})
	s.nextID++
}
