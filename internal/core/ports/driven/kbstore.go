package driven

import (
	"context"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
)

// KnowledgeStore persists (question, answer) records. Records are
// append-only: the core never updates or deletes them, and duplicate
// questions may coexist.
type KnowledgeStore interface {
	// Bootstrap creates the underlying table if absent and, only when
	// the store holds no records at all, inserts the seed set.
	// Idempotent: repeated calls never duplicate seeds.
	Bootstrap(ctx context.Context) error

	// LoadAll returns every stored record in storage-native order.
	LoadAll(ctx context.Context) ([]domain.KnowledgeRecord, error)

	// Append normalises questionRaw and persists a new record. The
	// identifier and creation timestamp are assigned by the store.
	Append(ctx context.Context, questionRaw, answer string) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
