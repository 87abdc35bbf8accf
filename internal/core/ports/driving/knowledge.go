package driving

import (
	"context"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
)

// KnowledgeService exposes read access to the stored record set.
type KnowledgeService interface {
	// List returns every stored record.
	List(ctx context.Context) ([]domain.KnowledgeRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
