package services

import (
	"context"
	"fmt"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driven"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driving"
)

// Ensure KnowledgeService implements the interface.
var _ driving.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService exposes the stored record set for inspection.
type KnowledgeService struct {
	store driven.KnowledgeStore
}

// NewKnowledgeService creates a knowledge service.
func NewKnowledgeService(store driven.KnowledgeStore) *KnowledgeService {
	return &KnowledgeService{store: store}
}

// List returns every stored record.
func (s *KnowledgeService) List(ctx context.Context) ([]domain.KnowledgeRecord, error) {
	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge base: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *KnowledgeService) Count(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting knowledge base: %w", err)
	}
	return count, nil
}
