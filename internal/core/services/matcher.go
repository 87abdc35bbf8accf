package services

import (
	"context"
	"fmt"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driven"
	"github.com/Benjaminr180/experto-cli/internal/logger"
	"github.com/Benjaminr180/experto-cli/internal/text"
)

// Matcher scans the knowledge base for the stored question most similar
// to a query.
type Matcher struct {
	store driven.KnowledgeStore
}

// NewMatcher creates a matcher over the given store.
func NewMatcher(store driven.KnowledgeStore) *Matcher {
	return &Matcher{store: store}
}

// BestMatch returns the best-scoring record and the normalised query.
//
// Ties keep the first record seen: a candidate replaces the running best
// only on a strictly higher score. When the knowledge base is empty or
// nothing scores above zero, the sentinel result (ID -1, score 0.0) is
// returned. Deterministic for a fixed store snapshot and free of side
// effects.
//
// Cost is one full scan, linear in the number of records times average
// question length. At the scale this system targets that is cheaper than
// maintaining an inverted index; it is the first thing to revisit if the
// knowledge base ever grows large.
func (m *Matcher) BestMatch(ctx context.Context, queryRaw string) (domain.MatchResult, string, error) {
	normalised := text.Normalise(queryRaw)
	queryVec := text.Vectorise(text.Tokenise(normalised))

	records, err := m.store.LoadAll(ctx)
	if err != nil {
		return domain.NoMatch(), normalised, fmt.Errorf("loading knowledge base: %w", err)
	}

	logger.Section("Best Match")
	logger.Debug("Query: %q (%d terms), scanning %d records", normalised, len(queryVec), len(records))

	best := domain.NoMatch()
	for _, rec := range records {
		vec := text.Vectorise(text.Tokenise(rec.Question))
		score := text.Cosine(queryVec, vec)
		if score > best.Score {
			best = domain.MatchResult{
				ID:       rec.ID,
				Score:    score,
				Question: rec.Question,
				Answer:   rec.Answer,
			}
		}
	}

	logger.Debug("Best: id=%d score=%.4f question=%q", best.ID, best.Score, best.Question)
	return best, normalised, nil
}
