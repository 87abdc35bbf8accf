package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driven"
	"github.com/Benjaminr180/experto-cli/internal/core/ports/driving"
	"github.com/Benjaminr180/experto-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService applies the threshold policy on top of the matcher and owns
// the learning path.
type ChatService struct {
	matcher   *Matcher
	store     driven.KnowledgeStore
	threshold float64
}

// NewChatService creates a chat service. The threshold is the minimum
// cosine score treated as a match; a best match scoring exactly the
// threshold is a hit.
func NewChatService(store driven.KnowledgeStore, threshold float64) *ChatService {
	return &ChatService{
		matcher:   NewMatcher(store),
		store:     store,
		threshold: threshold,
	}
}

// Respond resolves a single utterance. It never writes: on a miss the
// caller decides whether to Teach.
func (s *ChatService) Respond(ctx context.Context, messageRaw string) (domain.Outcome, error) {
	best, _, err := s.matcher.BestMatch(ctx, messageRaw)
	if err != nil {
		return domain.Outcome{}, err
	}

	if best.Score >= s.threshold {
		logger.Info("Hit: %q (%.3f >= %.3f)", best.Question, best.Score, s.threshold)
		return domain.Outcome{
			Hit:             true,
			Answer:          best.Answer,
			Score:           roundScore(best.Score),
			MatchedQuestion: best.Question,
		}, nil
	}

	logger.Info("Miss: best %.3f < %.3f", best.Score, s.threshold)
	return domain.Outcome{
		Hit:    false,
		Answer: domain.FallbackAnswer,
		Score:  roundScore(best.Score),
	}, nil
}

// Teach persists a new (question, answer) pair. The question is
// normalised by the store before it is written.
func (s *ChatService) Teach(ctx context.Context, questionRaw, answer string) error {
	if strings.TrimSpace(questionRaw) == "" || strings.TrimSpace(answer) == "" {
		return fmt.Errorf("%w: question and answer must be non-empty", domain.ErrInvalidInput)
	}
	if err := s.store.Append(ctx, questionRaw, answer); err != nil {
		return fmt.Errorf("saving taught answer: %w", err)
	}
	logger.Info("Learned: %q", questionRaw)
	return nil
}

// roundScore rounds a similarity to three decimals for display.
// The threshold comparison always uses the unrounded score.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
