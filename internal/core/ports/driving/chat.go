package driving

import (
	"context"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
)

// ChatService resolves one utterance at a time against the knowledge base.
type ChatService interface {
	// Respond matches messageRaw against every stored question and
	// applies the threshold policy. Respond never writes; a miss is an
	// expected outcome, not an error.
	Respond(ctx context.Context, messageRaw string) (domain.Outcome, error)

	// Teach persists a (question, answer) pair for future queries.
	// This is the system's only mutating path.
	Teach(ctx context.Context, questionRaw, answer string) error
}
