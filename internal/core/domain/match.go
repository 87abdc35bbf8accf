package domain

// NoMatchID marks the sentinel MatchResult ID.
const NoMatchID = -1

// MatchResult is the best candidate found during a knowledge-base scan.
// Transient: built per query, never persisted.
type MatchResult struct {
	ID       int64
	Score    float64
	Question string
	Answer   string
}

// NoMatch returns the sentinel result. Its score of 0.0 means any record
// with positive similarity can replace it, and records scoring exactly
// zero never do.
func NoMatch() MatchResult {
	return MatchResult{ID: NoMatchID}
}

// Found reports whether the result points at a stored record.
func (m MatchResult) Found() bool {
	return m.ID != NoMatchID
}

// Outcome is the response policy's decision for a single utterance.
type Outcome struct {
	// Hit is true when the best match cleared the similarity threshold.
	Hit bool `json:"hit"`

	// Answer is the stored answer on a hit, or the fallback message.
	Answer string `json:"answer"`

	// Score is the best cosine similarity, rounded to three decimals.
	Score float64 `json:"score"`

	// MatchedQuestion is the normalised stored question on a hit,
	// empty on a miss.
	MatchedQuestion string `json:"matched_question,omitempty"`
}
