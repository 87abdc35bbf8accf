package domain

import "time"

// KnowledgeRecord is one stored (question, answer) pair.
type KnowledgeRecord struct {
	// ID is a unique integer assigned by storage, monotonically increasing.
	ID int64

	// Question is always stored already normalised, never raw.
	Question string

	// Answer is free-form text stored verbatim.
	Answer string

	// CreatedAt is set once at insert time and never changes.
	CreatedAt time.Time
}

// Seeds returns the fixed records inserted when the knowledge base is
// first created empty. Questions are already in normalised form.
func Seeds() []KnowledgeRecord {
	return []KnowledgeRecord{
		{Question: "hola", Answer: "Hola, ¿en qué te ayudo?"},
		{Question: "como estas", Answer: "Bien. ¿Qué necesitas?"},
		{Question: "de que te gustaria hablar", Answer: "Podemos hablar de ingeniería, programación o del tema que traes."},
	}
}
