package domain

import "fmt"

// DefaultThreshold is the minimum cosine score that counts as a match.
const DefaultThreshold = 0.72

// FallbackAnswer is returned whenever no stored question clears the
// threshold.
const FallbackAnswer = "No tengo una respuesta para eso todavía."

// Settings is the recognised configuration surface of the system.
type Settings struct {
	// Threshold is the minimum cosine similarity for a hit, in [0, 1].
	// A best match scoring exactly Threshold is a hit.
	Threshold float64

	// StorePath is the knowledge database location. Empty selects the
	// storage adapter's default under the user's home directory.
	StorePath string
}

// DefaultSettings returns the settings used when no configuration is
// present.
func DefaultSettings() Settings {
	return Settings{Threshold: DefaultThreshold}
}

// Validate checks the settings for out-of-range values.
func (s Settings) Validate() error {
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0, 1]", ErrInvalidInput, s.Threshold)
	}
	return nil
}
