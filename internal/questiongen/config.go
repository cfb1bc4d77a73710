package questiongen

import "time"

// Config controls the behavior of the Synthesizer.
type Config struct {
	// Timeout is the hard deadline for a single generative call.
	// Each parse-retry attempt gets a fresh timeout window.
	Timeout time.Duration

	// ParseAttempts bounds how many times a malformed response is
	// regenerated before falling back.
	ParseAttempts int

	// ParseBackoff is the wait between parse-retry attempts.
	ParseBackoff time.Duration

	// MinQuestionLength is the minimum acceptable question text length.
	MinQuestionLength int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:           30 * time.Second,
		ParseAttempts:     3,
		ParseBackoff:      500 * time.Millisecond,
		MinQuestionLength: 10,
		MaxTokens:         1024,
		Temperature:       0.7,
	}
}
