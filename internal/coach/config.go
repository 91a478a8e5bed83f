package coach

// Config holds generation settings for coach responses.
type Config struct {
	MaxTokens   int
	Temperature float64

	// PlanMaxTokens bounds study plan generation, which returns a larger
	// structured payload than chat replies.
	PlanMaxTokens int
}

// DefaultConfig returns sensible defaults for coach generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2048,
		Temperature:   0.7,
		PlanMaxTokens: 1024,
	}
}
