package remgen

// Config holds remediation rewrite settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for remediation rewriting.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.6,
	}
}
