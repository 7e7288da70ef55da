package testutil

// FixedTokenGenerator returns the same run token every time.
//
// This enables deterministic debug logs: the same invocation with the
// same generator produces identical output.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a generator returning token. An empty
// token defaults to "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
//
// Implements runner.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
