package mock

import (
	"context"
	"strings"

	"github.com/poiesic/docvault/ai"
)

// defaultStopWords is the small stop-word set the default mock behavior
// flags. Tests needing a different set inject TokenizeFunc.
var defaultStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "to": true,
	"of": true, "and": true, "in": true, "for": true, "on": true, "with": true,
}

// MockTokenizer is a test double for ai.Tokenizer.
// It allows custom behavior injection via function fields.
type MockTokenizer struct {
	// TokenizeFunc is called by Tokenize if set.
	// If nil, uses default whitespace splitting.
	TokenizeFunc func(ctx context.Context, text string) ([]ai.Token, error)

	callCount int
}

// NewMockTokenizer creates a mock tokenizer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockTokenizer().
func NewMockTokenizer() *MockTokenizer {
	return &MockTokenizer{}
}

// Tokenize splits text on whitespace. Fields that are pure punctuation are
// flagged IsPunct; edge punctuation on words is trimmed.
func (m *MockTokenizer) Tokenize(ctx context.Context, text string) ([]ai.Token, error) {
	m.callCount++

	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(ctx, text)
	}

	fields := strings.Fields(text)
	tokens := make([]ai.Token, 0, len(fields))
	for _, field := range fields {
		cleaned := strings.Trim(field, ".,!?;:'\"-()[]{}")
		if cleaned == "" {
			tokens = append(tokens, ai.Token{Text: field, IsPunct: true})
			continue
		}
		tokens = append(tokens, ai.Token{
			Text:   cleaned,
			IsStop: defaultStopWords[strings.ToLower(cleaned)],
		})
	}
	return tokens, nil
}

// CallCount returns the number of times Tokenize was called.
func (m *MockTokenizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockTokenizer) Reset() {
	m.callCount = 0
	m.TokenizeFunc = nil
}
