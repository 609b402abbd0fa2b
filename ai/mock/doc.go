// Package mock provides test double implementations of the NLP service interfaces.
//
// This package contains mock implementations of ai.Tokenizer, ai.Embedder,
// and ai.Provider for use in unit tests. The mocks allow tests to run
// without an external embedding service and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	tokens, err := mockProvider.Tokenizer().Tokenize(ctx, "test")
//
//	// Custom behavior injection
//	mockEmbedder := mock.NewMockEmbedder()
//	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := mockEmbedder.CallCount()
//
// # Default Behavior
//
//   - MockTokenizer: splits on whitespace, trims edge punctuation, flags a
//     small stop-word set
//   - MockEmbedder: returns deterministic unit vectors based on text hash;
//     empty text yields an empty (zero-norm) vector
//   - MockProvider: aggregates mock tokenizer and embedder
package mock
