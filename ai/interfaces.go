package ai

import "context"

// Tokenizer splits text into tokens with stop-word and punctuation flags.
// Implementations must be thread-safe for concurrent use.
type Tokenizer interface {
	// Tokenize splits text into tokens, preserving the order in which the
	// underlying model produces them. Duplicate tokens are kept.
	// Returns an error if tokenization fails.
	Tokenize(ctx context.Context, text string) ([]Token, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates NLP services for convenient initialization and
// lifecycle management. A provider creates and manages Tokenizer and
// Embedder instances, ensuring they share configuration and resources.
type Provider interface {
	// Tokenizer returns the tokenization service.
	// The returned Tokenizer is safe for concurrent use.
	Tokenizer() Tokenizer

	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
