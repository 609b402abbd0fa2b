package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/docvault/ai"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/storage"
)

// BatchProcessor handles embedding generation for batches of documents.
type BatchProcessor struct {
	repo           storage.DocumentRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.DocumentRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of documents and updates them in
// the database. Documents with empty text keep their empty vector and are
// not sent to the embedder. Vectors are normalized after embedding to
// ensure compatibility with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, docs []*core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	embeddable := make([]*core.Document, 0, len(docs))
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Text == "" {
			continue
		}
		embeddable = append(embeddable, doc)
		texts = append(texts, doc.Text)
	}

	if len(embeddable) == 0 {
		return nil
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(embeddable) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(embeddable), len(embeddings))
	}

	for i := range embeddable {
		embeddable[i].Vector = NormalizeVector(embeddings[i])
	}

	_, err = bp.repo.UpdateDocuments(ctx, embeddable...)
	if err != nil {
		return fmt.Errorf("failed to update documents: %w", err)
	}

	return nil
}
