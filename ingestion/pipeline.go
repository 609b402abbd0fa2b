// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docvault/ai"
	"github.com/poiesic/docvault/analysis"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/storage"
)

// Pipeline orchestrates extraction, analysis, and storage of uploaded
// documents. Single-file ingestion is synchronous; bulk directory
// ingestion fans out over a worker pool.
type Pipeline struct {
	documents storage.DocumentRepository
	tokenizer ai.Tokenizer
	embedder  ai.Embedder
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for bulk ingestion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documents storage.DocumentRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		tokenizer: provider.Tokenizer(),
		embedder:  provider.Embedder(),
		pool:      pool,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestFile extracts, analyzes, and stores one file on behalf of uploader.
// The stored document belongs to the uploader's department. Extraction
// failures are not fatal: the document is recorded with default metadata
// and empty text.
func (p *Pipeline) IngestFile(ctx context.Context, path string, uploader core.User) (*core.Document, error) {
	text := ExtractText(path)
	title, vendor, category := analysis.AnalyzeContent(text)

	tokens, err := p.tokenizer.Tokenize(ctx, text)
	if err != nil {
		p.logger.Error("error tokenizing document", "path", path, "err", err)
		return nil, err
	}

	// Empty text has no direction to embed; leave the vector empty so
	// similarity scores zero out.
	var vector []float32
	if text != "" {
		vector, err = p.embedder.EmbedText(ctx, text)
		if err != nil {
			p.logger.Error("error embedding document", "path", path, "err", err)
			return nil, err
		}
	}

	doc := &core.Document{
		Filename:    filepath.Base(path),
		Title:       title,
		Vendor:      vendor,
		Category:    category,
		Department:  uploader.Department,
		UploadedBy:  uploader.Username,
		Text:        text,
		Tokens:      convertTokens(tokens),
		Vector:      vector,
		Fingerprint: core.IDFromContent(text),
	}

	added, err := p.documents.AddDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	p.logger.Info("document ingested",
		"id", added.Id,
		"filename", added.Filename,
		"category", added.Category,
		"department", added.Department)

	return added, nil
}

// IngestDir ingests every regular file in dir concurrently on behalf of
// uploader. Subdirectories are skipped. Per-file failures are joined into
// the returned error; successfully ingested documents are returned
// regardless.
func (p *Pipeline) IngestDir(ctx context.Context, dir string, uploader core.User) ([]*core.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		docs []*core.Document
		errs []error
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			doc, err := p.IngestFile(ctx, path, uploader)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			docs = append(docs, doc)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
		}
	}

	wg.Wait()
	return docs, errors.Join(errs...)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// convertTokens maps adapter tokens to their stored form.
func convertTokens(tokens []ai.Token) []core.Token {
	converted := make([]core.Token, len(tokens))
	for i, t := range tokens {
		converted[i] = core.Token{
			Text:    t.Text,
			IsStop:  t.IsStop,
			IsPunct: t.IsPunct,
		}
	}
	return converted
}
