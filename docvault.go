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


package docvault

import (
	"io"
	"log/slog"

	"github.com/poiesic/docvault/ai"
	"github.com/poiesic/docvault/ai/openai"
	"github.com/poiesic/docvault/ingestion"
	"github.com/poiesic/docvault/reembed"
	"github.com/poiesic/docvault/search"
	"github.com/poiesic/docvault/storage"
	"github.com/poiesic/docvault/storage/badger"
)

// Library is the assembled document vault: storage backend, document
// repository, and AI provider, with constructors for the pipeline,
// searcher, and reembedder built on top of them.
type Library struct {
	backend  *badger.Backend
	docRepo  storage.DocumentRepository
	provider ai.Provider
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// client entirely. Useful for tests and offline operation.
func WithProvider(provider ai.Provider) LibraryOption {
	return func(o *libraryOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps the document store in memory instead of on disk.
func WithInMemoryStorage() LibraryOption {
	return func(o *libraryOptions) {
		o.inMemory = true
	}
}

// NewLibrary opens the document vault at filePath.
func NewLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			docRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Library{
		backend:  backend,
		docRepo:  docRepo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close shuts the library down in dependency order.
func (l *Library) Close() error {
	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing AI provider", "err", err)
	}

	if err := l.docRepo.Close(); err != nil {
		l.logger.Error("error closing document repository", "err", err)
		return err
	}

	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DocumentRepository exposes the underlying document store.
func (l *Library) DocumentRepository() storage.DocumentRepository {
	return l.docRepo
}

// Provider exposes the AI provider.
func (l *Library) Provider() ai.Provider {
	return l.provider
}

// NewIngestionPipeline creates a pipeline over this library's store.
func (l *Library) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(l.docRepo, l.provider, opts...)
}

// NewSearcher creates a searcher over this library's store.
func (l *Library) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(l.docRepo, l.provider, opts...)
}

// NewReembedder creates a reembedder over this library's store.
// progress: where to write progress output (typically os.Stderr)
func (l *Library) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(l.docRepo, l.provider.Embedder(), config, progress)
}
