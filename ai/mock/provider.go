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


package mock

import "github.com/poiesic/docvault/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock tokenizer and embedder instances.
type MockProvider struct {
	tokenizer *MockTokenizer
	embedder  *MockEmbedder
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockTokenizer()/GetMockEmbedder() to access concrete types for
// test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		tokenizer: NewMockTokenizer(),
		embedder:  NewMockEmbedder(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(tokenizer *MockTokenizer, embedder *MockEmbedder) ai.Provider {
	return &MockProvider{
		tokenizer: tokenizer,
		embedder:  embedder,
	}
}

// Tokenizer returns the mock tokenizer.
func (p *MockProvider) Tokenizer() ai.Tokenizer {
	return p.tokenizer
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockTokenizer returns the underlying mock tokenizer for test assertions.
func (p *MockProvider) GetMockTokenizer() *MockTokenizer {
	return p.tokenizer
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}
