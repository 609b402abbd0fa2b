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


// Package ai provides abstractions for the natural-language services used
// by DocVault.
//
// The package defines the narrow interfaces the search and ingestion logic
// depends on: tokenization with stop-word/punctuation flags, text
// embeddings, and a vector similarity function. Following the dependency
// inversion principle, the core scoring and snippet logic depends only on
// these abstractions, so it is independently testable with a stub model.
//
// # Interfaces
//
//   - Tokenizer: splits text into flagged tokens
//   - Embedder: generates vector embeddings from text
//   - Provider: aggregates both services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible
//     embedding APIs via langchaingo
//   - ai/mock: deterministic test doubles for unit testing without
//     external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// interface types to enforce abstraction. Mock constructors return
// concrete types so tests can inject behavior and assert call counts.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	tokens, err := provider.Tokenizer().Tokenize(ctx, "technical turbine")
//	vector, err := provider.Embedder().EmbedText(ctx, "technical turbine")
//	score := ai.CosineSimilarity(vector, other)
package ai
