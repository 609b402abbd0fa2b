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


// Package search provides hybrid keyword and semantic retrieval over
// stored documents.
//
// The Searcher type implements a department-scoped ranking pipeline:
//   - Query tokenization with stop-word and punctuation filtering
//   - Literal keyword matching against document text
//   - Semantic similarity using vector embeddings
//   - Snippet extraction with match highlighting
//
// Keyword hits dominate the combined score so that exact matches always
// outrank purely semantic neighbors.
package search
