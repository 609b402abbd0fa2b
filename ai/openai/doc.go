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


// Package openai provides the production ai.Provider implementation.
//
// Embeddings come from any OpenAI-compatible API (Ollama, LocalAI, vLLM,
// OpenAI itself) through langchaingo. Tokenization is rule-based and runs
// locally; only the embedding calls leave the process.
package openai
