package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/docvault/ai"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/storage"
)

// maxResults caps how many ranked hits a single query returns.
const maxResults = 10

// keywordWeight makes literal keyword hits dominate semantic closeness.
const keywordWeight = 10.0

// scoreThreshold filters out pure-semantic noise. Strictly greater-than:
// a document with no keyword hits needs similarity above 0.5 to qualify.
const scoreThreshold = 0.5

// Searcher provides hybrid keyword and semantic search over stored documents,
// scoped to what the requesting user's department may see.
type Searcher struct {
	documents storage.DocumentRepository
	tokenizer ai.Tokenizer
	embedder  ai.Embedder
	logger    *slog.Logger
	monitor   SearchMonitor
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor that receives callbacks for every search
// run through Search. SearchWithMonitor overrides it per call.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	documents storage.DocumentRepository,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		documents: documents,
		tokenizer: provider.Tokenizer(),
		embedder:  provider.Embedder(),
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ProcessQuery lowercases and tokenizes a query, dropping stop words and
// punctuation. A blank query returns an empty token list without invoking
// the tokenizer.
func (s *Searcher) ProcessQuery(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	tokens, err := s.tokenizer.Tokenize(ctx, strings.ToLower(query))
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token.IsStop || token.IsPunct {
			continue
		}
		filtered = append(filtered, token.Text)
	}
	return filtered, nil
}

// Search ranks the documents visible to user against the query.
// Returns up to maxResults hits sorted by descending score.
func (s *Searcher) Search(ctx context.Context, user core.User, query string) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, user, query, s.monitor)
}

// SearchWithMonitor ranks the documents visible to user against the query
// with monitoring. The monitor receives callbacks at each stage of the
// search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, user core.User, query string, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// Blank queries never reach the embedder or the scorer.
	if strings.TrimSpace(query) == "" {
		results := []*core.SearchResult{}
		monitor.Finish(results)
		return results, nil
	}

	lowered := strings.ToLower(query)

	queryTokens, err := s.ProcessQuery(ctx, lowered)
	if err != nil {
		s.logger.Error("error tokenizing query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterQueryProcessing(queryTokens)

	// 1. Access scoping: admins see the whole corpus, everyone else only
	// their own department. Inaccessible documents never reach the scorer.
	candidates, err := s.accessibleDocuments(ctx, user)
	if err != nil {
		s.logger.Error("error listing candidate documents", "department", user.Department, "err", err)
		return nil, err
	}
	monitor.AfterAccessFilter(candidates)

	// 2. Embed the query once for all candidates
	queryVector, err := s.embedder.EmbedText(ctx, lowered)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	// 3. Score every candidate
	results := make([]*core.SearchResult, 0, len(candidates))
	for _, doc := range candidates {
		keywordScore := countKeywordHits(doc.Text, queryTokens)
		similarity := ai.CosineSimilarity(queryVector, doc.Vector)
		total := float64(keywordScore)*keywordWeight + similarity
		monitor.DocumentScored(doc, keywordScore, similarity, total)

		if total > scoreThreshold {
			results = append(results, &core.SearchResult{
				Document: doc,
				Score:    total,
				Snippet:  BuildSnippet(doc.Text, queryTokens),
			})
		}
	}

	// Sort by score descending; stable so equal scores keep storage order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	monitor.Finish(results)

	return results, nil
}

// accessibleDocuments lists the candidate set for one user.
func (s *Searcher) accessibleDocuments(ctx context.Context, user core.User) ([]*core.Document, error) {
	if user.Department == core.DepartmentAdmin {
		return s.documents.ListAll(ctx)
	}
	return s.documents.ListByDepartment(ctx, user.Department)
}

// countKeywordHits counts query tokens occurring as substrings of the
// lowercased document text. A duplicated query token counts once per copy.
func countKeywordHits(text string, tokens []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			hits++
		}
	}
	return hits
}
