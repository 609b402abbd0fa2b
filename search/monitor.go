package search

import "github.com/poiesic/docvault/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterQueryProcessing(tokens []string)
	AfterAccessFilter(docs []*core.Document)
	DocumentScored(doc *core.Document, keywordScore int, similarity float64, total float64)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                           {}
func (n *noopMonitor) AfterQueryProcessing(_ []string)                          {}
func (n *noopMonitor) AfterAccessFilter(_ []*core.Document)                     {}
func (n *noopMonitor) DocumentScored(_ *core.Document, _ int, _, _ float64)     {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                            {}
