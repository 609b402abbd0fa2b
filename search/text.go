package search

import "strings"

// snippetLimit is the maximum snippet length before truncation, in runes.
const snippetLimit = 200

// BuildSnippet extracts the sentence best matching the query tokens and
// highlights each token occurrence with <b> tags.
//
// Sentences are naive period splits. The first sentence with the strictly
// highest case-insensitive match count wins; ties keep the earlier sentence.
// The winning sentence is trimmed and truncated to snippetLimit characters
// with a trailing ellipsis. Highlighting is literal replacement, so it only marks
// occurrences matching the token's case, and a token that is a substring of
// an already-highlighted token gets wrapped again.
func BuildSnippet(text string, tokens []string) string {
	sentences := strings.Split(text, ".")

	best := ""
	maxMatches := -1
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		matches := 0
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = sentence
		}
	}
	if best == "" && len(sentences) > 0 {
		best = sentences[0]
	}

	snippet := strings.TrimSpace(best)
	if runes := []rune(snippet); len(runes) > snippetLimit {
		snippet = string(runes[:snippetLimit]) + "..."
	}

	for _, token := range tokens {
		snippet = strings.ReplaceAll(snippet, token, "<b>"+token+"</b>")
	}
	return snippet
}
