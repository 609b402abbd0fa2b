package openai

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/poiesic/docvault/ai"
)

// Stop words flagged by the tokenizer. Matches the filtering the embedding
// models are trained against for English text.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// Tokenizer implements ai.Tokenizer with a rule-based model: words are
// runs of letters and digits, everything else non-space is punctuation.
type Tokenizer struct {
	logger *slog.Logger
}

// newTokenizer is an internal constructor that returns the concrete type.
func newTokenizer() *Tokenizer {
	return &Tokenizer{
		logger: slog.Default().With("component", "openai-tokenizer"),
	}
}

// NewTokenizer creates a new rule-based tokenizer.
//
// Returns ai.Tokenizer interface to enforce abstraction.
func NewTokenizer() ai.Tokenizer {
	return newTokenizer()
}

// Tokenize splits text into word and punctuation tokens, in order.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]ai.Token, error) {
	t.logger.Debug("tokenizing text", "length", len(text))
	return splitTokens(text), nil
}

// splitTokens scans text rune by rune. Letter/digit runs become word
// tokens flagged against the stop-word table; any other non-space rune
// becomes a punctuation token of its own.
func splitTokens(text string) []ai.Token {
	tokens := make([]ai.Token, 0, len(text)/5)
	var word []rune

	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		tokens = append(tokens, ai.Token{
			Text:   w,
			IsStop: stopWords[strings.ToLower(w)],
		})
		word = word[:0]
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word = append(word, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, ai.Token{Text: string(r), IsPunct: true})
		}
	}
	flush()

	return tokens
}
