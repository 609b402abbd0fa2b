package openai

import (
	"context"
	"testing"

	"github.com/poiesic/docvault/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTexts(tokens []ai.Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func TestTokenize_Words(t *testing.T) {
	tok := newTokenizer()
	ctx := context.Background()

	tokens, err := tok.Tokenize(ctx, "technical turbine specifications")
	require.NoError(t, err)
	assert.Equal(t, []string{"technical", "turbine", "specifications"}, tokenTexts(tokens))
	for _, token := range tokens {
		assert.False(t, token.IsStop)
		assert.False(t, token.IsPunct)
	}
}

func TestTokenize_StopWordsFlagged(t *testing.T) {
	tok := newTokenizer()

	tokens, err := tok.Tokenize(context.Background(), "the turbine is in the hall")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "turbine", "is", "in", "the", "hall"}, tokenTexts(tokens))
	assert.True(t, tokens[0].IsStop)
	assert.False(t, tokens[1].IsStop)
	assert.True(t, tokens[2].IsStop)
	assert.True(t, tokens[3].IsStop)
	assert.True(t, tokens[4].IsStop)
	assert.False(t, tokens[5].IsStop)
}

func TestTokenize_StopWordFlagIsCaseInsensitive(t *testing.T) {
	tok := newTokenizer()

	tokens, err := tok.Tokenize(context.Background(), "The Turbine")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].IsStop)
	assert.Equal(t, "The", tokens[0].Text)
}

func TestTokenize_PunctuationSplit(t *testing.T) {
	tok := newTokenizer()

	tokens, err := tok.Tokenize(context.Background(), "revenue: $4.2M, up 12%.")
	require.NoError(t, err)
	assert.Equal(t, []string{"revenue", ":", "$", "4", ".", "2M", ",", "up", "12", "%", "."}, tokenTexts(tokens))

	for _, token := range tokens {
		switch token.Text {
		case ":", "$", ".", ",", "%":
			assert.True(t, token.IsPunct, "expected %q to be punctuation", token.Text)
		default:
			assert.False(t, token.IsPunct, "expected %q to be a word", token.Text)
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	tok := newTokenizer()

	tokens, err := tok.Tokenize(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = tok.Tokenize(context.Background(), "   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_DuplicatesPreserved(t *testing.T) {
	tok := newTokenizer()

	tokens, err := tok.Tokenize(context.Background(), "turbine turbine turbine")
	require.NoError(t, err)
	assert.Equal(t, []string{"turbine", "turbine", "turbine"}, tokenTexts(tokens))
}
