package ai

// Token is a single token produced by a Tokenizer.
// The flags classify the token so query processing can drop the noise.
type Token struct {
	// Text is the token's surface form as produced by the model.
	Text string

	// IsStop marks common function words ("the", "of", ...) that carry no
	// search signal.
	IsStop bool

	// IsPunct marks tokens consisting purely of punctuation.
	IsPunct bool
}
