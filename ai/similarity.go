package ai

import "math"

// CosineSimilarity returns the cosine of the angle between a and b.
// If either vector has zero norm there is no defined direction and the
// similarity is 0.0. For natural-text embeddings the result typically
// falls in [0, 1], though the full range is [-1, 1].
func CosineSimilarity(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	// Include the tail of the longer vector in its norm
	for i := minLen; i < len(a); i++ {
		normA += float64(a[i]) * float64(a[i])
	}
	for i := minLen; i < len(b); i++ {
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
