package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.1}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := []float32{1, 0, 0}
		b := []float32{0, 1, 0}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{-1, 0}
		assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("zero vector has no direction", func(t *testing.T) {
		a := []float32{0, 0, 0}
		b := []float32{0.3, 0.4, 0.5}
		assert.Equal(t, 0.0, CosineSimilarity(a, b))
		assert.Equal(t, 0.0, CosineSimilarity(b, a))
		assert.Equal(t, 0.0, CosineSimilarity(a, a))
	})

	t.Run("empty vectors", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
		assert.Equal(t, 0.0, CosineSimilarity([]float32{1}, nil))
	})

	t.Run("mismatched lengths use the overlap and full norms", func(t *testing.T) {
		a := []float32{1, 0, 0}
		b := []float32{1, 0}
		got := CosineSimilarity(a, b)
		assert.Greater(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	})
}
