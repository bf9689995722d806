package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	// An empty query must score 0 against everything, never NaN.
	assert.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, cosineSimilarity([]float64{1, 1}, []float64{0, 0}))
}

func TestCosineSimilarityMismatchedLengths(t *testing.T) {
	assert.Zero(t, cosineSimilarity([]float64{1}, []float64{1, 2}))
	assert.Zero(t, cosineSimilarity(nil, nil))
}

func TestScoreAllRange(t *testing.T) {
	ix := buildTestIndex(t)
	query := ix.QueryVector("serum acne jerawat")

	scores := scoreAll(query, ix)
	assert.Len(t, scores, ix.Size())
	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0+1e-9)
	}
}

func TestScoreAllCarriesProductIDs(t *testing.T) {
	ix := buildTestIndex(t)
	scores := scoreAll(ix.QueryVector("pelembab"), ix)

	for i, s := range scores {
		assert.Equal(t, ix.catalog[i].ID, s.ProductID)
	}
}
