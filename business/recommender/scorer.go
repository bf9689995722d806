package recommender

import (
	"math"
)

// ItemScore joins a similarity score to its product by identifier so a later
// filter or reorder of the catalog can never silently misattribute scores.
type ItemScore struct {
	ProductID uint64
	Score     float64

	// position in the indexed catalog, kept as the ranking tie-break
	position int
}

// scoreAll computes the cosine similarity of the query against every indexed
// row. Weights are non-negative, so every score lands in [0, 1]. A row that
// cannot be scored contributes 0 instead of aborting the batch.
func scoreAll(query []float64, ix *FeatureIndex) []ItemScore {
	scores := make([]ItemScore, len(ix.rows))
	for i, row := range ix.rows {
		scores[i] = ItemScore{
			ProductID: ix.catalog[i].ID,
			Score:     cosineSimilarity(query, row),
			position:  i,
		}
	}
	return scores
}

// cosineSimilarity with the zero-norm case pinned to 0: an empty query or an
// item with no extractable terms is simply dissimilar to everything, never
// NaN and never an error.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
