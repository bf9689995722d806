package recommender

import (
	"fmt"
	"sort"
	"strings"

	"mySkinMatch/domain"
)

const defaultMaxResults = 10

// Explanation tiers by similarity score.
const (
	explanationVeryGood    = "Sangat cocok dengan preferensi Anda"
	explanationGood        = "Cukup sesuai dengan preferensi Anda"
	explanationSome        = "Memiliki beberapa kesamaan dengan preferensi Anda"
	explanationAlternative = "Produk alternatif yang mungkin menarik"
)

// rank sorts items by ascending distance (1 - similarity), stable on the
// original catalog order, truncates to maxResults and attaches explanations.
// Price and rating re-sorts are the caller's concern, not done here.
func rank(scores []ItemScore, ix *FeatureIndex, profile domain.PreferenceProfile, maxResults int) []domain.Recommendation {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	byID := make(map[uint64]domain.Product, ix.Size())
	for _, p := range ix.catalog {
		byID[p.ID] = p
	}

	ordered := make([]ItemScore, len(scores))
	copy(ordered, scores)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := 1-ordered[i].Score, 1-ordered[j].Score
		if di != dj {
			return di < dj
		}
		return ordered[i].position < ordered[j].position
	})

	if len(ordered) > maxResults {
		ordered = ordered[:maxResults]
	}

	recs := make([]domain.Recommendation, 0, len(ordered))
	for _, s := range ordered {
		product, ok := byID[s.ProductID]
		if !ok {
			// score for an item no longer in the snapshot; skip it
			continue
		}
		recs = append(recs, domain.Recommendation{
			Product:     product,
			Similarity:  s.Score,
			Distance:    1 - s.Score,
			Explanation: buildExplanation(s.Score, profile),
		})
	}
	return recs
}

// buildExplanation picks the qualitative tier and appends the matched
// preference fields. Cosmetic only, never feeds back into ranking.
func buildExplanation(score float64, profile domain.PreferenceProfile) string {
	parts := make([]string, 0, 3)

	switch {
	case score > 0.7:
		parts = append(parts, explanationVeryGood)
	case score > 0.5:
		parts = append(parts, explanationGood)
	case score > 0.3:
		parts = append(parts, explanationSome)
	default:
		parts = append(parts, explanationAlternative)
	}

	if profile.SkinCondition != "" {
		parts = append(parts, fmt.Sprintf("untuk kulit %s", profile.SkinCondition))
	}
	if profile.SkinProblem != "" {
		parts = append(parts, fmt.Sprintf("mengatasi %s", profile.SkinProblem))
	}

	return strings.Join(parts, " - ")
}
