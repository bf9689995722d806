package recommender

import (
	"strings"
	"testing"

	"mySkinMatch/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSortsByAscendingDistance(t *testing.T) {
	ix := buildTestIndex(t)
	scores := []ItemScore{
		{ProductID: 1, Score: 0.2, position: 0},
		{ProductID: 2, Score: 0.9, position: 1},
		{ProductID: 3, Score: 0.5, position: 2},
	}

	recs := rank(scores, ix, domain.PreferenceProfile{}, 10)
	require.Len(t, recs, 3)

	assert.Equal(t, uint64(2), recs[0].Product.ID)
	assert.Equal(t, uint64(3), recs[1].Product.ID)
	assert.Equal(t, uint64(1), recs[2].Product.ID)
}

func TestRankTieBreaksOnCatalogOrder(t *testing.T) {
	ix := buildTestIndex(t)
	scores := []ItemScore{
		{ProductID: 3, Score: 0.4, position: 2},
		{ProductID: 1, Score: 0.4, position: 0},
		{ProductID: 2, Score: 0.4, position: 1},
	}

	recs := rank(scores, ix, domain.PreferenceProfile{}, 10)
	require.Len(t, recs, 3)

	assert.Equal(t, uint64(1), recs[0].Product.ID)
	assert.Equal(t, uint64(2), recs[1].Product.ID)
	assert.Equal(t, uint64(3), recs[2].Product.ID)
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	ix := buildTestIndex(t)
	scores := scoreAll(ix.QueryVector("kulit"), ix)

	recs := rank(scores, ix, domain.PreferenceProfile{}, 2)
	assert.Len(t, recs, 2)
}

func TestRankDistanceComplementsSimilarity(t *testing.T) {
	ix := buildTestIndex(t)
	scores := []ItemScore{{ProductID: 2, Score: 0.8, position: 1}}

	recs := rank(scores, ix, domain.PreferenceProfile{}, 10)
	require.Len(t, recs, 1)

	assert.InDelta(t, 0.8, recs[0].Similarity, 1e-9)
	assert.InDelta(t, 0.2, recs[0].Distance, 1e-9)
}

func TestRankSkipsUnknownProductIDs(t *testing.T) {
	ix := buildTestIndex(t)
	scores := []ItemScore{
		{ProductID: 99, Score: 0.9, position: 0},
		{ProductID: 1, Score: 0.5, position: 1},
	}

	recs := rank(scores, ix, domain.PreferenceProfile{}, 10)
	require.Len(t, recs, 1)
	assert.Equal(t, uint64(1), recs[0].Product.ID)
}

func TestBuildExplanationTiers(t *testing.T) {
	profile := domain.PreferenceProfile{}

	assert.Equal(t, explanationVeryGood, buildExplanation(0.71, profile))
	assert.Equal(t, explanationGood, buildExplanation(0.51, profile))
	assert.Equal(t, explanationSome, buildExplanation(0.31, profile))
	assert.Equal(t, explanationAlternative, buildExplanation(0.3, profile))
	assert.Equal(t, explanationAlternative, buildExplanation(0.0, profile))
}

func TestBuildExplanationAppendsProfileClauses(t *testing.T) {
	got := buildExplanation(0.8, domain.PreferenceProfile{
		SkinCondition: "sensitif",
		SkinProblem:   "jerawat",
	})

	parts := strings.Split(got, " - ")
	require.Len(t, parts, 3)
	assert.Equal(t, explanationVeryGood, parts[0])
	assert.Equal(t, "untuk kulit sensitif", parts[1])
	assert.Equal(t, "mengatasi jerawat", parts[2])
}
