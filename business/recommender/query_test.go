package recommender

import (
	"testing"

	"mySkinMatch/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryTextFragmentOrder(t *testing.T) {
	got := BuildQueryText(domain.PreferenceProfile{
		SkinCondition:      "berminyak",
		SkinProblem:        "jerawat",
		ProductPreference:  "serum",
		PreferenceKeywords: "niacinamide",
		SearchKeywords:     "toner",
	})

	assert.Equal(t, "oil control minyak sebum acne anti jerawat salicylic serum niacinamide toner", got)
}

func TestBuildQueryTextSkipsSemua(t *testing.T) {
	got := BuildQueryText(domain.PreferenceProfile{
		SkinCondition:     "kering",
		ProductPreference: domain.ProductPreferenceAll,
	})

	assert.Equal(t, "moisturizer pelembab hydrating", got)
}

func TestBuildQueryTextUnknownValuesExpandToNothing(t *testing.T) {
	got := BuildQueryText(domain.PreferenceProfile{
		SkinCondition: "berjerawat parah",
		SkinProblem:   "unknown",
	})

	assert.Equal(t, "", got)
}

func TestBuildQueryTextDuplicateSearchKeywordsDropped(t *testing.T) {
	got := BuildQueryText(domain.PreferenceProfile{
		PreferenceKeywords: "vitamin c",
		SearchKeywords:     "vitamin c",
	})

	assert.Equal(t, "vitamin c", got)
}

func TestBuildQueryTextEmptyProfile(t *testing.T) {
	assert.Equal(t, "", BuildQueryText(domain.PreferenceProfile{}))
}
