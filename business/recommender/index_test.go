package recommender

import (
	"testing"

	"mySkinMatch/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			ProductName: "Hydrating Moisturizer Gel",
			Brand:       "Wardah",
			Price:       45000,
			Description: "pelembab hydrating untuk kulit kering dan sensitif",
			Rating:      4.5,
		},
		{
			ID:          2,
			ProductName: "Acne Serum Salicylic",
			Brand:       "Somethinc",
			Price:       89000,
			Description: "serum anti jerawat dengan salicylic acid untuk kulit sensitif gentle",
			Rating:      4.7,
		},
		{
			ID:          3,
			ProductName: "Brightening Toner Vitamin C",
			Brand:       "Emina",
			Price:       32000,
			Description: "toner brightening vitamin c untuk kulit kusam",
			Rating:      4.2,
		},
	}
}

func buildTestIndex(t *testing.T) *FeatureIndex {
	t.Helper()
	ix, err := BuildIndex(testCatalog())
	require.NoError(t, err)
	return ix
}

func TestBuildIndexEmptyCatalog(t *testing.T) {
	_, err := BuildIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestBuildIndexRowPerProduct(t *testing.T) {
	ix := buildTestIndex(t)
	assert.Equal(t, 3, ix.Size())
	assert.Len(t, ix.rows, 3)
}

func TestBuildIndexCopiesCatalog(t *testing.T) {
	catalog := testCatalog()
	ix, err := BuildIndex(catalog)
	require.NoError(t, err)

	catalog[0].ProductName = "mutated"
	assert.Equal(t, "Hydrating Moisturizer Gel", ix.catalog[0].ProductName)
}

func TestCombinedTextKeepsBrandVerbatim(t *testing.T) {
	got := combinedText(domain.Product{
		ProductName: "Acne Serum 2%!",
		Brand:       "SKINTIFIC",
		Description: "anti jerawat",
	})
	assert.Equal(t, "acne serum SKINTIFIC anti jerawat", got)
}
