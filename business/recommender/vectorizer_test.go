package recommender

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeDropsShortTokens(t *testing.T) {
	tokens := tokenize("A serum b untuk C kulit")
	assert.Equal(t, []string{"serum", "untuk", "kulit"}, tokens)
}

func TestNgramsIncludeBigrams(t *testing.T) {
	terms := ngrams([]string{"serum", "wajah", "glowing"})
	assert.Contains(t, terms, "serum")
	assert.Contains(t, terms, "serum wajah")
	assert.Contains(t, terms, "wajah glowing")
	assert.NotContains(t, terms, "serum wajah glowing")
}

func TestFitRowsAreL2Normalized(t *testing.T) {
	v := &TFIDFVectorizer{}
	rows := v.Fit([]string{
		"serum wajah untuk kulit berminyak",
		"pelembab untuk kulit kering",
		"sunscreen spf lima puluh",
	})
	require.Len(t, rows, 3)

	for i, row := range rows {
		var sum float64
		for _, w := range row {
			sum += w * w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d should have unit norm", i)
	}
}

func TestFitSingleDocumentKeepsVocabulary(t *testing.T) {
	// With one document every term appears in 100% of docs, which the
	// document-frequency cutoff would otherwise prune to nothing.
	v := &TFIDFVectorizer{}
	rows := v.Fit([]string{"serum niacinamide untuk kulit kusam"})

	require.Len(t, rows, 1)
	assert.Greater(t, v.VocabularySize(), 0)

	var sum float64
	for _, w := range rows[0] {
		sum += w * w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestFitIdenticalDocumentsKeepsVocabulary(t *testing.T) {
	v := &TFIDFVectorizer{}
	rows := v.Fit([]string{
		"serum wajah glowing",
		"serum wajah glowing",
		"serum wajah glowing",
	})

	require.Len(t, rows, 3)
	assert.Greater(t, v.VocabularySize(), 0)
}

func TestFitPrunesNearUniversalTerms(t *testing.T) {
	// "serum" appears in every document, above the 0.8 cutoff.
	docs := []string{
		"serum satu melati",
		"serum dua mawar",
		"serum tiga anggrek",
		"serum empat kenanga",
		"serum lima cempaka",
	}
	v := &TFIDFVectorizer{}
	v.Fit(docs)

	_, hasSerum := v.vocabulary["serum"]
	assert.False(t, hasSerum)
	_, hasMelati := v.vocabulary["melati"]
	assert.True(t, hasMelati)
}

func TestFitCapsVocabularySize(t *testing.T) {
	docs := make([]string, 200)
	for i := range docs {
		docs[i] = fmt.Sprintf("produk nomor%d varian%d bahan%d aroma%d tekstur%d", i, i, i, i, i)
	}
	v := &TFIDFVectorizer{}
	v.Fit(docs)

	assert.LessOrEqual(t, v.VocabularySize(), maxFeatures)
}

func TestTransformUnknownTermsYieldZeroVector(t *testing.T) {
	v := &TFIDFVectorizer{}
	v.Fit([]string{
		"serum wajah berminyak",
		"pelembab kulit kering",
	})

	vec := v.Transform("xylophone quartz")
	var sum float64
	for _, w := range vec {
		sum += math.Abs(w)
	}
	assert.Zero(t, sum)
}

func TestTransformMatchesFittedTerms(t *testing.T) {
	v := &TFIDFVectorizer{}
	rows := v.Fit([]string{
		"serum acne jerawat",
		"pelembab hydrating kering",
	})

	query := v.Transform("serum acne")
	assert.Greater(t, cosineSimilarity(query, rows[0]), cosineSimilarity(query, rows[1]))
}
