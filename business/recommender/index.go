package recommender

import (
	"errors"

	"mySkinMatch/domain"
)

var ErrEmptyCatalog = errors.New("catalog is empty")

// FeatureIndex is a fitted vector space over one catalog snapshot. It is
// immutable once built; a catalog change needs a full rebuild.
type FeatureIndex struct {
	vectorizer *TFIDFVectorizer
	catalog    []domain.Product
	rows       [][]float64
}

// combinedText is the unit of indexing: cleaned name, verbatim brand, cleaned
// description. Brand stays verbatim so exact brand tokens survive into the
// vocabulary the way the source data writes them.
func combinedText(p domain.Product) string {
	return CleanText(p.ProductName) + " " + p.Brand + " " + CleanText(p.Description)
}

// BuildIndex fits the weighting model over the whole catalog and returns the
// fitted index. Row i always describes catalog item i.
func BuildIndex(products []domain.Product) (*FeatureIndex, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	docs := make([]string, len(products))
	for i, p := range products {
		docs[i] = combinedText(p)
	}

	vectorizer := &TFIDFVectorizer{}
	rows := vectorizer.Fit(docs)

	catalog := make([]domain.Product, len(products))
	copy(catalog, products)

	return &FeatureIndex{
		vectorizer: vectorizer,
		catalog:    catalog,
		rows:       rows,
	}, nil
}

// QueryVector projects query text through the fitted model. Out-of-vocabulary
// terms vanish; a fully unknown query yields the zero vector.
func (ix *FeatureIndex) QueryVector(text string) []float64 {
	return ix.vectorizer.Transform(text)
}

// Size reports the number of indexed catalog items.
func (ix *FeatureIndex) Size() int {
	return len(ix.catalog)
}

// Products returns the catalog snapshot the index was built from.
func (ix *FeatureIndex) Products() []domain.Product {
	return ix.catalog
}
