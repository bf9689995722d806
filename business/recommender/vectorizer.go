package recommender

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Fixed weighting hyperparameters. The vocabulary keeps the 1000 most frequent
// terms, counting unigrams and adjacent bigrams; terms present in more than 80%
// of documents are pruned. No stopword list: the catalog language is Indonesian
// mixed with English product terms, so a generic list would cut real signal.
const (
	maxFeatures   = 1000
	maxDocFreq    = 0.8
	minTermLength = 2
	ngramMax      = 2
)

var termPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)

// tokenize lowercases the text and extracts word tokens, dropping single
// characters (they carry no discriminative weight).
func tokenize(text string) []string {
	raw := termPattern.FindAllString(strings.ToLower(text), -1)

	tokens := raw[:0]
	for _, tok := range raw {
		if len(tok) >= minTermLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// ngrams expands a token stream into unigrams plus adjacent bigrams.
func ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for n := 2; n <= ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// TFIDFVectorizer is a term-frequency/inverse-document-frequency model fitted
// once over the catalog corpus. Fitted instances are immutable; queries are
// projected through Transform without refitting.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Fit learns the vocabulary and IDF weights from the corpus and returns the
// per-document weight matrix, row order identical to docs order.
func (v *TFIDFVectorizer) Fit(docs []string) [][]float64 {
	docCount := len(docs)

	termCounts := make([]map[string]int, docCount)
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range ngrams(tokenize(doc)) {
			counts[term]++
			corpusFreq[term]++
		}
		for term := range counts {
			docFreq[term]++
		}
		termCounts[i] = counts
	}

	kept := pruneByDocFreq(docFreq, docCount)
	kept = capVocabulary(kept, corpusFreq)

	v.vocabulary = make(map[string]int, len(kept))
	for i, term := range kept {
		v.vocabulary[term] = i
	}

	// smooth idf: ln((1+N)/(1+df)) + 1
	v.idf = make([]float64, len(kept))
	for term, idx := range v.vocabulary {
		v.idf[idx] = math.Log(float64(1+docCount)/float64(1+docFreq[term])) + 1
	}

	matrix := make([][]float64, docCount)
	for i := range docs {
		matrix[i] = v.vectorize(termCounts[i])
	}
	return matrix
}

// Transform projects text into the fitted vector space. Terms the model never
// saw are dropped silently.
func (v *TFIDFVectorizer) Transform(text string) []float64 {
	counts := make(map[string]int)
	for _, term := range ngrams(tokenize(text)) {
		counts[term]++
	}
	return v.vectorize(counts)
}

// VocabularySize reports the number of fitted terms.
func (v *TFIDFVectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

func (v *TFIDFVectorizer) vectorize(counts map[string]int) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for term, count := range counts {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx] = float64(count) * v.idf[idx]
		}
	}
	normalizeL2(vec)
	return vec
}

// pruneByDocFreq drops near-universal terms. When pruning would leave nothing
// behind (a single-document corpus, or all documents identical) the unpruned
// set is kept: an empty vocabulary would make every query score zero.
func pruneByDocFreq(docFreq map[string]int, docCount int) []string {
	kept := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if float64(df)/float64(docCount) > maxDocFreq {
			continue
		}
		kept = append(kept, term)
	}

	if len(kept) == 0 {
		kept = kept[:0]
		for term := range docFreq {
			kept = append(kept, term)
		}
	}
	return kept
}

// capVocabulary keeps the maxFeatures most frequent terms, ties broken
// alphabetically so fitting is deterministic.
func capVocabulary(terms []string, corpusFreq map[string]int) []string {
	sort.Slice(terms, func(i, j int) bool {
		if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	// vocabulary order itself is alphabetical, frequency only decides the cut
	sort.Strings(terms)
	return terms
}

func normalizeL2(vec []float64) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}

	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
