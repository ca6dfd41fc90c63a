package analyzer

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// maxVocabulary caps the TF-IDF feature space; when the two documents yield
// more terms, the most frequent across both are kept.
const maxVocabulary = 1000

// TextSimilarity scores how alike two documents read, in [0, 1]. The two
// inputs form a TF-IDF vector space (lowercased unigrams and bigrams, English
// stop words removed, smoothed IDF, L2-normalized vectors) and the score is
// the cosine of the two vectors. Empty input or a degenerate vocabulary
// yields 0: similarity is advisory, never fatal.
func TextSimilarity(text1, text2 string) float64 {
	if strings.TrimSpace(text1) == "" || strings.TrimSpace(text2) == "" {
		return 0.0
	}

	counts1 := termCounts(text1)
	counts2 := termCounts(text2)
	if len(counts1) == 0 || len(counts2) == 0 {
		return 0.0
	}

	vocab := buildVocabulary(counts1, counts2)

	vec1 := tfidfVector(counts1, counts2, vocab)
	vec2 := tfidfVector(counts2, counts1, vocab)
	if vec1 == nil || vec2 == nil {
		return 0.0
	}

	var dot float64
	for term, w := range vec1 {
		dot += w * vec2[term]
	}
	return dot
}

// termCounts tokenizes a document into lowercase words of at least two
// characters, drops stop words, and counts unigrams plus adjacent bigrams.
func termCounts(text string) map[string]int {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) < 2 || englishStopWords[w] {
			return
		}
		tokens = append(tokens, w)
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	counts := make(map[string]int, len(tokens)*2)
	for _, t := range tokens {
		counts[t]++
	}
	for i := 0; i+1 < len(tokens); i++ {
		counts[tokens[i]+" "+tokens[i+1]]++
	}
	return counts
}

// buildVocabulary merges the two documents' terms, keeping at most
// maxVocabulary of them ordered by total frequency (ties alphabetical).
func buildVocabulary(counts1, counts2 map[string]int) map[string]bool {
	type termFreq struct {
		term  string
		total int
	}
	merged := make(map[string]int, len(counts1)+len(counts2))
	for t, c := range counts1 {
		merged[t] += c
	}
	for t, c := range counts2 {
		merged[t] += c
	}

	vocab := make(map[string]bool, len(merged))
	if len(merged) <= maxVocabulary {
		for t := range merged {
			vocab[t] = true
		}
		return vocab
	}

	freqs := make([]termFreq, 0, len(merged))
	for t, c := range merged {
		freqs = append(freqs, termFreq{t, c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].total != freqs[j].total {
			return freqs[i].total > freqs[j].total
		}
		return freqs[i].term < freqs[j].term
	})
	for _, tf := range freqs[:maxVocabulary] {
		vocab[tf.term] = true
	}
	return vocab
}

// tfidfVector builds the L2-normalized TF-IDF vector for doc against a
// two-document corpus (doc + other). IDF uses add-one smoothing so terms
// shared by both documents still carry weight. Returns nil when the vector
// has zero norm.
func tfidfVector(doc, other map[string]int, vocab map[string]bool) map[string]float64 {
	const nDocs = 2
	vec := make(map[string]float64, len(doc))
	var norm float64
	for term, tf := range doc {
		if !vocab[term] {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(float64(1+nDocs)/float64(1+df)) + 1
		w := float64(tf) * idf
		vec[term] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}
