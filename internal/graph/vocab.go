package graph

import (
	"cmp"
	"slices"
)

// Vocabulary is the selected term set with dense ids. Terms[id] is the
// term for that id; IDs inverts the mapping.
type Vocabulary struct {
	Terms []string
	IDs   map[string]int
}

// TermFrequencies sums term occurrences across all document streams.
func TermFrequencies(docTerms [][]string) map[string]int {
	freq := make(map[string]int)
	for _, terms := range docTerms {
		for _, t := range terms {
			freq[t]++
		}
	}
	return freq
}

// SelectVocabulary keeps the maxNodes most frequent terms and assigns ids
// 0..n-1 in rank order. Equal counts break toward the lexically smaller
// term so the selection is stable across runs.
func SelectVocabulary(freq map[string]int, maxNodes int) Vocabulary {
	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	slices.SortFunc(terms, func(a, b string) int {
		if c := cmp.Compare(freq[b], freq[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if len(terms) > maxNodes {
		terms = terms[:maxNodes]
	}

	v := Vocabulary{Terms: terms, IDs: make(map[string]int, len(terms))}
	for i, t := range terms {
		v.IDs[t] = i
	}
	return v
}
