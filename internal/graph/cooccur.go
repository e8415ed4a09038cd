package graph

// Accumulator gathers windowed co-occurrence counts over vocabulary ids.
// It is filled one document at a time; documents share no state beyond
// the running totals.
type Accumulator struct {
	window int
	counts []int
	pairs  map[[2]int]int
}

// NewAccumulator sizes an accumulator for a vocabulary of vocabSize terms.
func NewAccumulator(vocabSize, window int) *Accumulator {
	return &Accumulator{
		window: window,
		counts: make([]int, vocabSize),
		pairs:  make(map[[2]int]int),
	}
}

// AddDocument maps one document's term stream to vocabulary ids (dropping
// out-of-vocabulary terms, so the window slides over the filtered
// sequence) and accumulates occurrence counts and unordered pair weights.
// Identical ids inside a window never pair: the graph has no self-loops.
func (acc *Accumulator) AddDocument(v Vocabulary, terms []string) {
	ids := make([]int, 0, len(terms))
	for _, t := range terms {
		if id, ok := v.IDs[t]; ok {
			ids = append(ids, id)
		}
	}

	for i, a := range ids {
		acc.counts[a]++
		end := min(i+acc.window, len(ids))
		for _, b := range ids[i+1 : end] {
			if a == b {
				continue
			}
			lo, hi := min(a, b), max(a, b)
			acc.pairs[[2]int{lo, hi}]++
		}
	}
}

// Counts returns per-id occurrence totals.
func (acc *Accumulator) Counts() []int {
	return acc.counts
}

// Pairs returns the accumulated unordered pair weights keyed by (lo, hi).
func (acc *Accumulator) Pairs() map[[2]int]int {
	return acc.pairs
}
