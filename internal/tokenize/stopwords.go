package tokenize

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultStopwords are high-frequency English words excluded from the term
// stream.
var defaultStopwords = []string{
	"the", "and", "for", "with", "that", "this", "you", "your", "from", "are", "but", "was",
	"were", "have", "has", "had", "not", "can", "will", "would", "could", "should", "about",
	"into", "out", "over", "under", "between", "within", "without", "after", "before", "when",
	"where", "how", "why", "what", "which", "while", "than", "then", "also", "just", "like",
	"some", "more", "most", "much", "many", "each", "other", "another", "been", "being", "use",
	"used", "using", "via", "a", "an", "in", "on", "of", "to", "as", "it", "is", "at", "by",
	"or", "if", "we", "i",
}

// DefaultStopwords returns the built-in stopword set.
func DefaultStopwords() map[string]bool {
	set := make(map[string]bool, len(defaultStopwords))
	for _, w := range defaultStopwords {
		set[w] = true
	}
	return set
}

// LoadStopwords reads a word-per-line stopword file. Blank lines and lines
// starting with '#' are skipped; words are lowercased.
func LoadStopwords(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stopwords: %w", err)
	}
	defer f.Close()

	set := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[strings.ToLower(word)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stopwords: %w", err)
	}

	return set, nil
}
