// Package tokenize turns extracted document text into the ordered term
// stream the graph is built from.
package tokenize

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9\-']+`)

// Terms produces the unigram and bigram stream for one document. The text
// is lowercased, matched against tokenPattern, and trimmed of surrounding
// hyphens; tokens shorter than three characters or in the stopword set are
// dropped before bigrams are formed, so bigrams pair adjacent surviving
// unigrams. Each bigram is emitted right after its first half:
// u0, "u0 u1", u1, "u1 u2", u2, ...
func Terms(text string, stop map[string]bool) []string {
	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tok := strings.Trim(m, "-")
		if len(tok) < 3 || stop[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*2)
	for i, tok := range tokens {
		terms = append(terms, tok)
		if i+1 < len(tokens) {
			terms = append(terms, tok+" "+tokens[i+1])
		}
	}

	return terms
}
