package corpus

import (
	"regexp"
	"strings"
)

var frontmatterFences = []string{"+++", "---"}

var (
	codeFencePattern  = regexp.MustCompile("^\x60\x60\x60")
	headingPattern    = regexp.MustCompile(`^#{1,6}\s+`)
	listMarkerPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+`)
	blockquotePattern = regexp.MustCompile(`^\s*(?:>\s?)+`)
	imagePattern      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	codeSpanPattern   = regexp.MustCompile("\x60[^\x60]*\x60")
	htmlTagPattern    = regexp.MustCompile(`</?[A-Za-z][^>]*>`)
)

var emphasisReplacer = strings.NewReplacer("**", "", "__", "", "*", "")

// ExtractText reduces markdown to the plain text its terms come from.
// Frontmatter, fenced code blocks, inline code spans, raw HTML, and link
// URLs are dropped; heading, list, blockquote, and emphasis markers are
// stripped with their text kept. Surviving fragments are joined with
// single spaces.
func ExtractText(markdown string) string {
	lines := strings.Split(stripFrontmatter(markdown), "\n")

	var fragments []string
	inCodeBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if codeFencePattern.MatchString(trimmed) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock || trimmed == "" {
			continue
		}

		if text := stripLine(trimmed); text != "" {
			fragments = append(fragments, text)
		}
	}

	return strings.Join(fragments, " ")
}

// stripFrontmatter removes a leading +++ or --- metadata block. An
// unterminated block leaves the text untouched.
func stripFrontmatter(s string) string {
	for _, fence := range frontmatterFences {
		if strings.HasPrefix(s, fence) {
			if end := strings.Index(s, "\n"+fence+"\n"); end >= 0 {
				return s[end+len(fence)+2:]
			}
			return s
		}
	}
	return s
}

// stripLine removes markdown syntax from a single non-code line.
func stripLine(line string) string {
	line = blockquotePattern.ReplaceAllString(line, "")
	line = headingPattern.ReplaceAllString(line, "")
	line = listMarkerPattern.ReplaceAllString(line, "")
	line = imagePattern.ReplaceAllString(line, "$1")
	line = linkPattern.ReplaceAllString(line, "$1")
	line = codeSpanPattern.ReplaceAllString(line, "")
	line = htmlTagPattern.ReplaceAllString(line, "")
	line = emphasisReplacer.Replace(line)
	return strings.TrimSpace(line)
}
