package extract

import (
	"regexp"
	"strings"
)

var (
	sentenceEndRe = regexp.MustCompile(`([.!?])\s+`)
	newlineRunRe  = regexp.MustCompile(`\n+`)
)

// SplitSentences breaks text into sentence-like chunks. A sentence ends at
// terminal punctuation followed by whitespace, or at a line break. The
// punctuation stays with its sentence, and a dot inside a token (such as a
// hostname) does not split it.
func SplitSentences(text string) []string {
	marked := sentenceEndRe.ReplaceAllString(text, "$1\n")
	raw := newlineRunRe.Split(marked, -1)
	out := make([]string, 0, len(raw))
	for _, part := range raw {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// KeywordSentences returns the sentences containing keyword, case-insensitively.
func KeywordSentences(sentences []string, keyword string) []string {
	kw := strings.ToLower(keyword)
	var out []string
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), kw) {
			out = append(out, s)
		}
	}
	return out
}
