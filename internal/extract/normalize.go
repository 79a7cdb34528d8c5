package extract

import (
	"html"
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Clean reduces a markup fragment to plain text: tag-like spans become
// spaces, HTML entities (named and numeric) are decoded, and runs of
// whitespace collapse to single spaces with the ends trimmed. Unparseable
// entities pass through literally. Cleaning already-clean text returns it
// unchanged.
func Clean(fragment string) string {
	s := tagRe.ReplaceAllString(fragment, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// classHasAny reports whether a class attribute value contains any of the
// given keywords, case-insensitively.
func classHasAny(class string, keywords ...string) bool {
	class = strings.ToLower(class)
	for _, kw := range keywords {
		if strings.Contains(class, kw) {
			return true
		}
	}
	return false
}
