package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Blocks locates the candidate listing fragments of a parsed document.
// It first collects <article> containers; if there are none it falls back to
// <div> containers whose class attribute carries a result/listing keyword.
// Only the outermost matching div is kept so a card's inner decoration does
// not spawn phantom fragments. Zero blocks is a valid outcome.
func Blocks(doc *goquery.Document) []*goquery.Selection {
	var blocks []*goquery.Selection
	doc.Find("article").Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, s)
	})
	if len(blocks) > 0 {
		return blocks
	}
	doc.Find("div").Each(func(_ int, s *goquery.Selection) {
		if !resultDiv(s) {
			return
		}
		nested := false
		s.Parents().EachWithBreak(func(_ int, p *goquery.Selection) bool {
			if goquery.NodeName(p) == "div" && resultDiv(p) {
				nested = true
				return false
			}
			return true
		})
		if !nested {
			blocks = append(blocks, s)
		}
	})
	return blocks
}

func resultDiv(s *goquery.Selection) bool {
	class, ok := s.Attr("class")
	return ok && classHasAny(class, "result", "job")
}

var blankLinesRe = regexp.MustCompile(`\n\s*\n`)

// PlainBlocks splits a plain-text document into blocks on runs of one or
// more blank lines. Line endings are normalized first; empty blocks are
// dropped and the survivors are trimmed.
func PlainBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := blankLinesRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
