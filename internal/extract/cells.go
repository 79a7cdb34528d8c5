package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/jobsift/jobsift/internal/record"
)

// Cell is one flattened table cell: its plain text after inline-markup
// stripping, plus the first hyperlink target found inside it, if any.
type Cell struct {
	Text string
	Href string
}

// Cells flattens a document into its ordered sequence of table-cell values.
// Documents carrying HTML table cells are walked with the HTML parser;
// otherwise Markdown pipe rows are scanned line by line. Either way the cell
// text passes through StripInline.
func Cells(doc string) []Cell {
	lower := strings.ToLower(doc)
	if strings.Contains(lower, "<td") || strings.Contains(lower, "<th") {
		if cells := htmlCells(doc); len(cells) > 0 {
			return cells
		}
	}
	return markdownCells(doc)
}

// RecordsFromCells applies the keyword window over flattened cells: a cell
// whose text contains any keyword (case-insensitively) becomes the location
// of a record whose company and role sit two and one cells before it, and
// whose link is taken from the cell after it (href first, text otherwise).
// This is a positional fallback heuristic tied to the source's assumed row
// layout, not a schema parse.
func RecordsFromCells(cells []Cell, keywords []string) []record.Record {
	var out []record.Record
	for i, c := range cells {
		if i < 2 || i+1 >= len(cells) {
			continue
		}
		if !containsAnyFold(c.Text, keywords) {
			continue
		}
		link := cells[i+1].Href
		if link == "" {
			link = cells[i+1].Text
		}
		out = append(out, record.Record{
			Company:  cells[i-2].Text,
			Role:     cells[i-1].Text,
			Location: c.Text,
			Link:     Clean(link),
		})
	}
	return out
}

func containsAnyFold(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

var (
	imageMarkRe = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkMarkRe  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	codeMarkRe  = regexp.MustCompile("`+")
)

// StripInline removes inline Markdown decoration from cell text: images and
// links collapse to their alt/label text, code markers disappear, and
// residual tags and entities are handled by Clean.
func StripInline(s string) string {
	s = imageMarkRe.ReplaceAllString(s, "$1")
	s = linkMarkRe.ReplaceAllString(s, "$1")
	s = codeMarkRe.ReplaceAllString(s, "")
	return Clean(s)
}

func htmlCells(doc string) []Cell {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}
	var cells []Cell
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (strings.EqualFold(n.Data, "td") || strings.EqualFold(n.Data, "th")) {
			cells = append(cells, cellFromNode(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return cells
}

func cellFromNode(n *html.Node) Cell {
	var b strings.Builder
	var href string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "a") && href == "" {
			for _, attr := range cur.Attr {
				if strings.EqualFold(attr.Key, "href") {
					href = strings.TrimSpace(attr.Val)
					break
				}
			}
		}
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteByte(' ')
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return Cell{Text: StripInline(b.String()), Href: href}
}

var (
	hrefAttrRe      = regexp.MustCompile(`(?i)href\s*=\s*['"]?([^'"\s>]+)`)
	mdLinkTargetRe  = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)[^)]*\)`)
	separatorCellRe = regexp.MustCompile(`^:?-{3,}:?$`)
)

func markdownCells(doc string) []Cell {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	doc = strings.ReplaceAll(doc, "\r", "\n")
	var cells []Cell
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.Contains(trimmed, "|") {
			continue
		}
		raw := strings.Split(trimmed, "|")
		if len(raw) > 0 && strings.TrimSpace(raw[0]) == "" {
			raw = raw[1:]
		}
		if len(raw) > 0 && strings.TrimSpace(raw[len(raw)-1]) == "" {
			raw = raw[:len(raw)-1]
		}
		if len(raw) == 0 {
			continue
		}
		separator := true
		row := make([]Cell, 0, len(raw))
		for _, rc := range raw {
			if !separatorCellRe.MatchString(strings.TrimSpace(rc)) {
				separator = false
			}
			row = append(row, Cell{Text: StripInline(rc), Href: firstHref(rc)})
		}
		if separator {
			continue
		}
		cells = append(cells, row...)
	}
	return cells
}

func firstHref(s string) string {
	if m := hrefAttrRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := mdLinkTargetRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
