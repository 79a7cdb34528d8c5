package render

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jobsift/jobsift/internal/record"
)

// header labels the four record fields in every output format.
var header = [4]string{"Company", "Role", "Location", "Link"}

// columnCaps limits text-table column widths; longer cells are truncated
// with an ellipsis marker.
var columnCaps = [4]int{28, 40, 24, 48}

// TSV renders the records as tab-separated text with a header row.
func TSV(records []record.Record) string {
	return delimited(records, '\t')
}

// CSV renders the records as comma-separated text with a header row.
func CSV(records []record.Record) string {
	return delimited(records, ',')
}

// delimited quotes only the fields that need it (delimiter, newline or quote
// inside the value), which encoding/csv already does.
func delimited(records []record.Record, comma rune) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = comma
	_ = w.Write(header[:])
	for _, r := range records {
		f := r.Fields()
		_ = w.Write(f[:])
	}
	w.Flush()
	return b.String()
}

// Table renders an aligned fixed-width text table. Columns are capped at
// fixed widths with overflow truncated behind "...", and data rows are
// separated by one blank line.
func Table(records []record.Record) string {
	widths := columnCaps
	for i, h := range header {
		w := len(h)
		for _, r := range records {
			if l := len([]rune(r.Fields()[i])); l > w {
				w = l
			}
		}
		if w < widths[i] {
			widths[i] = w
		}
	}

	var b strings.Builder
	writeRow := func(cells [4]string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], truncate(c, widths[i]))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}

	writeRow(header)
	var rule [4]string
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeRow(rule)
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		writeRow(r.Fields())
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Markdown renders a pipe-delimited table with a header separator row. Pipe
// characters inside cells are escaped, and a resolvable link is rendered as
// a labeled Markdown link.
func Markdown(records []record.Record) string {
	var b strings.Builder
	b.WriteString("| Company | Role | Location | Link |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range records {
		f := r.Fields()
		link := f[3]
		if !record.Unresolved(link) {
			link = fmt.Sprintf("[link](%s)", escapePipes(link))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapePipes(f[0]), escapePipes(f[1]), escapePipes(f[2]), link)
	}
	return b.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
