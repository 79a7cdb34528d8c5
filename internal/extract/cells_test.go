package extract

import (
	"testing"
)

func TestRecordsFromCells_KeywordWindow(t *testing.T) {
	cells := []Cell{
		{Text: "Acme"},
		{Text: "Engineer"},
		{Text: "Toronto"},
		{Text: "Apply", Href: "/job/2"},
	}
	recs := RecordsFromCells(cells, []string{"toronto"})
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Company != "Acme" || r.Role != "Engineer" || r.Location != "Toronto" || r.Link != "/job/2" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestRecordsFromCells_WindowBounds(t *testing.T) {
	// Matching cell without two predecessors or one successor yields nothing.
	cells := []Cell{{Text: "Toronto"}, {Text: "x"}, {Text: "y"}}
	if recs := RecordsFromCells(cells, []string{"toronto"}); len(recs) != 0 {
		t.Fatalf("expected no records at the window edge, got %v", recs)
	}
	cells = []Cell{{Text: "a"}, {Text: "b"}, {Text: "Toronto"}}
	if recs := RecordsFromCells(cells, []string{"toronto"}); len(recs) != 0 {
		t.Fatalf("expected no records without a following cell, got %v", recs)
	}
}

func TestRecordsFromCells_LinkCellTextFallback(t *testing.T) {
	cells := []Cell{
		{Text: "Acme"},
		{Text: "Engineer"},
		{Text: "Toronto"},
		{Text: "https://example.com/job/2"},
	}
	recs := RecordsFromCells(cells, []string{"toronto"})
	if len(recs) != 1 || recs[0].Link != "https://example.com/job/2" {
		t.Fatalf("expected link from cell text, got %v", recs)
	}
}

func TestCells_MarkdownPipeRows(t *testing.T) {
	doc := "# Listings\n\n" +
		"| Company | Role | Location | Link |\n" +
		"| --- | --- | --- | --- |\n" +
		"| Acme | Engineer | Toronto | [Apply](/job/2) |\n"

	cells := Cells(doc)
	if len(cells) != 8 {
		t.Fatalf("expected 8 cells (separator skipped), got %d: %v", len(cells), cells)
	}
	if cells[4].Text != "Acme" || cells[7].Text != "Apply" || cells[7].Href != "/job/2" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestCells_MarkdownCellWithHTMLAnchor(t *testing.T) {
	doc := "| Acme | Engineer | Toronto | <a href=/job/2>Apply</a> |\n"
	cells := Cells(doc)
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	if cells[3].Text != "Apply" || cells[3].Href != "/job/2" {
		t.Fatalf("unexpected anchor cell: %+v", cells[3])
	}
	recs := RecordsFromCells(cells, []string{"TORONTO"})
	if len(recs) != 1 || recs[0].Link != "/job/2" {
		t.Fatalf("expected one record with /job/2, got %v", recs)
	}
}

func TestCells_HTMLTable(t *testing.T) {
	doc := `<table>
		<tr><td>Acme</td><td>Engineer</td><td>Toronto</td><td><a href="/job/2">Apply</a></td></tr>
	</table>`
	cells := Cells(doc)
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d: %v", len(cells), cells)
	}
	if cells[0].Text != "Acme" || cells[3].Href != "/job/2" {
		t.Fatalf("unexpected cells: %v", cells)
	}
}

func TestStripInline(t *testing.T) {
	cases := []struct{ in, want string }{
		{"![logo](img.png) Acme", "logo Acme"},
		{"[Apply here](/job/2)", "Apply here"},
		{"`Engineer`", "Engineer"},
		{"<b>Toronto</b>,&nbsp;ON", "Toronto , ON"},
	}
	for _, c := range cases {
		if got := StripInline(c.in); got != c.want {
			t.Fatalf("StripInline(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
