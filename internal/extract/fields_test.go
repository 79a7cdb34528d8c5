package extract

import (
	"testing"
)

func TestRecordFromBlock_EndToEnd(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<article>
			<a class="job-title" href="/job/1">Engineer</a>
			<span class="company">Acme</span>
			<span class="location">Toronto, ON</span>
		</article>
		<article>
			<p>No anchor here at all.</p>
		</article>
	</body></html>`)

	blocks := Blocks(doc)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	rec, ok := RecordFromBlock(blocks[0])
	if !ok {
		t.Fatalf("expected a record from the first block")
	}
	if rec.Company != "Acme" || rec.Role != "Engineer" || rec.Location != "Toronto, ON" || rec.Link != "/job/1" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if _, ok := RecordFromBlock(blocks[1]); ok {
		t.Fatalf("block without an anchor must yield no record")
	}
}

func TestRecordFromBlock_FirstAnchorFallback(t *testing.T) {
	doc := parseDoc(t, `<article>
		<a href="/job/9">Data Analyst</a>
	</article>`)

	rec, ok := RecordFromBlock(Blocks(doc)[0])
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Role != "Data Analyst" || rec.Link != "/job/9" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Company != "-" || rec.Location != "-" {
		t.Fatalf("unresolved fields must hold the sentinel, got %+v", rec)
	}
}

func TestRecordFromBlock_TitleClassBeatsFirstAnchor(t *testing.T) {
	doc := parseDoc(t, `<article>
		<a href="/elsewhere">Save job</a>
		<a class="posting-link" href="/job/3">Site Reliability Engineer</a>
	</article>`)

	rec, ok := RecordFromBlock(Blocks(doc)[0])
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Role != "Site Reliability Engineer" || rec.Link != "/job/3" {
		t.Fatalf("title-classed anchor should win: %+v", rec)
	}
}

func TestRecordFromBlock_CompanySecondAnchorFallback(t *testing.T) {
	doc := parseDoc(t, `<article>
		<a class="job-title" href="/job/4">Engineer</a>
		<a href="/employer/acme">Acme Corp</a>
	</article>`)

	rec, _ := RecordFromBlock(Blocks(doc)[0])
	if rec.Company != "Acme Corp" {
		t.Fatalf("expected second-anchor company fallback, got %q", rec.Company)
	}
}

func TestRecordFromBlock_CompanyClassBeatsSecondAnchor(t *testing.T) {
	doc := parseDoc(t, `<article>
		<a class="job-title" href="/job/5">Engineer</a>
		<div class="employer-name">Globex</div>
		<a href="/other">Not the company</a>
	</article>`)

	rec, _ := RecordFromBlock(Blocks(doc)[0])
	if rec.Company != "Globex" {
		t.Fatalf("expected company container to win, got %q", rec.Company)
	}
}

func TestRecordFromBlock_LocationProvinceFallback(t *testing.T) {
	doc := parseDoc(t, `<article>
		<a class="job-title" href="/job/6">Engineer</a>
		<p>Based in Waterloo, ON with hybrid options.</p>
	</article>`)

	rec, _ := RecordFromBlock(Blocks(doc)[0])
	if rec.Location != "Waterloo, ON" {
		t.Fatalf("expected province fallback, got %q", rec.Location)
	}
}

func TestRecordFromBlock_EmptyTitleSkipsBlock(t *testing.T) {
	doc := parseDoc(t, `<article><a class="job-title" href="/job/7"><img src="x.png"/></a></article>`)
	if _, ok := RecordFromBlock(Blocks(doc)[0]); ok {
		t.Fatalf("anchor with no text must not yield a record")
	}
}
