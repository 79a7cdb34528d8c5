package scrape

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/internal/fetch"
	"github.com/jobsift/jobsift/internal/record"
)

// BaseURL is the eluta.ca search endpoint. The query layout
// (/search?q=...&l=...&p=...) may evolve; keep it configurable.
const BaseURL = "https://www.eluta.ca/search"

// DefaultPageDelay spaces out sequential page fetches.
const DefaultPageDelay = 800 * time.Millisecond

// FieldCompleter can fill fields the heuristics left unresolved, given the
// fragment's plain text. Implementations must be best-effort: return the
// record unchanged rather than fail.
type FieldCompleter interface {
	Complete(ctx context.Context, rec record.Record, fragment string) record.Record
}

// BuildSearchURL assembles a search URL for query and optional location;
// the page parameter is only added past the first page.
func BuildSearchURL(base, query, location string, page int) string {
	if base == "" {
		base = BaseURL
	}
	v := url.Values{}
	v.Set("q", strings.TrimSpace(query))
	if l := strings.TrimSpace(location); l != "" {
		v.Set("l", l)
	}
	if page > 1 {
		v.Set("p", strconv.Itoa(page))
	}
	return base + "?" + v.Encode()
}

// Searcher drives the sequential paginated search: fetch a page, extract its
// records, move on after a polite delay. It is the only caller of the
// concurrent liveness pass downstream; the fetching itself stays sequential.
type Searcher struct {
	Client  *fetch.Client
	BaseURL string
	// Delay between page fetches. Zero means DefaultPageDelay.
	Delay time.Duration
	// Completer, when set, is offered records with unresolved optional
	// fields along with their fragment text.
	Completer FieldCompleter
}

// Search fetches up to pages result pages and returns the merged,
// de-duplicated records. A fetch failure ends the loop with whatever was
// already collected, and an empty page past the first is treated as the end
// of the result set. Absence of extractable data is not an error.
func (s *Searcher) Search(ctx context.Context, query, location string, pages int) []record.Record {
	if pages < 1 {
		pages = 1
	}
	delay := s.Delay
	if delay <= 0 {
		delay = DefaultPageDelay
	}

	var all []record.Record
	for p := 1; p <= pages; p++ {
		pageURL := BuildSearchURL(s.BaseURL, query, location, p)
		body, err := s.Client.Get(ctx, pageURL)
		if err != nil {
			log.Warn().Err(err).Int("page", p).Msg("page fetch failed; keeping partial results")
			break
		}
		recs := s.parsePage(ctx, body)
		log.Debug().Int("page", p).Int("records", len(recs)).Msg("page parsed")
		if len(recs) == 0 && p > 1 {
			// Likely ran past the last page.
			break
		}
		all = append(all, recs...)
		if p < pages {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return record.Dedup(all)
			}
		}
	}
	// Cross-page dedup preserves the first-seen order.
	return record.Dedup(all)
}

// ParsePage extracts the records of one page of search-result markup.
// Partial or empty markup yields an empty list, never an error.
func ParsePage(markup string) []record.Record {
	var s Searcher
	return s.parsePage(context.Background(), markup)
}

func (s *Searcher) parsePage(ctx context.Context, markup string) []record.Record {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	var recs []record.Record
	for _, block := range extract.Blocks(doc) {
		rec, ok := extract.RecordFromBlock(block)
		if !ok {
			continue
		}
		if s.Completer != nil && (record.Unresolved(rec.Company) || record.Unresolved(rec.Location)) {
			rec = s.Completer.Complete(ctx, rec, extract.Clean(block.Text()))
		}
		recs = append(recs, rec)
	}
	return record.Dedup(recs)
}
