package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobsift/jobsift/internal/record"
)

// fieldStrategy resolves one field from a candidate fragment. Strategies are
// tried in order until one returns a non-empty value, so each entry can be
// more permissive than the one before it.
type fieldStrategy func(*goquery.Selection) string

var (
	companyStrategies  = []fieldStrategy{companyByClass, companyBySecondAnchor}
	locationStrategies = []fieldStrategy{locationByClass, locationByProvince}
)

// RecordFromBlock extracts one record from a structural fragment. A fragment
// whose title cannot be resolved yields no record; unresolved company,
// location or link default to the sentinel.
func RecordFromBlock(s *goquery.Selection) (record.Record, bool) {
	href, title := linkAndTitle(s)
	if title == "" {
		return record.Record{}, false
	}
	return record.Record{
		Company:  record.OrSentinel(firstOf(s, companyStrategies)),
		Role:     title,
		Location: record.OrSentinel(firstOf(s, locationStrategies)),
		Link:     record.OrSentinel(href),
	}, true
}

func firstOf(s *goquery.Selection, strategies []fieldStrategy) string {
	for _, try := range strategies {
		if v := try(s); v != "" {
			return v
		}
	}
	return ""
}

// linkAndTitle prefers an anchor whose class signals a title/job/posting
// role and falls back to the first anchor of any kind.
func linkAndTitle(s *goquery.Selection) (href, title string) {
	var anchor *goquery.Selection
	s.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		class, ok := a.Attr("class")
		if ok && classHasAny(class, "title", "job", "posting") {
			anchor = a
			return false
		}
		return true
	})
	if anchor == nil {
		first := s.Find("a").First()
		if first.Length() == 0 {
			return "", ""
		}
		anchor = first
	}
	raw, _ := anchor.Attr("href")
	return Clean(raw), Clean(anchor.Text())
}

// companyByClass tries explicit company/employer containers, most specific
// tag first.
func companyByClass(s *goquery.Selection) string {
	for _, tag := range []string{"div", "span", "a"} {
		if v := textByClass(s, tag, "company", "employer"); v != "" {
			return v
		}
	}
	return ""
}

// companyBySecondAnchor is a positional fallback tied to the assumed source
// layout: when at least two anchors exist, the second one is often the
// employer link.
func companyBySecondAnchor(s *goquery.Selection) string {
	anchors := s.Find("a")
	if anchors.Length() < 2 {
		return ""
	}
	return Clean(anchors.Eq(1).Text())
}

func locationByClass(s *goquery.Selection) string {
	for _, tag := range []string{"div", "span"} {
		if v := textByClass(s, tag, "location", "city", "cities"); v != "" {
			return v
		}
	}
	return ""
}

var provinceRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:[,\s]+(?:ON|QC|BC|AB|MB|SK|NS|NB|NL|PE|YT|NT|NU)))\b`)

// locationByProvince is a fallback that recognizes a capitalized word
// followed by a Canadian province abbreviation in the fragment's plain text.
func locationByProvince(s *goquery.Selection) string {
	if m := provinceRe.FindStringSubmatch(Clean(s.Text())); m != nil {
		return Clean(m[1])
	}
	return ""
}

func textByClass(s *goquery.Selection, tag string, keywords ...string) string {
	var found string
	s.Find(tag).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, ok := el.Attr("class")
		if ok && classHasAny(class, keywords...) {
			found = Clean(el.Text())
			return false
		}
		return true
	})
	return found
}
