package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/extract"
	"github.com/jobsift/jobsift/internal/liveness"
	"github.com/jobsift/jobsift/internal/record"
	"github.com/jobsift/jobsift/internal/render"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		input      string
		keywords   string
		sentences  bool
		checkLinks bool
		format     string
		verbose    bool
	)
	flag.StringVar(&input, "input", "", "Path to a local .txt, .md, .html or .htm file")
	flag.StringVar(&keywords, "keywords", "", "Comma-separated keywords for cell-window extraction")
	flag.BoolVar(&sentences, "sentences", false, "Print matching sentences per keyword instead of records")
	flag.BoolVar(&checkLinks, "check-links", false, "Drop records whose link fails a liveness probe")
	flag.StringVar(&format, "format", "table", "Output format: table, tsv, csv or md")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "jobgrep: an input file is required (-input)")
		flag.Usage()
		os.Exit(2)
	}
	switch ext := strings.ToLower(filepath.Ext(input)); ext {
	case ".txt", ".md", ".html", ".htm":
	default:
		log.Error().Str("path", input).Msg("unsupported input type; expected .txt, .md, .html or .htm")
		os.Exit(2)
	}

	b, err := os.ReadFile(input)
	if err != nil {
		log.Error().Err(err).Str("path", input).Msg("read input")
		os.Exit(1)
	}
	doc := string(b)

	kws := splitKeywords(keywords)

	if sentences {
		if len(kws) == 0 {
			fmt.Fprintln(os.Stderr, "jobgrep: -sentences requires -keywords")
			os.Exit(2)
		}
		printSentences(doc, kws)
		return
	}

	records := extractRecords(doc, kws)
	log.Debug().Int("records", len(records)).Msg("extracted")

	if checkLinks && len(records) > 0 {
		ctx := context.Background()
		before := len(records)
		records = (&liveness.Checker{}).FilterLive(ctx, records)
		log.Info().Int("alive", len(records)).Int("dropped", before-len(records)).Msg("link check complete")
	}

	out, err := renderAs(records, format)
	if err != nil {
		log.Error().Err(err).Msg("render")
		os.Exit(2)
	}
	fmt.Print(out)
}

func splitKeywords(s string) []string {
	var out []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// extractRecords picks the extraction mode by keyword presence. The
// keyword-filtered cell path is sorted by (company, role, location); the
// labeled plain-text path keeps first-seen order.
func extractRecords(doc string, keywords []string) []record.Record {
	if len(keywords) > 0 {
		recs := extract.RecordsFromCells(extract.Cells(doc), keywords)
		return record.Sort(record.Dedup(recs))
	}
	return record.Dedup(labeledRecords(doc))
}

// labeledRecords runs the plain-text strategies over blank-line separated
// blocks. HTML input is flattened to visible text first so labeled lines
// inside markup still parse.
func labeledRecords(doc string) []record.Record {
	if strings.Contains(doc, "<") {
		if parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc)); err == nil {
			doc = parsed.Text()
		}
	}
	var out []record.Record
	for _, block := range extract.PlainBlocks(doc) {
		if rec, ok := extract.ParseBlock(block); ok {
			out = append(out, rec)
		}
	}
	return out
}

func printSentences(doc string, keywords []string) {
	all := extract.SplitSentences(doc)
	for _, kw := range keywords {
		matches := extract.KeywordSentences(all, kw)
		fmt.Printf("%s (%d)\n", kw, len(matches))
		for _, s := range matches {
			fmt.Printf("  %s\n", s)
		}
	}
}

func renderAs(records []record.Record, format string) (string, error) {
	switch strings.ToLower(format) {
	case "table":
		return render.Table(records), nil
	case "tsv":
		return render.TSV(records), nil
	case "csv":
		return render.CSV(records), nil
	case "md":
		return render.Markdown(records), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
