package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jobsift/jobsift/internal/assist"
	"github.com/jobsift/jobsift/internal/fetch"
	"github.com/jobsift/jobsift/internal/liveness"
	"github.com/jobsift/jobsift/internal/record"
	"github.com/jobsift/jobsift/internal/render"
	"github.com/jobsift/jobsift/internal/scrape"
)

const defaultFetchTimeout = 8 * time.Second

// previewLines caps the table preview printed to stdout before the
// artifacts are written.
const previewLines = 6

// App wires the pipeline: paginated search, extraction, optional liveness
// filtering, rendering, artifact writing.
type App struct {
	cfg      Config
	searcher *scrape.Searcher
	checker  *liveness.Checker
}

func New(cfg Config) *App {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	attempts := cfg.FetchAttempts
	if attempts <= 0 {
		attempts = 2
	}
	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       attempts,
		PerRequestTimeout: timeout,
	}
	searcher := &scrape.Searcher{Client: client, Delay: cfg.PageDelay}

	if strings.TrimSpace(cfg.LLMModel) != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		searcher.Completer = &assist.Completer{
			Client: openai.NewClientWithConfig(transportCfg),
			Model:  cfg.LLMModel,
		}
		log.Info().Str("model", cfg.LLMModel).Msg("LLM field completion enabled")
	}

	return &App{
		cfg:      cfg,
		searcher: searcher,
		checker: &liveness.Checker{
			UserAgent:   cfg.UserAgent,
			Timeout:     cfg.LinkTimeout,
			Concurrency: cfg.LinkConcurrency,
		},
	}
}

func (a *App) Run(ctx context.Context) error {
	records := a.searcher.Search(ctx, a.cfg.Query, a.cfg.Location, a.cfg.Pages)
	log.Info().Int("records", len(records)).Msg("extraction complete")
	if len(records) == 0 {
		log.Warn().Msg("no listings extracted; writing empty artifacts")
	}

	if a.cfg.CheckLinks && len(records) > 0 {
		before := len(records)
		records = a.checker.FilterLive(ctx, records)
		log.Info().Int("alive", len(records)).Int("dropped", before-len(records)).Msg("link check complete")
	}

	printPreview(records)

	paths, err := a.saveArtifacts(records)
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}
	for _, p := range paths {
		log.Info().Str("path", p).Msg("saved")
	}
	return nil
}

func printPreview(records []record.Record) {
	lines := strings.Split(render.Table(records), "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	fmt.Println(strings.Join(lines, "\n"))
}
