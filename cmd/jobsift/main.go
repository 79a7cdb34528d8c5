package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath      string
		query           string
		location        string
		pages           int
		delay           time.Duration
		userAgent       string
		fetchTimeout    time.Duration
		fetchAttempts   int
		checkLinks      bool
		linkTimeout     time.Duration
		linkConcurrency int
		outDir          string
		outBase         string
		enablePDF       bool
		llmBaseURL      string
		llmModel        string
		llmKey          string
		verbose         bool
	)

	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file")
	flag.StringVar(&query, "q", "", "Search keywords, e.g. 'software engineer'")
	flag.StringVar(&location, "l", "", "Location filter, e.g. 'Toronto, ON' (optional)")
	flag.IntVar(&pages, "pages", 0, "Number of result pages to fetch (default 1)")
	flag.DurationVar(&delay, "delay", 0, "Delay between page fetches (default 800ms)")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent (default: a common browser UA)")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Per-request fetch timeout (default 8s)")
	flag.IntVar(&fetchAttempts, "fetch.attempts", 0, "Fetch attempts per page, including the first (default 2)")
	flag.BoolVar(&checkLinks, "check-links", false, "Drop listings whose link fails a liveness probe")
	flag.DurationVar(&linkTimeout, "link.timeout", 0, "Per-probe timeout for the link check (default 8s)")
	flag.IntVar(&linkConcurrency, "link.concurrency", 0, "Link check worker pool width (default 10)")
	flag.StringVar(&outDir, "out.dir", "", "Directory for output artifacts (default: current directory)")
	flag.StringVar(&outBase, "out.base", "", "Artifact base name (default: eluta_<query>_extracted)")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also write a PDF artifact")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for optional field completion")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name; empty disables field completion")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Query:           query,
		Location:        location,
		Pages:           pages,
		PageDelay:       delay,
		UserAgent:       userAgent,
		FetchTimeout:    fetchTimeout,
		FetchAttempts:   fetchAttempts,
		CheckLinks:      checkLinks,
		LinkTimeout:     linkTimeout,
		LinkConcurrency: linkConcurrency,
		OutDir:          outDir,
		BaseName:        outBase,
		EnablePDF:       enablePDF,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		Verbose:         verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(2)
		}
		app.ApplyFileToConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.Query == "" {
		fmt.Fprintln(os.Stderr, "jobsift: a search query is required (-q)")
		flag.Usage()
		os.Exit(2)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
