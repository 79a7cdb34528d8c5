package app

import "time"

// Config holds runtime configuration for a scrape run.
type Config struct {
	Query    string
	Location string
	Pages    int
	// PageDelay spaces sequential page fetches. Zero means the scrape
	// package default.
	PageDelay time.Duration

	// Fetching
	UserAgent     string
	FetchTimeout  time.Duration
	FetchAttempts int

	// Link liveness
	CheckLinks      bool
	LinkTimeout     time.Duration
	LinkConcurrency int

	// Output
	OutDir    string
	BaseName  string
	EnablePDF bool

	// Optional LLM field completion (OpenAI-compatible endpoint).
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	Verbose bool
}
