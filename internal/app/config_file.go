package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// duration wraps time.Duration so YAML values like "500ms" or "10s" parse.
// Bare integers are taken as nanoseconds for compatibility.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		*d = duration(v)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("parse duration: %w", err)
	}
	*d = duration(n)
	return nil
}

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flag groups.
type FileConfig struct {
	Query    string   `yaml:"query"`
	Location string   `yaml:"location"`
	Pages    int      `yaml:"pages"`
	Delay    duration `yaml:"delay"`

	Fetch struct {
		UserAgent string   `yaml:"ua"`
		Timeout   duration `yaml:"timeout"`
		Attempts  int      `yaml:"attempts"`
	} `yaml:"fetch"`

	Links struct {
		Check       bool     `yaml:"check"`
		Timeout     duration `yaml:"timeout"`
		Concurrency int      `yaml:"concurrency"`
	} `yaml:"links"`

	Output struct {
		Dir  string `yaml:"dir"`
		Base string `yaml:"base"`
		PDF  bool   `yaml:"pdf"`
	} `yaml:"output"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

// ApplyFileToConfig fills unset cfg fields from the file. Flags and env take
// precedence over the file; the file takes precedence over defaults.
func ApplyFileToConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.Query == "" {
		cfg.Query = fc.Query
	}
	if cfg.Location == "" {
		cfg.Location = fc.Location
	}
	if cfg.Pages == 0 {
		cfg.Pages = fc.Pages
	}
	if cfg.PageDelay == 0 {
		cfg.PageDelay = time.Duration(fc.Delay)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = time.Duration(fc.Fetch.Timeout)
	}
	if cfg.FetchAttempts == 0 {
		cfg.FetchAttempts = fc.Fetch.Attempts
	}
	if !cfg.CheckLinks {
		cfg.CheckLinks = fc.Links.Check
	}
	if cfg.LinkTimeout == 0 {
		cfg.LinkTimeout = time.Duration(fc.Links.Timeout)
	}
	if cfg.LinkConcurrency == 0 {
		cfg.LinkConcurrency = fc.Links.Concurrency
	}
	if cfg.OutDir == "" {
		cfg.OutDir = fc.Output.Dir
	}
	if cfg.BaseName == "" {
		cfg.BaseName = fc.Output.Base
	}
	if !cfg.EnablePDF {
		cfg.EnablePDF = fc.Output.PDF
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
