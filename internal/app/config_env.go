package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("JOBSIFT_USER_AGENT")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = os.Getenv("JOBSIFT_OUT_DIR")
	}
}
