package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProbePath   string // hcl files with probe blocks
	ModulesPath string // hcl files with module blocks

	LogFormat string
	LogLevel  string
	Quiet     bool
}

// NewConfig validates a raw Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProbePath == "" {
		return nil, errors.New("ProbePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
