package quiz

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls question building.
type Config struct {
	// DistractorCount is the number of wrong options per translation question.
	DistractorCount int

	// EnrichProbability is the chance that a verb also gets a
	// fill-in-the-blank question from the Enricher.
	EnrichProbability float64

	// EnrichTimeout bounds a single Enricher call made through
	// BuildQuestions.
	EnrichTimeout time.Duration
}

// DefaultConfig returns the standard question mix.
func DefaultConfig() Config {
	return Config{
		DistractorCount:   MaxOptions - 1,
		EnrichProbability: 0.3,
		EnrichTimeout:     8 * time.Second,
	}
}

// ConfigFromEnv applies VERBS_AI_PROBABILITY and VERBS_AI_TIMEOUT over
// the defaults. Malformed values are reported, not ignored.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("VERBS_AI_PROBABILITY"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("VERBS_AI_PROBABILITY: %w", err)
		}
		cfg.EnrichProbability = p
	}
	if v := os.Getenv("VERBS_AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("VERBS_AI_TIMEOUT: %w", err)
		}
		cfg.EnrichTimeout = d
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.DistractorCount < 0 || c.DistractorCount > MaxOptions-1 {
		return fmt.Errorf("distractor count must be in [0, %d], got %d", MaxOptions-1, c.DistractorCount)
	}
	if c.EnrichProbability < 0 || c.EnrichProbability > 1 {
		return fmt.Errorf("AI question probability must be in [0, 1], got %g", c.EnrichProbability)
	}
	if c.EnrichTimeout <= 0 {
		return fmt.Errorf("AI question timeout must be positive, got %s", c.EnrichTimeout)
	}
	return nil
}
