package session

import "fmt"

// Config holds the session rules.
type Config struct {
	// VerbsPerSession caps how many verbs of the category are drawn.
	VerbsPerSession int

	MaxHearts    int
	XPPerCorrect int

	// XPPerLevel is the XP needed for each level above 1.
	XPPerLevel int

	// MaxConcurrentEnrich bounds in-flight AI requests while preparing.
	MaxConcurrentEnrich int
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		VerbsPerSession:     5,
		MaxHearts:           3,
		XPPerCorrect:        10,
		XPPerLevel:          100,
		MaxConcurrentEnrich: 5,
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.VerbsPerSession < 1:
		return fmt.Errorf("verbs per session must be at least 1, got %d", c.VerbsPerSession)
	case c.MaxHearts < 1:
		return fmt.Errorf("max hearts must be at least 1, got %d", c.MaxHearts)
	case c.XPPerCorrect < 0:
		return fmt.Errorf("XP per correct answer must not be negative, got %d", c.XPPerCorrect)
	case c.XPPerLevel < 1:
		return fmt.Errorf("XP per level must be at least 1, got %d", c.XPPerLevel)
	case c.MaxConcurrentEnrich < 1:
		return fmt.Errorf("max concurrent AI requests must be at least 1, got %d", c.MaxConcurrentEnrich)
	}
	return nil
}
