package fillblank

// Config controls the Generator.
type Config struct {
	// Validators run in order; the first failure discards the item.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// Suggestions is how many catalog verbs are offered to the model as
	// distractor ideas. Zero disables them.
	Suggestions int
}

// DefaultConfig returns the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&BlankValidator{},
			&OptionsValidator{},
		},
		MaxTokens:   400,
		Temperature: 0.8,
		Suggestions: 6,
	}
}
