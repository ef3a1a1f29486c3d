package fillblank

import (
	"slices"
	"strings"
	"testing"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"valid", Item{Sentence: "I ___ fast.", Answer: "run"}, false},
		{"blank sentence", Item{Sentence: " \t", Answer: "run"}, true},
		{"blank answer", Item{Sentence: "I ___ fast.", Answer: "  "}, true},
		{"long sentence", Item{Sentence: strings.Repeat("a", maxSentenceLen+1), Answer: "run"}, true},
		{"long explanation", Item{Sentence: "I ___.", Answer: "run", Explanation: strings.Repeat("b", maxExplanationLen+1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			err := v.Validate(&item, run)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStructuralValidator_Trims(t *testing.T) {
	item := Item{Sentence: "  I ___ fast. ", Answer: " run\n", Explanation: " ok "}
	if err := (&StructuralValidator{}).Validate(&item, run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Sentence != "I ___ fast." || item.Answer != "run" || item.Explanation != "ok" {
		t.Fatalf("not trimmed: %+v", item)
	}
}

func TestBlankValidator(t *testing.T) {
	v := &BlankValidator{}

	tests := []struct {
		name     string
		sentence string
		want     string
		wantErr  bool
	}{
		{"three underscores", "I ___ fast.", "I ___ fast.", false},
		{"long run normalized", "I _____ fast.", "I ___ fast.", false},
		{"two underscores", "She __ home.", "She ___ home.", false},
		{"no blank", "I run fast.", "", true},
		{"single underscore", "I _ fast.", "", true},
		{"two blanks", "I ___ and ___.", "", true},
		{"answer leaked", "I ___ because I run.", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{Sentence: tt.sentence, Answer: "run"}
			err := v.Validate(&item, run)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && item.Sentence != tt.want {
				t.Errorf("sentence = %q, want %q", item.Sentence, tt.want)
			}
		})
	}
}

func TestBlankValidator_AnswerInsideWordAllowed(t *testing.T) {
	item := Item{Sentence: "The runner will ___ today.", Answer: "run"}
	if err := (&BlankValidator{}).Validate(&item, run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptionsValidator(t *testing.T) {
	v := &OptionsValidator{}

	tests := []struct {
		name        string
		distractors []string
		want        []string
		wantErr     bool
	}{
		{"three clean", []string{"eat", "sleep", "read"}, []string{"eat", "sleep", "read"}, false},
		{"trimmed", []string{" eat ", "sleep\n"}, []string{"eat", "sleep"}, false},
		{"drops answer", []string{"Run", "eat"}, []string{"eat"}, false},
		{"drops duplicates", []string{"eat", "EAT", "sleep"}, []string{"eat", "sleep"}, false},
		{"drops empty", []string{"", "  ", "eat"}, []string{"eat"}, false},
		{"caps at three", []string{"eat", "sleep", "read", "write"}, []string{"eat", "sleep", "read"}, false},
		{"none usable", []string{"run", " "}, nil, true},
		{"nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{Sentence: "I ___.", Answer: "run", Distractors: tt.distractors}
			err := v.Validate(&item, run)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(item.Distractors, tt.want) {
				t.Errorf("distractors = %v, want %v", item.Distractors, tt.want)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Validator: "blank", Message: "sentence must contain exactly one blank"}
	if got := err.Error(); got != `validator "blank": sentence must contain exactly one blank` {
		t.Fatalf("Error() = %q", got)
	}
}
