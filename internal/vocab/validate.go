package vocab

import (
	"fmt"
	"strings"
)

// validateVerbs returns a combined error describing every problem found,
// or nil if the verbs form a usable catalog.
func validateVerbs(verbs []Verb) error {
	var errs []string

	ids := make(map[int]bool, len(verbs))
	english := make(map[string]int, len(verbs))
	spanish := make(map[string]int, len(verbs))
	populated := make(map[Category]bool)

	for _, v := range verbs {
		if ids[v.ID] {
			errs = append(errs, fmt.Sprintf("duplicate verb ID: %d", v.ID))
		}
		ids[v.ID] = true

		if strings.TrimSpace(v.English) == "" || strings.TrimSpace(v.Spanish) == "" {
			errs = append(errs, fmt.Sprintf("verb %d has an empty translation", v.ID))
		}
		if !v.Category.Valid() {
			errs = append(errs, fmt.Sprintf("verb %d has unknown category %q", v.ID, v.Category))
		}
		populated[v.Category] = true

		if prev, ok := english[v.English]; ok {
			errs = append(errs, fmt.Sprintf("verbs %d and %d share English %q", prev, v.ID, v.English))
		}
		english[v.English] = v.ID
		if prev, ok := spanish[v.Spanish]; ok {
			errs = append(errs, fmt.Sprintf("verbs %d and %d share Spanish %q", prev, v.ID, v.Spanish))
		}
		spanish[v.Spanish] = v.ID
	}

	for _, c := range AllCategories() {
		if !populated[c] {
			errs = append(errs, fmt.Sprintf("category %q has no verbs", c))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("verb catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
