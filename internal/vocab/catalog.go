package vocab

import (
	"fmt"
	"slices"
)

// Catalog is an immutable, indexed verb collection.
type Catalog struct {
	verbs      []Verb
	byID       map[int]int
	byCategory map[Category][]Verb
}

// defaultCatalog is built from the seed list at package init.
var defaultCatalog = NewCatalog(seedVerbs)

// Default returns the built-in verb catalog.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog indexes verbs. The slice is copied; later changes to it
// do not affect the catalog.
func NewCatalog(verbs []Verb) *Catalog {
	c := &Catalog{
		verbs:      slices.Clone(verbs),
		byID:       make(map[int]int, len(verbs)),
		byCategory: make(map[Category][]Verb),
	}
	for i, v := range c.verbs {
		c.byID[v.ID] = i
		c.byCategory[v.Category] = append(c.byCategory[v.Category], v)
	}
	return c
}

// All returns every verb in catalog order.
func (c *Catalog) All() []Verb {
	return slices.Clone(c.verbs)
}

// Len returns the number of verbs.
func (c *Catalog) Len() int {
	return len(c.verbs)
}

// ByCategory returns the verbs of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Verb {
	return slices.Clone(c.byCategory[cat])
}

// Get returns a verb by ID.
func (c *Catalog) Get(id int) (Verb, error) {
	i, ok := c.byID[id]
	if !ok {
		return Verb{}, fmt.Errorf("verb not found: %d", id)
	}
	return c.verbs[i], nil
}

// FindEnglish looks a verb up by its English form.
func (c *Catalog) FindEnglish(english string) (Verb, bool) {
	for _, v := range c.verbs {
		if v.English == english {
			return v, true
		}
	}
	return Verb{}, false
}

// Validate runs the structural checks over the catalog.
func (c *Catalog) Validate() error {
	return validateVerbs(c.verbs)
}
