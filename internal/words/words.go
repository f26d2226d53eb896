// internal/words/words.go
//
// Provides the categorized word catalog used by the game engine.
//
// Responsibilities:
//   - Validate and normalize category → words tables (uppercase, A–Z only).
//   - Expose read-only accessors so a catalog can be shared without copying.
//   - Supply the default catalog built from the embedded assets.
//
// Constraints:
//   • Every category has at least one word.
//   • Words are alphabetic ASCII letters only.
//   • Category names are returned in sorted order so seeded selection is stable.
//   • The default catalog is built once (sync.Once).

package words

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/robalobadob/hangman/assets"
)

// Catalog is an immutable mapping from category name to candidate words.
type Catalog struct {
	names []string            // sorted category names (uppercase)
	words map[string][]string // uppercase words keyed by category
}

// ErrEmptyCatalog is returned when a catalog has no categories.
var ErrEmptyCatalog = errors.New("words: catalog is empty")

// NewCatalog validates and normalizes table into a Catalog.
// Category names and words are trimmed and uppercased; duplicates within a
// category are dropped while preserving first-seen order.
func NewCatalog(table map[string][]string) (*Catalog, error) {
	if len(table) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{words: make(map[string][]string, len(table))}
	for name, list := range table {
		key := strings.ToUpper(strings.TrimSpace(name))
		if key == "" {
			return nil, errors.New("words: blank category name")
		}
		if _, dup := c.words[key]; dup {
			return nil, fmt.Errorf("words: duplicate category %q", key)
		}
		seen := make(map[string]struct{}, len(list))
		var out []string
		for _, raw := range list {
			w := strings.ToUpper(strings.TrimSpace(raw))
			if w == "" || !isAlpha(w) {
				return nil, fmt.Errorf("words: category %q: invalid word %q", key, raw)
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("words: category %q has no words", key)
		}
		c.words[key] = out
		c.names = append(c.names, key)
	}
	sort.Strings(c.names)
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for static tables in tests.
func MustCatalog(table map[string][]string) *Catalog {
	c, err := NewCatalog(table)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded category lists.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		table, err := assets.Categories()
		if err != nil {
			defaultErr = fmt.Errorf("words: load embedded lists: %w", err)
			return
		}
		defaultCatalog, defaultErr = NewCatalog(table)
	})
	return defaultCatalog, defaultErr
}

// Categories returns the sorted category names.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.names...)
}

// Words returns a copy of the words for category, or nil if unknown.
func (c *Catalog) Words(category string) []string {
	list, ok := c.words[strings.ToUpper(category)]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// Category returns the category at index i of the sorted names.
func (c *Catalog) Category(i int) string { return c.names[i] }

// Word returns word i of category. Callers pass indices below Len(category).
func (c *Catalog) Word(category string, i int) string { return c.words[category][i] }

// Len returns the number of words in category.
func (c *Catalog) Len(category string) int { return len(c.words[category]) }

// NumCategories returns the number of categories.
func (c *Catalog) NumCategories() int { return len(c.names) }

// Contains reports whether word belongs to category.
func (c *Catalog) Contains(category, word string) bool {
	for _, w := range c.words[strings.ToUpper(category)] {
		if w == strings.ToUpper(word) {
			return true
		}
	}
	return false
}

// Stats returns the word count per category.
func (c *Catalog) Stats() map[string]int {
	out := make(map[string]int, len(c.names))
	for _, n := range c.names {
		out[n] = len(c.words[n])
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
