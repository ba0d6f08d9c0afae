// Package patterns holds the category trigger phrase database and the
// specificity-ordered index built from it.
package patterns

import (
	"slices"
	"strings"
)

// CategoryPatterns is one category with its trigger phrases, in insertion order.
type CategoryPatterns struct {
	Category string   `yaml:"name" json:"name"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// Database is an ordered mapping from category to trigger phrases.
// It is not safe for concurrent mutation; owners must serialize Add calls.
type Database struct {
	categories []CategoryPatterns
}

// NewDatabase returns a database holding a deep copy of entries.
// Entries for a category that appears more than once are merged.
func NewDatabase(entries []CategoryPatterns) *Database {
	db := &Database{}
	for _, e := range entries {
		db.ensure(e.Category)
		for _, p := range e.Patterns {
			db.Add(e.Category, p)
		}
	}
	return db
}

// DefaultDatabase returns a fresh copy of the built-in database.
func DefaultDatabase() *Database {
	return NewDatabase(defaultPatterns)
}

// Categories returns category names in database order.
func (d *Database) Categories() []string {
	names := make([]string, 0, len(d.categories))
	for _, c := range d.categories {
		names = append(names, c.Category)
	}
	return names
}

// Patterns returns a copy of the phrases registered for category, or nil when
// the category is unknown.
func (d *Database) Patterns(category string) []string {
	if i := d.indexOf(category); i >= 0 {
		return slices.Clone(d.categories[i].Patterns)
	}
	return nil
}

// Entries returns a deep copy of the database content.
func (d *Database) Entries() []CategoryPatterns {
	out := make([]CategoryPatterns, 0, len(d.categories))
	for _, c := range d.categories {
		out = append(out, CategoryPatterns{Category: c.Category, Patterns: slices.Clone(c.Patterns)})
	}
	return out
}

// Add appends pattern to category unless it is already present, creating the
// category at the end of the database when needed. Patterns are stored
// lowercased and trimmed. It reports whether the database changed.
func (d *Database) Add(category, pattern string) bool {
	pattern = normalize(pattern)
	if pattern == "" {
		return false
	}
	i := d.ensure(category)
	if slices.Contains(d.categories[i].Patterns, pattern) {
		return false
	}
	d.categories[i].Patterns = append(d.categories[i].Patterns, pattern)
	return true
}

// Len returns the total number of patterns across all categories.
func (d *Database) Len() int {
	n := 0
	for _, c := range d.categories {
		n += len(c.Patterns)
	}
	return n
}

func (d *Database) ensure(category string) int {
	if i := d.indexOf(category); i >= 0 {
		return i
	}
	d.categories = append(d.categories, CategoryPatterns{Category: category, Patterns: []string{}})
	return len(d.categories) - 1
}

func (d *Database) indexOf(category string) int {
	return slices.IndexFunc(d.categories, func(c CategoryPatterns) bool {
		return c.Category == category
	})
}

func normalize(pattern string) string {
	return strings.ToLower(strings.TrimSpace(pattern))
}
