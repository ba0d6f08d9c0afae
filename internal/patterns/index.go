package patterns

import (
	"slices"
	"unicode/utf8"

	"fjacquet/txn-categorizer/internal/textutils"
)

// Entry is one (category, pattern) pair of the flattened index.
type Entry struct {
	Category    string
	Pattern     string
	Specificity int
}

// Index is an immutable, specificity-ordered flattening of a Database.
// Longer patterns come first; equal specificities keep database order.
type Index struct {
	entries []Entry
}

// Specificity is the character count of pattern once whitespace is removed.
func Specificity(pattern string) int {
	return utf8.RuneCountInString(textutils.StripSpaces(pattern))
}

// BuildIndex flattens db into an index.
func BuildIndex(db *Database) *Index {
	entries := make([]Entry, 0, db.Len())
	for _, c := range db.categories {
		for _, p := range c.Patterns {
			entries = append(entries, Entry{Category: c.Category, Pattern: p, Specificity: Specificity(p)})
		}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Specificity - a.Specificity
	})
	return &Index{entries: entries}
}

// Entries returns the index entries in priority order. The slice is shared and
// must not be modified.
func (i *Index) Entries() []Entry {
	return i.entries
}

// Len returns the number of entries.
func (i *Index) Len() int {
	return len(i.entries)
}
