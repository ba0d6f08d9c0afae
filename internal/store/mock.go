package store

import (
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/patterns"
)

// MockStore is an in-memory Store for testing.
type MockStore struct {
	Patterns []patterns.CategoryPatterns
	Rules    []models.Rule
	Saved    [][]patterns.CategoryPatterns

	// Error flags for testing error conditions
	LoadPatternsError error
	SavePatternsError error
	LoadRulesError    error
}

// LoadCustomPatterns returns the mock patterns.
func (m *MockStore) LoadCustomPatterns() ([]patterns.CategoryPatterns, error) {
	if m.LoadPatternsError != nil {
		return nil, m.LoadPatternsError
	}
	return m.Patterns, nil
}

// SaveCustomPatterns records the saved entries.
func (m *MockStore) SaveCustomPatterns(entries []patterns.CategoryPatterns) error {
	if m.SavePatternsError != nil {
		return m.SavePatternsError
	}
	m.Saved = append(m.Saved, entries)
	m.Patterns = entries
	return nil
}

// LoadRules returns the mock rules.
func (m *MockStore) LoadRules() ([]models.Rule, error) {
	if m.LoadRulesError != nil {
		return nil, m.LoadRulesError
	}
	return m.Rules, nil
}

var (
	_ Store = (*PatternStore)(nil)
	_ Store = (*MockStore)(nil)
)
