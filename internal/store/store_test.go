package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/patterns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func newTestStore(dir string) *PatternStore {
	return NewPatternStore(filepath.Join(dir, "patterns.yaml"), filepath.Join(dir, "rules.yaml"), logging.NewMockLogger())
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	s := newTestStore(dir)

	file, err := s.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = s.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCustomPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "patterns.yaml"), `categories:
  - name: Dining
    patterns: ["dhaba", "chai point"]
  - name: Hobbies
    patterns:
      - lego store
`)

	got, err := newTestStore(dir).LoadCustomPatterns()
	require.NoError(t, err)
	assert.Equal(t, []patterns.CategoryPatterns{
		{Category: "Dining", Patterns: []string{"dhaba", "chai point"}},
		{Category: "Hobbies", Patterns: []string{"lego store"}},
	}, got)
}

func TestLoadCustomPatterns_BareList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "patterns.yaml"), `- name: Pets
  patterns: ["dog groomer"]
`)

	got, err := newTestStore(dir).LoadCustomPatterns()
	require.NoError(t, err)
	assert.Equal(t, []patterns.CategoryPatterns{{Category: "Pets", Patterns: []string{"dog groomer"}}}, got)
}

func TestLoadCustomPatterns_MissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(dir)

	got, err := s.LoadCustomPatterns()
	assert.NoError(t, err)
	assert.Empty(t, got)

	writeFile(t, filepath.Join(dir, "patterns.yaml"), "categories: [unclosed")
	_, err = s.LoadCustomPatterns()
	assert.Error(t, err)
}

func TestLoadCustomPatterns_EmptyDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty list", "categories: []\n"},
		{"null list", "categories:\n"},
		{"no categories key", "other: value\n"},
		{"comment only", "# nothing yet\n"},
		{"empty file", ""},
		{"explicit null", "~\n"},
		{"empty bare list", "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "patterns.yaml"), tt.content)

			got, err := newTestStore(dir).LoadCustomPatterns()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestLoadCustomPatterns_ScalarDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "patterns.yaml"), "just a string\n")

	_, err := newTestStore(dir).LoadCustomPatterns()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping or a list")
}

func TestSaveCustomPatterns_EmptyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(dir)

	require.NoError(t, s.SaveCustomPatterns(nil))

	got, err := s.LoadCustomPatterns()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveCustomPatterns_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewPatternStore(filepath.Join(dir, "nested", "patterns.yaml"), "", logging.NewMockLogger())
	entries := []patterns.CategoryPatterns{{Category: "Dining", Patterns: []string{"dhaba"}}}

	require.NoError(t, s.SaveCustomPatterns(entries))

	info, err := os.Stat(filepath.Join(dir, "nested", "patterns.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(models.PermissionConfigFile), info.Mode().Perm())

	got, err := s.LoadCustomPatterns()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rules.yaml"), `rules:
  - pattern: swiggy
    match_field: merchant
    category: CustomFood
    enabled: true
  - pattern: ACME
    category: Salary
    case_sensitive: true
  - pattern: old rule
    match_field: description
    category: Travel
    enabled: false
  - pattern: typo
    match_field: merchant_name
    category: Travel
`)
	logger := logging.NewMockLogger()
	s := NewPatternStore("", filepath.Join(dir, "rules.yaml"), logger)

	got, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, []models.Rule{
		{Pattern: "swiggy", MatchField: models.MatchFieldMerchant, Category: "CustomFood", Enabled: true},
		{Pattern: "ACME", MatchField: models.MatchFieldAny, Category: "Salary", CaseSensitive: true, Enabled: true},
		{Pattern: "old rule", MatchField: models.MatchFieldDescription, Category: "Travel", Enabled: false},
		{Pattern: "typo", MatchField: models.MatchField("merchant_name"), Category: "Travel", Enabled: true},
	}, got)
	assert.True(t, logger.HasEntry("WARN", "Rule has an unknown match field and will never match"))
}

func TestLoadRules_MissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(dir)

	got, err := s.LoadRules()
	assert.NoError(t, err)
	assert.Empty(t, got)

	writeFile(t, filepath.Join(dir, "rules.yaml"), "rules: {not: [a list")
	_, err = s.LoadRules()
	assert.Error(t, err)
}

func TestLoadRules_WarnsOnOpenPermissions(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewMockLogger()
	s := NewPatternStore(filepath.Join(dir, "patterns.yaml"), filepath.Join(dir, "rules.yaml"), logger)

	path := filepath.Join(dir, "rules.yaml")
	writeFile(t, path, "rules: []\n")
	require.NoError(t, os.Chmod(path, 0644))

	_, err := s.LoadRules()
	require.NoError(t, err)
	assert.True(t, logger.HasEntry("WARN", "Configuration file is readable by other users"))
}

func TestMockStore(t *testing.T) {
	m := &MockStore{Rules: []models.Rule{{Pattern: "x"}}}
	rules, err := m.LoadRules()
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	require.NoError(t, m.SaveCustomPatterns([]patterns.CategoryPatterns{{Category: "A"}}))
	assert.Len(t, m.Saved, 1)
}
