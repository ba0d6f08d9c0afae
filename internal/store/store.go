// Package store loads and saves user patterns and rules as YAML files.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/txn-categorizer/internal/fileutils"
	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/patterns"
	"fjacquet/txn-categorizer/internal/validation"

	"gopkg.in/yaml.v3"
)

// Store is the persistence contract used by the CLI.
type Store interface {
	LoadCustomPatterns() ([]patterns.CategoryPatterns, error)
	SaveCustomPatterns(entries []patterns.CategoryPatterns) error
	LoadRules() ([]models.Rule, error)
}

// patternsDocument is the on-disk layout of the custom patterns file.
type patternsDocument struct {
	Categories []patterns.CategoryPatterns `yaml:"categories"`
}

// ruleDocument mirrors models.Rule with optional fields so omitted values
// can be defaulted.
type ruleDocument struct {
	Pattern       string            `yaml:"pattern"`
	MatchField    models.MatchField `yaml:"match_field"`
	Category      string            `yaml:"category"`
	CaseSensitive bool              `yaml:"case_sensitive"`
	Enabled       *bool             `yaml:"enabled"`
}

// PatternStore manages the custom patterns and rules files.
type PatternStore struct {
	PatternsFile string
	RulesFile    string
	logger       logging.Logger
}

// NewPatternStore creates a store for the given files. Relative names are
// looked up with FindConfigFile.
func NewPatternStore(patternsFile, rulesFile string, logger logging.Logger) *PatternStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PatternStore{
		PatternsFile: patternsFile,
		RulesFile:    rulesFile,
		logger:       logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *PatternStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return fileutils.FirstExisting(filename)
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".txn-categorizer", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".txn-categorizer", filename))
	}
	return fileutils.FirstExisting(locations...)
}

// LoadCustomPatterns reads the custom patterns file. A missing file yields
// no patterns and no error.
func (s *PatternStore) LoadCustomPatterns() ([]patterns.CategoryPatterns, error) {
	data, path, err := s.read(s.PatternsFile, "patterns.yaml")
	if err != nil || data == nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("error parsing patterns file %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var entries []patterns.CategoryPatterns
	switch node := root.Content[0]; node.Kind {
	case yaml.MappingNode:
		var doc patternsDocument
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error parsing patterns file %s: %w", path, err)
		}
		entries = doc.Categories
	case yaml.SequenceNode:
		// files written as a bare list without the top-level key
		if err := node.Decode(&entries); err != nil {
			return nil, fmt.Errorf("error parsing patterns file %s: %w", path, err)
		}
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return nil, fmt.Errorf("error parsing patterns file %s: expected a mapping or a list", path)
		}
	default:
		return nil, fmt.Errorf("error parsing patterns file %s: expected a mapping or a list", path)
	}

	s.logger.Debug("Loaded custom patterns",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(entries)})
	return entries, nil
}

// SaveCustomPatterns writes entries to the custom patterns file, creating its
// directory when needed.
func (s *PatternStore) SaveCustomPatterns(entries []patterns.CategoryPatterns) error {
	path := s.writePath(s.PatternsFile, "patterns.yaml")

	data, err := yaml.Marshal(patternsDocument{Categories: entries})
	if err != nil {
		return fmt.Errorf("error marshaling custom patterns: %w", err)
	}
	if err := fileutils.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing custom patterns: %w", err)
	}

	s.logger.Debug("Saved custom patterns",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(entries)})
	return nil
}

// LoadRules reads the ordered rule list. Rules without an enabled flag are
// enabled and rules without a match field compare against both fields.
// A missing file yields no rules and no error.
func (s *PatternStore) LoadRules() ([]models.Rule, error) {
	data, path, err := s.read(s.RulesFile, "rules.yaml")
	if err != nil || data == nil {
		return nil, err
	}

	var doc struct {
		Rules []ruleDocument `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	rules := make([]models.Rule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		rule := models.Rule{
			Pattern:       r.Pattern,
			MatchField:    r.MatchField,
			Category:      r.Category,
			CaseSensitive: r.CaseSensitive,
			Enabled:       r.Enabled == nil || *r.Enabled,
		}
		if rule.MatchField == "" {
			rule.MatchField = models.MatchFieldAny
		}
		if !knownMatchField(rule.MatchField) {
			s.logger.Warn("Rule has an unknown match field and will never match",
				logging.Field{Key: logging.FieldPattern, Value: rule.Pattern},
				logging.Field{Key: "match_field", Value: rule.MatchField})
		}
		rules = append(rules, rule)
	}

	s.logger.Debug("Loaded rules",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rules)})
	return rules, nil
}

// read returns the file content, or nil data when the file does not exist.
func (s *PatternStore) read(filename, fallback string) ([]byte, string, error) {
	if filename == "" {
		filename = fallback
	}

	path, err := s.FindConfigFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("Configuration file not found", logging.Field{Key: logging.FieldFile, Value: filename})
		return nil, filename, nil
	}
	if err != nil {
		return nil, filename, fmt.Errorf("error resolving %s: %w", filename, err)
	}

	if info, statErr := os.Stat(path); statErr == nil {
		if permErr := validation.CheckFilePermissions(info.Mode().Perm()); permErr != nil {
			s.logger.WithError(permErr).Warn("Configuration file is readable by other users",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, path, nil
}

// writePath returns the existing location of filename or filename itself.
func (s *PatternStore) writePath(filename, fallback string) string {
	if filename == "" {
		filename = fallback
	}
	if path, err := s.FindConfigFile(filename); err == nil {
		return path
	}
	return filename
}

func knownMatchField(f models.MatchField) bool {
	switch f {
	case models.MatchFieldMerchant, models.MatchFieldDescription, models.MatchFieldAny:
		return true
	}
	return false
}
