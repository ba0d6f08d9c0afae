// Package rules evaluates user override rules ahead of the built-in patterns.
package rules

import (
	"strings"

	"fjacquet/txn-categorizer/internal/models"
)

// Match returns the first enabled rule whose pattern is a substring of the
// text selected by its match field. Rules are tried in the given order.
func Match(merchant, description string, rules []models.Rule) (models.Rule, bool) {
	for _, rule := range rules {
		if !rule.Enabled || rule.Pattern == "" {
			continue
		}
		if matchesRule(merchant, description, rule) {
			return rule, true
		}
	}
	return models.Rule{}, false
}

// Evaluate returns the category of the first matching rule.
func Evaluate(merchant, description string, rules []models.Rule) (string, bool) {
	rule, ok := Match(merchant, description, rules)
	if !ok {
		return "", false
	}
	return rule.Category, true
}

// Haystack selects the text a rule with the given field is compared against.
// Unknown fields yield an empty string, which no rule pattern can match.
func Haystack(field models.MatchField, merchant, description string) string {
	switch field {
	case models.MatchFieldMerchant:
		return merchant
	case models.MatchFieldDescription:
		return description
	case models.MatchFieldAny:
		return merchant + " " + description
	default:
		return ""
	}
}

func matchesRule(merchant, description string, rule models.Rule) bool {
	haystack := Haystack(rule.MatchField, merchant, description)
	needle := rule.Pattern
	if !rule.CaseSensitive {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}
	return strings.Contains(haystack, needle)
}
