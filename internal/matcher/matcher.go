// Package matcher decides whether transaction text triggers a pattern, first by
// exact containment and then by windowed Jaro-Winkler similarity for text that
// a bank has truncated or split with stray spaces.
package matcher

import (
	"strings"

	"fjacquet/txn-categorizer/internal/similarity"
	"fjacquet/txn-categorizer/internal/textutils"
)

const (
	// DefaultThreshold is the minimum Jaro-Winkler score accepted as a fuzzy match.
	DefaultThreshold = 0.88
	// DefaultMinLength is the shortest pattern (whitespace removed) eligible for fuzzy matching.
	DefaultMinLength = 4
	// DefaultSimilarMinLength is the shortest cleaned text compared by Similar.
	DefaultSimilarMinLength = 3

	// a source this much longer than the pattern is scanned window by window
	windowSlack = 4
)

// Kind says how a pattern matched.
type Kind int

const (
	None Kind = iota
	Exact
	Fuzzy
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Fuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Match is the outcome of comparing a text against a pattern.
// Score is 1 for exact matches and the best Jaro-Winkler score otherwise.
type Match struct {
	Kind  Kind
	Score float64
}

// Matched reports whether the pattern was found.
func (m Match) Matched() bool {
	return m.Kind != None
}

// Matcher holds the fuzzy matching tunables. The zero value is not usable; use New.
type Matcher struct {
	threshold float64
	minLength int
}

// New returns a Matcher. Non-positive arguments fall back to the defaults.
func New(threshold float64, minLength int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Matcher{threshold: threshold, minLength: minLength}
}

// Default returns a Matcher with the default tunables.
func Default() *Matcher {
	return New(DefaultThreshold, DefaultMinLength)
}

// Threshold returns the fuzzy acceptance threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// FuzzyMatch reports whether text triggers pattern using the default tunables.
func FuzzyMatch(text, pattern string) bool {
	return Default().Matches(text, pattern)
}

// Matches reports whether text triggers pattern.
func (m *Matcher) Matches(text, pattern string) bool {
	return m.Match(text, pattern).Matched()
}

// Match compares text against pattern. The steps short-circuit in order:
// containment in the space-stripped text, containment in the space-stripped
// bank-cleaned text, then a sliding Jaro-Winkler comparison for patterns of at
// least the minimum length.
func (m *Matcher) Match(text, pattern string) Match {
	needle := strings.ToLower(textutils.StripSpaces(pattern))
	if needle == "" {
		return Match{}
	}

	raw := strings.ToLower(textutils.StripSpaces(text))
	if strings.Contains(raw, needle) {
		return Match{Kind: Exact, Score: 1}
	}

	cleaned := textutils.StripSpaces(textutils.CleanBankText(text))
	if strings.Contains(cleaned, needle) {
		return Match{Kind: Exact, Score: 1}
	}

	needleRunes := []rune(needle)
	if len(needleRunes) < m.minLength {
		return Match{}
	}

	source := cleaned
	if source == "" {
		source = raw
	}

	if score := bestWindowScore([]rune(source), needleRunes); score >= m.threshold {
		return Match{Kind: Fuzzy, Score: score}
	}
	return Match{}
}

// bestWindowScore slides a window of len(needle) runes across source and returns
// the best Jaro-Winkler score of window against needle. Sources shorter than the
// needle plus the slack are compared whole.
func bestWindowScore(source, needle []rune) float64 {
	if len(source) < len(needle)+windowSlack {
		return similarity.JaroWinkler(string(source), string(needle))
	}
	pattern := string(needle)
	best := 0.0
	for i := 0; i+len(needle) <= len(source); i++ {
		score := similarity.JaroWinkler(string(source[i:i+len(needle)]), pattern)
		if score > best {
			best = score
			if best == 1 {
				break
			}
		}
	}
	return best
}
