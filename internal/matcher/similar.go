package matcher

import (
	"strings"

	"fjacquet/txn-categorizer/internal/similarity"
	"fjacquet/txn-categorizer/internal/textutils"
)

// Similar reports whether a and b plausibly name the same merchant, for
// applying one re-categorization to look-alike transactions. Texts whose
// cleaned form is shorter than minLength never match; a minLength of zero or
// less uses DefaultSimilarMinLength.
func (m *Matcher) Similar(a, b string, minLength int) bool {
	if minLength <= 0 {
		minLength = DefaultSimilarMinLength
	}

	cleanA := []rune(textutils.StripSpaces(textutils.CleanBankText(a)))
	cleanB := []rune(textutils.StripSpaces(textutils.CleanBankText(b)))
	if len(cleanA) < minLength || len(cleanB) < minLength {
		return false
	}

	sa, sb := string(cleanA), string(cleanB)
	if strings.Contains(sa, sb) || strings.Contains(sb, sa) {
		return true
	}

	rawA := strings.ToLower(textutils.StripSpaces(a))
	rawB := strings.ToLower(textutils.StripSpaces(b))
	if len([]rune(rawA)) >= minLength && len([]rune(rawB)) >= minLength &&
		(strings.Contains(rawA, rawB) || strings.Contains(rawB, rawA)) {
		return true
	}

	shorter, longer := cleanA, cleanB
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if similarity.JaroWinkler(string(shorter), string(longer)) >= m.threshold {
		return true
	}
	if len(longer)-len(shorter) > windowSlack {
		target := string(shorter)
		for i := 0; i+len(shorter) <= len(longer); i++ {
			if similarity.JaroWinkler(string(longer[i:i+len(shorter)]), target) >= m.threshold {
				return true
			}
		}
	}
	return false
}
