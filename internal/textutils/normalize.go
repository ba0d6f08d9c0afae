// Package textutils provides text cleanup for merchant names and narrations
// mangled by banking and payment rails.
package textutils

import (
	"regexp"
	"strings"
	"unicode"
)

// railPrefixes are stripped (case-insensitively) from the start of a text.
// Only the first matching entry is removed, so more specific prefixes come first.
var railPrefixes = []string{
	"upi/dr/", "upi/cr/", "upi-", "upi/", "upi ",
	"neft-", "neft/", "neft ",
	"imps-", "imps/", "imps ",
	"rtgs-", "rtgs/", "rtgs ",
	"pos-", "pos/", "pos ",
	"ecom-", "ecom/", "ecom ",
	"nach-", "nach/", "ach d-", "ach-", "ach/",
	"ecs-", "ecs/",
	"si-", "si/",
	"bil/", "bbps/", "mmt/",
	"atm wdl-", "atm-", "atw-",
}

var (
	// trailing reference numbers: 6 or more digits, optionally preceded by separators
	trailingRefRe = regexp.MustCompile(`[\s\-/_:#]*\d{6,}\s*$`)

	// trailing VPA-style identifiers such as "swiggy@ybl" or "zepto.payu@hdfcbank"
	trailingIDRe = regexp.MustCompile(`[\s\-/]*[\w.\-]+@[\w.\-]+\s*$`)

	// corporate-entity and service-category words, anywhere in the text
	suffixWordsRe = regexp.MustCompile(`(?i)\b(?:private|pvt|limited|ltd|llp|inc|corp|corporation|technologies|technology|services|service|solutions|enterprises|ventures)\b\.?`)

	// a trailing city code or city name
	trailingCityRe = regexp.MustCompile(`(?i)[\s,\-/]+(?:new delhi|delhi|del|mumbai|bombay|bom|mum|bangalore|bengaluru|blr|chennai|maa|hyderabad|hyd|pune|kolkata|ccu|gurgaon|gurugram|ggn|noida|ind|in)\s*$`)
)

// StripSpaces removes all whitespace, so "ZEPTONO W" compares equal to "zeptonow"
// once lowercased.
func StripSpaces(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// CleanBankText strips payment-rail noise from a merchant name or narration and
// returns it lowercased and trimmed. Steps run in a fixed order, each on the
// previous step's output: rail prefix, trailing reference number, trailing
// identifier@domain, entity suffix words, trailing city, case-fold.
func CleanBankText(text string) string {
	cleaned := stripRailPrefix(text)
	cleaned = trailingRefRe.ReplaceAllString(cleaned, "")
	cleaned = trailingIDRe.ReplaceAllString(cleaned, "")
	cleaned = suffixWordsRe.ReplaceAllString(cleaned, "")
	cleaned = trailingCityRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(strings.ToLower(cleaned))
}

func stripRailPrefix(text string) string {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	for _, prefix := range railPrefixes {
		if len(trimmed) >= len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
			return trimmed[len(prefix):]
		}
	}
	return text
}
