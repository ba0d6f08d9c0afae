// Package currencyutils parses amounts as they appear in bank statement exports.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// currency symbols and codes, and all whitespace
	currencyNoiseRe = regexp.MustCompile(`(?i)(?:INR|Rs\.?|CHF|EUR|USD|[€$£¥₹\s])`)

	// a trailing debit/credit marker, as in "1,250.00 Dr"
	drCrSuffixRe = regexp.MustCompile(`(?i)\s*(dr|cr)\.?\s*$`)
)

// ParseAmount parses an amount string. Empty input is zero. Debit markers
// ("Dr" suffix, parentheses or a leading minus) give a negative amount.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, nil
	}

	negative := false
	if m := drCrSuffixRe.FindStringSubmatch(s); m != nil {
		negative = strings.EqualFold(m[1], "dr")
		s = s[:len(s)-len(m[0])]
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	amount, err := decimal.NewFromString(StandardizeAmount(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if negative {
		amount = amount.Abs().Neg()
	}
	return amount, nil
}

// StandardizeAmount converts an amount to a form decimal.NewFromString accepts.
// Handles "₹1,25,000.50", "$1,234.56", "1.234,56", "1'234.56" and "1234,56".
func StandardizeAmount(amountStr string) string {
	s := currencyNoiseRe.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastDot < lastComma:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56 and 1,25,000.50
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0 && len(s)-lastComma-1 <= 2 && strings.Count(s, ",") == 1:
		// 1234,56
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0:
		// 1,234 and 1,25,000
		s = strings.ReplaceAll(s, ",", "")
	}
	return s
}
