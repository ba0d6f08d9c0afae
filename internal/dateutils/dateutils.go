// Package dateutils parses the value dates found in bank statement exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date layouts in statement exports
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutIndian   = "02/01/2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutMonth    = "02-Jan-2006"
)

// statementFormats are tried in order. Day-first layouts come before their
// month-first counterparts, so an ambiguous "03/04/2024" reads as 3 April.
var statementFormats = []string{
	DateLayoutIndian,
	DateLayoutUS,
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutEuropean,
	DateLayoutMonth,
	"02-01-2006",
	"01-02-2006",
	"02 Jan 2006",
	"2/1/2006",
	"1/2/2006",
	DateLayoutISO + "T15:04:05Z07:00",
}

var spacesRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return spacesRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDateString parses a statement date. An empty string yields the zero
// time and no error.
func ParseDateString(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, nil
	}

	for _, format := range statementFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// NormalizeDate returns dateStr as an ISO date, or the trimmed input when it
// cannot be parsed.
func NormalizeDate(dateStr string) string {
	t, err := ParseDateString(dateStr)
	if err != nil {
		return strings.TrimSpace(dateStr)
	}
	return ToISODate(t)
}
