package textutils

import (
	"regexp"
	"strings"
)

var (
	// narrations such as "UPI/DR/4123.../SWIGGY/YESB/swiggy@ybl/Payment"
	// or "NEFT-HDFC0001234-ACME PAYROLL-..."
	narrationPrefixRe = regexp.MustCompile(`(?i)^(?:UPI|NEFT|IMPS|RTGS)([/\-])`)

	ifscRe = regexp.MustCompile(`(?i)^[a-z]{4}0[a-z0-9]{6}$`)
)

var narrationNoise = map[string]bool{
	"dr": true, "cr": true, "p2m": true, "p2a": true, "payment": true, "upi": true,
}

// ExtractMerchant derives a display merchant from a rail narration when a
// statement has no separate merchant column. The first token that is not a
// direction flag, reference number, IFSC code or VPA is returned. Narrations
// that do not start with a known rail are returned trimmed and unchanged.
func ExtractMerchant(description string) string {
	d := strings.TrimSpace(description)
	m := narrationPrefixRe.FindStringSubmatch(d)
	if m == nil {
		return d
	}

	for _, tok := range strings.Split(d[len(m[0]):], m[1]) {
		tok = strings.TrimSpace(tok)
		if isNarrationNoise(tok) {
			continue
		}
		return tok
	}
	return d
}

func isNarrationNoise(tok string) bool {
	if tok == "" || narrationNoise[strings.ToLower(tok)] {
		return true
	}
	if strings.Contains(tok, "@") || ifscRe.MatchString(tok) {
		return true
	}
	digits := 0
	for _, r := range tok {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 4
}
