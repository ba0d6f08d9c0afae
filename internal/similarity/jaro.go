// Package similarity implements the Jaro and Jaro-Winkler string metrics used
// to decide whether two merchant strings name the same merchant.
//
// Both functions compare runes, not bytes. JaroWinkler is positional: the
// prefix bonus is measured on s1 against s2, so callers should keep argument
// order stable.
package similarity

// winklerPrefixLimit is the maximum number of leading characters rewarded by
// the Winkler boost, and winklerScale the weight of each.
const (
	winklerPrefixLimit = 4
	winklerScale       = 0.1
)

// Jaro returns the Jaro similarity of s1 and s2 in [0,1].
// Identical strings score 1.0; an empty string or zero matches scores 0.0.
func Jaro(s1, s2 string) float64 {
	return jaroRunes([]rune(s1), []rune(s2))
}

// JaroWinkler returns the Jaro score boosted by up to four identical leading
// characters, each adding 0.1 * (1 - jaro).
func JaroWinkler(s1, s2 string) float64 {
	r1, r2 := []rune(s1), []rune(s2)
	jaro := jaroRunes(r1, r2)
	if jaro == 0 {
		return 0
	}

	prefix := 0
	for prefix < winklerPrefixLimit && prefix < len(r1) && prefix < len(r2) && r1[prefix] == r2[prefix] {
		prefix++
	}

	return jaro + float64(prefix)*winklerScale*(1-jaro)
}

func jaroRunes(s1, s2 []rune) float64 {
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}
	if equalRunes(s1, s2) {
		return 1
	}

	window := max(len(s1), len(s2))/2 - 1
	if window < 0 {
		window = 0
	}

	s1Matched := make([]bool, len(s1))
	s2Matched := make([]bool, len(s2))

	matches := 0
	for i := range s1 {
		start := max(0, i-window)
		end := min(len(s2), i+window+1)
		for j := start; j < end; j++ {
			if s2Matched[j] || s1[i] != s2[j] {
				continue
			}
			s1Matched[i] = true
			s2Matched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// count matched characters that appear in a different order
	transpositions := 0
	k := 0
	for i := range s1 {
		if !s1Matched[i] {
			continue
		}
		for !s2Matched[k] {
			k++
		}
		if s1[i] != s2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(len(s1)) + m/float64(len(s2)) + (m-float64(transpositions)/2)/m) / 3
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
