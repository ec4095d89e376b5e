package nlquery

import "strconv"

// cardinals maps the number words accepted in quantity phrases.
var cardinals = map[string]int{
	"zero":      0,
	"single":    1,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
}

// parseCardinal converts a digit string or a cardinal number word to an int.
func parseCardinal(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return n, true
	}
	n, ok := cardinals[token]
	return n, ok
}
