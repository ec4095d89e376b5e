package nlquery

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// A matcher scans the normalized query for one lexical pattern family and
// feeds contributions into the accumulator. Matchers are independent:
// phrases may appear anywhere in the query, in any order, and a matcher
// finding nothing imposes nothing.
type matcher struct {
	name  string
	match func(query string, acc *accumulator) (bool, error)
}

var matchers = []matcher{
	{name: "palindrome", match: matchPalindrome},
	{name: "word_count", match: matchWordCount},
	{name: "min_length", match: matchMinLength},
	{name: "max_length", match: matchMaxLength},
	{name: "contains_character", match: matchContainsCharacter},
}

var palindromeRe = regexp.MustCompile(`(?:\b(non|not)[\s-]+(?:a\s+)?)?\bpalindrom(?:es?|ic)\b`)

func matchPalindrome(query string, acc *accumulator) (bool, error) {
	matches := palindromeRe.FindAllStringSubmatch(query, -1)
	for _, m := range matches {
		// Group 1 carries the negation, if any.
		if err := acc.setPalindrome(m[1] == ""); err != nil {
			return true, err
		}
	}
	return len(matches) > 0, nil
}

var wordCountRe = regexp.MustCompile(`\b([a-z]+|\d+)[\s-]+words?\b`)

func matchWordCount(query string, acc *accumulator) (bool, error) {
	matched := false
	for _, m := range wordCountRe.FindAllStringSubmatch(query, -1) {
		n, ok := parseCardinal(m[1])
		if !ok {
			// Not a quantity phrase, e.g. "the word".
			continue
		}
		if err := acc.setWordCount(n); err != nil {
			return true, err
		}
		matched = true
	}
	return matched, nil
}

// Length phrases resolve to inclusive bounds: strict comparisons ("longer
// than", "shorter than") are shifted by one.
var minLengthPatterns = []struct {
	re     *regexp.Regexp
	offset int
}{
	{regexp.MustCompile(`\bat least (\w+) characters?\b`), 0},
	{regexp.MustCompile(`\b(\w+) or more characters?\b`), 0},
	{regexp.MustCompile(`\blonger than (\w+)\b`), 1},
	{regexp.MustCompile(`\bmore than (\w+) characters?\b`), 1},
}

var maxLengthPatterns = []struct {
	re     *regexp.Regexp
	offset int
}{
	{regexp.MustCompile(`\bat most (\w+) characters?\b`), 0},
	{regexp.MustCompile(`\b(\w+) or fewer characters?\b`), 0},
	{regexp.MustCompile(`\bshorter than (\w+)\b`), -1},
	{regexp.MustCompile(`\b(?:fewer|less) than (\w+) characters?\b`), -1},
}

func matchMinLength(query string, acc *accumulator) (bool, error) {
	matched := false
	for _, p := range minLengthPatterns {
		for _, m := range p.re.FindAllStringSubmatch(query, -1) {
			n, ok := parseCardinal(m[1])
			if !ok {
				continue
			}
			if err := acc.setMinLength(n + p.offset); err != nil {
				return true, err
			}
			matched = true
		}
	}
	return matched, nil
}

func matchMaxLength(query string, acc *accumulator) (bool, error) {
	matched := false
	for _, p := range maxLengthPatterns {
		for _, m := range p.re.FindAllStringSubmatch(query, -1) {
			n, ok := parseCardinal(m[1])
			if !ok {
				continue
			}
			bound := n + p.offset
			if bound < 0 {
				// "shorter than zero" names a length no string has.
				return matched, fmt.Errorf("%w: %q resolves to a negative length bound", ErrUnparsable, m[0])
			}
			if err := acc.setMaxLength(bound); err != nil {
				return true, err
			}
			matched = true
		}
	}
	return matched, nil
}

var containsRe = regexp.MustCompile(`\b(?:contain(?:s|ing)?|with)(?: the)? (?:letter|character) (\S+)`)

func matchContainsCharacter(query string, acc *accumulator) (bool, error) {
	matched := false
	for _, m := range containsRe.FindAllStringSubmatch(query, -1) {
		token := strings.Trim(m[1], `'".,!?;:`)
		if token == "" {
			continue
		}
		if utf8.RuneCountInString(token) != 1 {
			// Multi-character containment has no defined semantics here.
			return matched, fmt.Errorf("%w: contains filter needs a single character, got %q", ErrUnparsable, token)
		}
		if err := acc.setContainsCharacter(token); err != nil {
			return true, err
		}
		matched = true
	}
	return matched, nil
}
