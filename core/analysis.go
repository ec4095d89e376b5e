package core

import (
	"strings"
)

// Analyze computes the derived properties for a raw string value.
// It is pure and total: any string, including the empty string, yields a
// fully populated Properties with no side effects.
func Analyze(value string) Properties {
	runes := []rune(value)

	// Frequency keys are case-sensitive single characters, so the map size
	// doubles as the distinct-character count.
	frequency := make(map[string]int, len(runes))
	for _, r := range runes {
		frequency[string(r)]++
	}

	return Properties{
		Length:             len(runes),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   len(frequency),
		WordCount:          len(strings.Fields(value)),
		ContentHash:        IDFromContent(value),
		CharacterFrequency: frequency,
	}
}

// isPalindrome reports whether the case-folded character sequence reads the
// same in both directions. Empty and single-character values are palindromes.
func isPalindrome(value string) bool {
	folded := []rune(strings.ToLower(value))
	for i, j := 0, len(folded)-1; i < j; i, j = i+1, j-1 {
		if folded[i] != folded[j] {
			return false
		}
	}
	return true
}
