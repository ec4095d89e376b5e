package filter

import (
	"fmt"
	"unicode/utf8"

	"github.com/poiesic/strand/core"
)

// Criteria is a conjunction of optional predicates over stored records.
// Unset fields impose no constraint. Field names form the wire contract for
// structured queries.
type Criteria struct {
	IsPalindrome      *bool  `json:"is_palindrome,omitempty"`
	MinLength         *int   `json:"min_length,omitempty"`
	MaxLength         *int   `json:"max_length,omitempty"`
	WordCount         *int   `json:"word_count,omitempty"`
	ContainsCharacter string `json:"contains_character,omitempty"`
}

// Bool returns a pointer to v, for building criteria literals.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building criteria literals.
func Int(v int) *int { return &v }

// Validate checks that every set criterion carries a usable value.
// MinLength greater than MaxLength is a valid combination that simply
// matches nothing.
func (c Criteria) Validate() error {
	if c.MinLength != nil && *c.MinLength < 0 {
		return fmt.Errorf("%w: min_length must not be negative, got %d", ErrInvalidCriteria, *c.MinLength)
	}
	if c.MaxLength != nil && *c.MaxLength < 0 {
		return fmt.Errorf("%w: max_length must not be negative, got %d", ErrInvalidCriteria, *c.MaxLength)
	}
	if c.WordCount != nil && *c.WordCount < 0 {
		return fmt.Errorf("%w: word_count must not be negative, got %d", ErrInvalidCriteria, *c.WordCount)
	}
	if c.ContainsCharacter != "" && utf8.RuneCountInString(c.ContainsCharacter) != 1 {
		return fmt.Errorf("%w: contains_character must be a single character, got %q", ErrInvalidCriteria, c.ContainsCharacter)
	}
	return nil
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.IsPalindrome == nil &&
		c.MinLength == nil &&
		c.MaxLength == nil &&
		c.WordCount == nil &&
		c.ContainsCharacter == ""
}

// Matches reports whether a record satisfies every set criterion.
func (c Criteria) Matches(record *core.StringRecord) bool {
	p := record.Properties
	if c.IsPalindrome != nil && p.IsPalindrome != *c.IsPalindrome {
		return false
	}
	if c.MinLength != nil && p.Length < *c.MinLength {
		return false
	}
	if c.MaxLength != nil && p.Length > *c.MaxLength {
		return false
	}
	if c.WordCount != nil && p.WordCount != *c.WordCount {
		return false
	}
	if c.ContainsCharacter != "" && p.CharacterFrequency[c.ContainsCharacter] <= 0 {
		return false
	}
	return true
}

// Applied returns the set criteria keyed by wire name, for response
// envelopes that echo which filters were applied.
func (c Criteria) Applied() map[string]any {
	applied := make(map[string]any)
	if c.IsPalindrome != nil {
		applied["is_palindrome"] = *c.IsPalindrome
	}
	if c.MinLength != nil {
		applied["min_length"] = *c.MinLength
	}
	if c.MaxLength != nil {
		applied["max_length"] = *c.MaxLength
	}
	if c.WordCount != nil {
		applied["word_count"] = *c.WordCount
	}
	if c.ContainsCharacter != "" {
		applied["contains_character"] = c.ContainsCharacter
	}
	return applied
}
