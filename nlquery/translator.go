package nlquery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/strand/filter"
)

// Interpretation pairs the original query text with the structured criteria
// resolved from it, so callers can report exactly what was understood.
type Interpretation struct {
	Original string          `json:"original"`
	Criteria filter.Criteria `json:"parsed_criteria"`
}

// Translate converts a free-text query into structured filter criteria.
// Translation is deterministic, case-insensitive, and whitespace-tolerant;
// unrecognized text is ignored as long as at least one pattern matches.
//
// Returns ErrUnparsable when no pattern matches, and ErrConflictingFilters
// when the same criterion resolves to two different values.
func Translate(query string) (Interpretation, error) {
	return TranslateWithMonitor(query, nil)
}

// TranslateWithMonitor translates a query while reporting each matched
// pattern to the monitor.
func TranslateWithMonitor(query string, monitor Monitor) (Interpretation, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	// Lowercase and collapse whitespace so patterns see a canonical form.
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))

	acc := &accumulator{}
	for _, m := range matchers {
		matched, err := m.match(normalized, acc)
		if err != nil {
			if errors.Is(err, ErrConflictingFilters) {
				monitor.Conflict(m.name)
			}
			return Interpretation{}, err
		}
		if matched {
			monitor.PatternMatched(m.name, acc.criteria)
		}
	}

	if acc.matched == 0 {
		return Interpretation{}, fmt.Errorf("%w: %q", ErrUnparsable, query)
	}

	interpretation := Interpretation{Original: query, Criteria: acc.criteria}
	monitor.Finish(interpretation)
	return interpretation, nil
}

// accumulator collects partial criteria contributions and rejects a second,
// different value for the same criterion. Repeating the same value is not a
// conflict.
type accumulator struct {
	criteria filter.Criteria
	matched  int
}

func (a *accumulator) setPalindrome(v bool) error {
	if a.criteria.IsPalindrome != nil && *a.criteria.IsPalindrome != v {
		return fmt.Errorf("%w: is_palindrome resolved to both %t and %t",
			ErrConflictingFilters, *a.criteria.IsPalindrome, v)
	}
	a.criteria.IsPalindrome = filter.Bool(v)
	a.matched++
	return nil
}

func (a *accumulator) setWordCount(n int) error {
	if a.criteria.WordCount != nil && *a.criteria.WordCount != n {
		return fmt.Errorf("%w: word_count resolved to both %d and %d",
			ErrConflictingFilters, *a.criteria.WordCount, n)
	}
	a.criteria.WordCount = filter.Int(n)
	a.matched++
	return nil
}

func (a *accumulator) setMinLength(n int) error {
	if a.criteria.MinLength != nil && *a.criteria.MinLength != n {
		return fmt.Errorf("%w: min_length resolved to both %d and %d",
			ErrConflictingFilters, *a.criteria.MinLength, n)
	}
	a.criteria.MinLength = filter.Int(n)
	a.matched++
	return nil
}

func (a *accumulator) setMaxLength(n int) error {
	if a.criteria.MaxLength != nil && *a.criteria.MaxLength != n {
		return fmt.Errorf("%w: max_length resolved to both %d and %d",
			ErrConflictingFilters, *a.criteria.MaxLength, n)
	}
	a.criteria.MaxLength = filter.Int(n)
	a.matched++
	return nil
}

func (a *accumulator) setContainsCharacter(ch string) error {
	if a.criteria.ContainsCharacter != "" && a.criteria.ContainsCharacter != ch {
		return fmt.Errorf("%w: contains_character resolved to both %q and %q",
			ErrConflictingFilters, a.criteria.ContainsCharacter, ch)
	}
	a.criteria.ContainsCharacter = ch
	a.matched++
	return nil
}
