package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/strand/filter"
)

func TestTranslatePalindrome(t *testing.T) {
	interp, err := Translate("show me all palindromes")
	require.NoError(t, err)
	require.NotNil(t, interp.Criteria.IsPalindrome)
	assert.True(t, *interp.Criteria.IsPalindrome)
	assert.Equal(t, "show me all palindromes", interp.Original)
}

func TestTranslateNegatedPalindrome(t *testing.T) {
	for _, query := range []string{
		"strings that are not palindromes",
		"non-palindromic strings",
		"everything that is not a palindrome",
	} {
		interp, err := Translate(query)
		require.NoError(t, err, query)
		require.NotNil(t, interp.Criteria.IsPalindrome, query)
		assert.False(t, *interp.Criteria.IsPalindrome, query)
	}
}

func TestTranslateSingleWordPalindromes(t *testing.T) {
	interp, err := Translate("all single word palindromic strings")
	require.NoError(t, err)
	require.NotNil(t, interp.Criteria.IsPalindrome)
	assert.True(t, *interp.Criteria.IsPalindrome)
	require.NotNil(t, interp.Criteria.WordCount)
	assert.Equal(t, 1, *interp.Criteria.WordCount)
}

func TestTranslateWordCount(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"strings with three words", 3},
		{"strings with 3 words", 3},
		{"two-word strings", 2},
		{"find one word entries", 1},
	}
	for _, tc := range tests {
		interp, err := Translate(tc.query)
		require.NoError(t, err, tc.query)
		require.NotNil(t, interp.Criteria.WordCount, tc.query)
		assert.Equal(t, tc.want, *interp.Criteria.WordCount, tc.query)
	}
}

func TestTranslateMinLength(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"strings with at least five characters", 5},
		{"strings with at least 5 characters", 5},
		{"strings with 5 or more characters", 5},
		{"strings longer than five", 6},
		{"strings with more than ten characters", 11},
	}
	for _, tc := range tests {
		interp, err := Translate(tc.query)
		require.NoError(t, err, tc.query)
		require.NotNil(t, interp.Criteria.MinLength, tc.query)
		assert.Equal(t, tc.want, *interp.Criteria.MinLength, tc.query)
	}
}

func TestTranslateMaxLength(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"strings with at most ten characters", 10},
		{"strings with 10 or fewer characters", 10},
		{"strings shorter than ten", 9},
		{"strings with fewer than 10 characters", 9},
		{"strings with less than one characters", 0},
	}
	for _, tc := range tests {
		interp, err := Translate(tc.query)
		require.NoError(t, err, tc.query)
		require.NotNil(t, interp.Criteria.MaxLength, tc.query)
		assert.Equal(t, tc.want, *interp.Criteria.MaxLength, tc.query)
	}
}

func TestTranslateContainsCharacter(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"strings containing the letter a", "a"},
		{"strings with the character z", "z"},
		{"strings that contain the letter 'x'", "x"},
		{"entries containing letter q, please", "q"},
	}
	for _, tc := range tests {
		interp, err := Translate(tc.query)
		require.NoError(t, err, tc.query)
		assert.Equal(t, tc.want, interp.Criteria.ContainsCharacter, tc.query)
	}
}

func TestTranslateCombinedFilters(t *testing.T) {
	interp, err := Translate("palindromes with at least three characters containing the letter a")
	require.NoError(t, err)
	require.NotNil(t, interp.Criteria.IsPalindrome)
	assert.True(t, *interp.Criteria.IsPalindrome)
	require.NotNil(t, interp.Criteria.MinLength)
	assert.Equal(t, 3, *interp.Criteria.MinLength)
	assert.Equal(t, "a", interp.Criteria.ContainsCharacter)
}

func TestTranslateCaseAndWhitespaceInsensitive(t *testing.T) {
	a, err := Translate("ALL   Single\tWord  PALINDROMES")
	require.NoError(t, err)
	b, err := Translate("all single word palindromes")
	require.NoError(t, err)
	assert.Equal(t, a.Criteria, b.Criteria)
}

func TestTranslateUnparsable(t *testing.T) {
	for _, query := range []string{
		"xyz abc",
		"give me everything",
		"",
	} {
		_, err := Translate(query)
		assert.ErrorIs(t, err, ErrUnparsable, query)
	}
}

func TestTranslateConflictingFilters(t *testing.T) {
	tests := []string{
		"palindromes that are not palindromes",
		"strings with two words and three words",
		"strings with at least five characters and at least ten characters",
		"strings with at most five characters and at most ten characters",
		"strings containing the letter a and containing the letter b",
	}
	for _, query := range tests {
		_, err := Translate(query)
		assert.ErrorIs(t, err, ErrConflictingFilters, query)
	}
}

func TestTranslateRepeatedValueIsNotConflict(t *testing.T) {
	interp, err := Translate("palindromes, only palindromes")
	require.NoError(t, err)
	require.NotNil(t, interp.Criteria.IsPalindrome)
	assert.True(t, *interp.Criteria.IsPalindrome)
}

func TestTranslateEquivalentBoundsAgree(t *testing.T) {
	// "more than four" and "at least five" resolve to the same bound.
	interp, err := Translate("strings with more than four characters and at least five characters")
	require.NoError(t, err)
	require.NotNil(t, interp.Criteria.MinLength)
	assert.Equal(t, 5, *interp.Criteria.MinLength)
}

func TestTranslateMultiCharacterContainsRejected(t *testing.T) {
	_, err := Translate("strings containing the letter abc")
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestTranslateNegativeLengthBoundRejected(t *testing.T) {
	for _, query := range []string{
		"strings shorter than zero",
		"strings with less than 0 characters",
	} {
		_, err := Translate(query)
		assert.ErrorIs(t, err, ErrUnparsable, query)
	}
}

type recordingMonitor struct {
	started   string
	patterns  []string
	conflicts []string
	finished  *Interpretation
	criterias []filter.Criteria
}

func (m *recordingMonitor) Start(query string) { m.started = query }

func (m *recordingMonitor) PatternMatched(pattern string, criteria filter.Criteria) {
	m.patterns = append(m.patterns, pattern)
	m.criterias = append(m.criterias, criteria)
}

func (m *recordingMonitor) Conflict(pattern string) {
	m.conflicts = append(m.conflicts, pattern)
}

func (m *recordingMonitor) Finish(interpretation Interpretation) {
	m.finished = &interpretation
}

func TestTranslateWithMonitor(t *testing.T) {
	monitor := &recordingMonitor{}
	interp, err := TranslateWithMonitor("single word palindromes", monitor)
	require.NoError(t, err)

	assert.Equal(t, "single word palindromes", monitor.started)
	assert.Equal(t, []string{"palindrome", "word_count"}, monitor.patterns)
	require.NotNil(t, monitor.finished)
	assert.Equal(t, interp, *monitor.finished)
}

func TestTranslateMonitorNotFinishedOnError(t *testing.T) {
	monitor := &recordingMonitor{}
	_, err := TranslateWithMonitor("nothing recognizable here", monitor)
	require.ErrorIs(t, err, ErrUnparsable)
	assert.Nil(t, monitor.finished)
}

func TestTranslateMonitorReportsConflict(t *testing.T) {
	monitor := &recordingMonitor{}
	_, err := TranslateWithMonitor("palindromes that are not palindromes", monitor)
	require.ErrorIs(t, err, ErrConflictingFilters)
	assert.Equal(t, []string{"palindrome"}, monitor.conflicts)
	assert.Nil(t, monitor.finished)
}
