package filter

import (
	"testing"

	"github.com/poiesic/strand/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, value string) *core.StringRecord {
	t.Helper()
	r, err := core.NewStringRecord(value)
	require.NoError(t, err)
	return r
}

func TestCriteria_Validate(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		wantErr  bool
	}{
		{
			name:     "empty criteria",
			criteria: Criteria{},
			wantErr:  false,
		},
		{
			name: "all criteria set",
			criteria: Criteria{
				IsPalindrome:      Bool(true),
				MinLength:         Int(1),
				MaxLength:         Int(10),
				WordCount:         Int(2),
				ContainsCharacter: "a",
			},
			wantErr: false,
		},
		{
			name:     "negative min_length",
			criteria: Criteria{MinLength: Int(-1)},
			wantErr:  true,
		},
		{
			name:     "negative max_length",
			criteria: Criteria{MaxLength: Int(-5)},
			wantErr:  true,
		},
		{
			name:     "negative word_count",
			criteria: Criteria{WordCount: Int(-2)},
			wantErr:  true,
		},
		{
			name:     "multi-character contains_character",
			criteria: Criteria{ContainsCharacter: "ab"},
			wantErr:  true,
		},
		{
			name:     "single unicode contains_character",
			criteria: Criteria{ContainsCharacter: "é"},
			wantErr:  false,
		},
		{
			name:     "min above max is valid",
			criteria: Criteria{MinLength: Int(10), MaxLength: Int(5)},
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCriteria)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCriteria_Matches(t *testing.T) {
	racecar := record(t, "racecar")
	hello := record(t, "hello world")

	t.Run("palindrome flag", func(t *testing.T) {
		assert.True(t, Criteria{IsPalindrome: Bool(true)}.Matches(racecar))
		assert.False(t, Criteria{IsPalindrome: Bool(true)}.Matches(hello))
		assert.True(t, Criteria{IsPalindrome: Bool(false)}.Matches(hello))
	})

	t.Run("length bounds", func(t *testing.T) {
		assert.True(t, Criteria{MinLength: Int(7)}.Matches(racecar))
		assert.False(t, Criteria{MinLength: Int(8)}.Matches(racecar))
		assert.True(t, Criteria{MaxLength: Int(7)}.Matches(racecar))
		assert.False(t, Criteria{MaxLength: Int(6)}.Matches(racecar))
	})

	t.Run("word count", func(t *testing.T) {
		assert.True(t, Criteria{WordCount: Int(1)}.Matches(racecar))
		assert.True(t, Criteria{WordCount: Int(2)}.Matches(hello))
		assert.False(t, Criteria{WordCount: Int(3)}.Matches(hello))
	})

	t.Run("contains character", func(t *testing.T) {
		assert.True(t, Criteria{ContainsCharacter: "e"}.Matches(racecar))
		assert.False(t, Criteria{ContainsCharacter: "z"}.Matches(racecar))
		assert.True(t, Criteria{ContainsCharacter: " "}.Matches(hello))
	})

	t.Run("conjunction", func(t *testing.T) {
		both := Criteria{IsPalindrome: Bool(true), WordCount: Int(1)}
		assert.True(t, both.Matches(racecar))
		assert.False(t, both.Matches(hello))
	})
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{WordCount: Int(0)}.IsZero())
	assert.False(t, Criteria{ContainsCharacter: "x"}.IsZero())
}

func TestCriteria_Applied(t *testing.T) {
	criteria := Criteria{
		IsPalindrome: Bool(true),
		MinLength:    Int(3),
	}

	applied := criteria.Applied()
	assert.Equal(t, map[string]any{
		"is_palindrome": true,
		"min_length":    3,
	}, applied)

	assert.Empty(t, Criteria{}.Applied())
}
