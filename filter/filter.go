package filter

import (
	"github.com/poiesic/strand/core"
)

// Apply selects the records satisfying every set criterion, preserving the
// input order. The criteria are validated first; an unsatisfiable but
// well-typed combination (min_length above max_length) yields an empty
// result, not an error.
func Apply(records []*core.StringRecord, criteria Criteria) ([]*core.StringRecord, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	results := make([]*core.StringRecord, 0, len(records))
	for _, record := range records {
		if criteria.Matches(record) {
			results = append(results, record)
		}
	}
	return results, nil
}
