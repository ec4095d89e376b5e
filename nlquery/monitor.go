package nlquery

import "github.com/poiesic/strand/filter"

// Monitor provides hooks to observe the translation process.
// Implement this interface to track which patterns matched and the criteria
// accumulated after each contribution.
type Monitor interface {
	Start(query string)
	PatternMatched(pattern string, criteria filter.Criteria)
	Conflict(pattern string)
	Finish(interpretation Interpretation)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                             {}
func (n *noopMonitor) PatternMatched(_ string, _ filter.Criteria) {}
func (n *noopMonitor) Conflict(_ string)                          {}
func (n *noopMonitor) Finish(_ Interpretation)                    {}
