package selection

import (
	"github.com/hyperifyio/textselect/internal/textrange"
)

// Source exposes the host's current selection as read-only snapshots.
type Source interface {
	Snapshot() Snapshot
}

// Snapshot is the state of the native selection at one instant.
type Snapshot struct {
	Ranges []textrange.Raw
}

// Collapsed reports whether the snapshot selects nothing.
func (s Snapshot) Collapsed() bool {
	for _, r := range s.Ranges {
		if !r.Collapsed() {
			return false
		}
	}
	return true
}

// Native is an in-memory selection that hosts update as the user selects.
type Native struct {
	ranges []textrange.Raw
}

// Set replaces the selected ranges.
func (n *Native) Set(ranges ...textrange.Raw) {
	n.ranges = append(n.ranges[:0:0], ranges...)
}

// Add appends a range to the selection.
func (n *Native) Add(r textrange.Raw) { n.ranges = append(n.ranges, r) }

// Clear empties the selection.
func (n *Native) Clear() { n.ranges = nil }

// Snapshot returns a copy of the current ranges.
func (n *Native) Snapshot() Snapshot {
	return Snapshot{Ranges: append([]textrange.Raw(nil), n.ranges...)}
}
