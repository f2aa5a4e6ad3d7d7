package traverse

import "slices"

// Entry pairs a node with the cost the frontier orders by.
type Entry[NodeType comparable] struct {
	Node NodeType
	Cost float64
}

// Comparator reports whether a sorts strictly before b. It must be
// irreflexive and transitive.
type Comparator[NodeType comparable] func(a, b Entry[NodeType]) bool

// Frontier is the open set: entries kept sorted ascending by the comparator
// at all times. A node may appear more than once transiently; stale entries
// for a node whose cost later improved are never re-prioritized in place.
type Frontier[NodeType comparable] struct {
	entries []Entry[NodeType]
	before  Comparator[NodeType]
}

// NewFrontier creates an empty frontier ordered by before.
func NewFrontier[NodeType comparable](before Comparator[NodeType]) *Frontier[NodeType] {
	return &Frontier[NodeType]{before: before}
}

// Push inserts entry at its sorted position and returns the frontier for
// chaining. The position is found by binary search; an entry the comparator
// cannot order either way against the new one takes the first midpoint
// probed.
func (frontier *Frontier[NodeType]) Push(entry Entry[NodeType]) *Frontier[NodeType] {
	frontier.entries = slices.Insert(frontier.entries, frontier.insertionIndex(entry), entry)
	return frontier
}

func (frontier *Frontier[NodeType]) insertionIndex(entry Entry[NodeType]) int {
	low, high := 0, len(frontier.entries)
	for low < high {
		mid := (low + high) / 2
		switch {
		case frontier.before(entry, frontier.entries[mid]):
			high = mid
		case frontier.before(frontier.entries[mid], entry):
			low = mid + 1
		default:
			return mid
		}
	}
	return low
}

// Pop removes and returns the minimum entry. The second return is false
// when the frontier is empty.
func (frontier *Frontier[NodeType]) Pop() (Entry[NodeType], bool) {
	if len(frontier.entries) == 0 {
		var zero Entry[NodeType]
		return zero, false
	}
	entry := frontier.entries[0]
	frontier.entries = frontier.entries[1:]
	return entry, true
}

// Empty reports whether no entries remain.
func (frontier *Frontier[NodeType]) Empty() bool { return len(frontier.entries) == 0 }

// Len returns the number of entries, counting stale duplicates.
func (frontier *Frontier[NodeType]) Len() int { return len(frontier.entries) }

// Contains reports whether any entry references node, at any cost.
// Linear scan over the backing slice.
func (frontier *Frontier[NodeType]) Contains(node NodeType) bool {
	for _, entry := range frontier.entries {
		if entry.Node == node {
			return true
		}
	}
	return false
}

// Nodes returns a snapshot of the nodes currently in the frontier.
func (frontier *Frontier[NodeType]) Nodes() []NodeType {
	nodes := make([]NodeType, 0, len(frontier.entries))
	for _, entry := range frontier.entries {
		nodes = append(nodes, entry.Node)
	}
	return nodes
}
