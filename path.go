package traverse

import "github.com/pdrpinto/traverse/internal"

// Path is a lazily materialized route from the start node to a terminal
// node. It holds the live predecessor map, not a copy: the sequence is
// re-derived fresh on every Materialize call, so a view handed out during
// the search reflects any relaxation that happens before it is consumed.
type Path[NodeType comparable] struct {
	cameFrom map[NodeType]NodeType
	terminal NodeType
}

func newPath[NodeType comparable](cameFrom map[NodeType]NodeType, terminal NodeType) *Path[NodeType] {
	return &Path[NodeType]{cameFrom: cameFrom, terminal: terminal}
}

// Terminal returns the node the path ends at.
func (path *Path[NodeType]) Terminal() NodeType { return path.terminal }

// Materialize walks the predecessor map backward from the terminal node and
// returns the full sequence in start-to-terminal order.
func (path *Path[NodeType]) Materialize() []NodeType {
	return internal.ReconstructPath(path.cameFrom, path.terminal)
}

// Len materializes the path and returns its node count.
func (path *Path[NodeType]) Len() int { return len(path.Materialize()) }
