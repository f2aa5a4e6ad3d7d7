package traverse

import (
	"errors"
	"math"

	"github.com/samber/lo"
)

// GoalFunc reports whether node terminates the search.
type GoalFunc[NodeType comparable] func(node NodeType) bool

// NeighborsFunc expands node into its candidate successors, in the order
// the engine should consider them. The route to node is provided as a lazy
// view; implementations that ignore it pay nothing for it. Nodes with no
// outgoing edges must return an empty slice, not fail.
type NeighborsFunc[NodeType comparable] func(node NodeType, pathSoFar *Path[NodeType]) []NodeType

// WeightFunc returns the cost of the edge from one node to a neighbor.
type WeightFunc[NodeType comparable] func(from NodeType, to NodeType) float64

// HeuristicFunc estimates the remaining cost from node to any goal.
// The optimality of the returned path depends on the caller supplying an
// admissible estimate; the engine does not validate it.
type HeuristicFunc[NodeType comparable] func(node NodeType) float64

// VisitFunc observes every node popped from the frontier for expansion,
// including the final goal node. It must not mutate the engine's state.
type VisitFunc[NodeType comparable] func(node NodeType, pathSoFar *Path[NodeType])

// Result contains the outcome of a traversal. A missing path is not an
// error: Found is false, Path is empty, and Visited still reports what the
// search reached.
type Result[NodeType comparable] struct {
	Path    []NodeType
	Score   float64
	Found   bool
	Visited []NodeType
}

// Errors reported before any traversal work begins.
var (
	ErrNilGoal      = errors.New("traverse: goal predicate is required")
	ErrNilNeighbors = errors.New("traverse: neighbors function is required")
)

// Options defines the optional callbacks of a traversal.
type Options[NodeType comparable] struct {
	Heuristic HeuristicFunc[NodeType]
	Weight    WeightFunc[NodeType]
	Visit     VisitFunc[NodeType]
}

// Option is a function that modifies Options.
type Option[NodeType comparable] func(*Options[NodeType])

// WithHeuristic biases the search order with an estimate of remaining cost.
// Absent, the heuristic contributes exactly 0 and the search degrades to
// uniform-cost order.
func WithHeuristic[NodeType comparable](heuristic HeuristicFunc[NodeType]) Option[NodeType] {
	return func(options *Options[NodeType]) { options.Heuristic = heuristic }
}

// WithWeight supplies edge costs. Absent, every edge contributes exactly 0
// and the score of any found path is 0.
func WithWeight[NodeType comparable](weight WeightFunc[NodeType]) Option[NodeType] {
	return func(options *Options[NodeType]) { options.Weight = weight }
}

// WithVisit installs a side-effecting observer invoked on every expansion.
func WithVisit[NodeType comparable](visit VisitFunc[NodeType]) Option[NodeType] {
	return func(options *Options[NodeType]) { options.Visit = visit }
}

// Traverse executes the A* search from startNode until goal is satisfied or
// the frontier is exhausted.
//
// Exhaustion returns a Result with Found false and a nil error; errors are
// reserved for missing required callbacks. Failures raised inside
// caller-supplied callbacks propagate unchanged.
func Traverse[NodeType comparable](
	startNode NodeType,
	goal GoalFunc[NodeType],
	neighbors NeighborsFunc[NodeType],
	options ...Option[NodeType],
) (Result[NodeType], error) {
	if goal == nil {
		return Result[NodeType]{}, ErrNilGoal
	}
	if neighbors == nil {
		return Result[NodeType]{}, ErrNilNeighbors
	}

	// --- Apply options ---
	searchOptions := Options[NodeType]{}
	for _, option := range options {
		option(&searchOptions)
	}
	heuristic := searchOptions.Heuristic
	if heuristic == nil {
		heuristic = func(NodeType) float64 { return 0 }
	}
	weight := searchOptions.Weight
	if weight == nil {
		weight = func(NodeType, NodeType) float64 { return 0 }
	}

	// --- Initialize state ---
	cameFrom := make(map[NodeType]NodeType)
	gScore := map[NodeType]float64{startNode: 0.0}
	fScore := map[NodeType]float64{startNode: heuristic(startNode)}

	frontier := NewFrontier(func(a, b Entry[NodeType]) bool { return a.Cost < b.Cost })
	frontier.Push(Entry[NodeType]{Node: startNode, Cost: fScore[startNode]})

	// --- Expansion loop ---
	for !frontier.Empty() {
		currentEntry, _ := frontier.Pop()
		currentNode := currentEntry.Node
		pathSoFar := newPath(cameFrom, currentNode)

		if searchOptions.Visit != nil {
			searchOptions.Visit(currentNode, pathSoFar)
		}

		if goal(currentNode) {
			return Result[NodeType]{
				Path:    pathSoFar.Materialize(),
				Score:   fScore[currentNode],
				Found:   true,
				Visited: visitedNodes(cameFrom, startNode),
			}, nil
		}

		for _, neighborNode := range neighbors(currentNode, pathSoFar) {
			tentativeG := gScore[currentNode] + weight(currentNode, neighborNode)
			if tentativeG < gScoreOrInf(gScore, neighborNode) {
				cameFrom[neighborNode] = currentNode
				gScore[neighborNode] = tentativeG
				fScore[neighborNode] = tentativeG + heuristic(neighborNode)
				// A stale, costlier entry for this node may still sit in the
				// frontier; it stays at its old priority, and a new entry is
				// pushed only when the node is absent.
				if !frontier.Contains(neighborNode) {
					frontier.Push(Entry[NodeType]{Node: neighborNode, Cost: fScore[neighborNode]})
				}
			}
		}
	}

	return Result[NodeType]{
		Found:   false,
		Visited: visitedNodes(cameFrom, startNode),
	}, nil
}

// gScoreOrInf looks up the best known cost to node, treating unseen nodes
// as infinitely far so the first discovered route always improves.
func gScoreOrInf[NodeType comparable](gScore map[NodeType]float64, node NodeType) float64 {
	if score, exists := gScore[node]; exists {
		return score
	}
	return math.Inf(1)
}

// visitedNodes lists every node relaxed during the run, plus the start.
func visitedNodes[NodeType comparable](cameFrom map[NodeType]NodeType, startNode NodeType) []NodeType {
	return lo.Uniq(append([]NodeType{startNode}, lo.Keys(cameFrom)...))
}
