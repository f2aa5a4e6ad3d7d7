package traverse

import (
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper drives the same expansion logic as Traverse one pop at a time,
// so UIs and debugging tools can render intermediate state.
type Stepper[NodeType comparable] struct {
	ctx    context.Context
	cancel context.CancelFunc

	goal      GoalFunc[NodeType]
	neighbors NeighborsFunc[NodeType]
	heuristic HeuristicFunc[NodeType]
	weight    WeightFunc[NodeType]
	visit     VisitFunc[NodeType]

	frontier *Frontier[NodeType]
	cameFrom map[NodeType]NodeType
	gScore   map[NodeType]float64
	fScore   map[NodeType]float64

	configErr error
	stepCount int
	done      bool
	found     bool
	score     float64
}

// NewStepper creates a stepper over the same callbacks and options accepted
// by Traverse. A missing goal or neighbors callback surfaces on the first
// Step call.
func NewStepper[NodeType comparable](
	parent context.Context,
	startNode NodeType,
	goal GoalFunc[NodeType],
	neighbors NeighborsFunc[NodeType],
	options ...Option[NodeType],
) *Stepper[NodeType] {
	opts := Options[NodeType]{}
	for _, o := range options {
		o(&opts)
	}
	heuristic := opts.Heuristic
	if heuristic == nil {
		heuristic = func(NodeType) float64 { return 0 }
	}
	weight := opts.Weight
	if weight == nil {
		weight = func(NodeType, NodeType) float64 { return 0 }
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper[NodeType]{
		ctx: ctx, cancel: cancel,
		goal: goal, neighbors: neighbors,
		heuristic: heuristic, weight: weight, visit: opts.Visit,
		frontier: NewFrontier(func(a, b Entry[NodeType]) bool { return a.Cost < b.Cost }),
		cameFrom: make(map[NodeType]NodeType),
		gScore:   map[NodeType]float64{startNode: 0},
		fScore:   map[NodeType]float64{startNode: heuristic(startNode)},
	}
	switch {
	case goal == nil:
		s.configErr = ErrNilGoal
	case neighbors == nil:
		s.configErr = ErrNilNeighbors
	}
	s.frontier.Push(Entry[NodeType]{Node: startNode, Cost: s.fScore[startNode]})
	return s
}

// Close stops the stepper's context
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Score returns the total cost of the found path; meaningful once a Step
// has reported Found.
func (s *Stepper[NodeType]) Score() float64 { return s.score }

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.configErr != nil {
		return StepSnapshot[NodeType]{}, s.configErr
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return StepSnapshot[NodeType]{Done: true, Found: s.found, StepIndex: s.stepCount}, err
	}
	if s.done {
		return s.snapshot(StepSnapshot[NodeType]{Done: true, Found: s.found}), nil
	}
	if s.frontier.Empty() {
		s.done = true
		return s.snapshot(StepSnapshot[NodeType]{Done: true}), nil
	}

	s.stepCount++
	currentEntry, _ := s.frontier.Pop()
	current := currentEntry.Node
	pathSoFar := newPath(s.cameFrom, current)
	if s.visit != nil {
		s.visit(current, pathSoFar)
	}

	if s.goal(current) {
		s.done = true
		s.found = true
		s.score = s.fScore[current]
		return s.snapshot(StepSnapshot[NodeType]{
			Current: current,
			Done:    true,
			Found:   true,
			Path:    pathSoFar.Materialize(),
		}), nil
	}

	for _, neighborNode := range s.neighbors(current, pathSoFar) {
		tentativeG := s.gScore[current] + s.weight(current, neighborNode)
		if tentativeG < gScoreOrInf(s.gScore, neighborNode) {
			s.cameFrom[neighborNode] = current
			s.gScore[neighborNode] = tentativeG
			s.fScore[neighborNode] = tentativeG + s.heuristic(neighborNode)
			if !s.frontier.Contains(neighborNode) {
				s.frontier.Push(Entry[NodeType]{Node: neighborNode, Cost: s.fScore[neighborNode]})
			}
		}
	}

	return s.snapshot(StepSnapshot[NodeType]{Current: current}), nil
}

func (s *Stepper[NodeType]) snapshot(base StepSnapshot[NodeType]) StepSnapshot[NodeType] {
	base.Open = openSetToBoolMap(s.frontier)
	base.CameFrom = copyCameFrom(s.cameFrom)
	base.StepIndex = s.stepCount
	return base
}

func openSetToBoolMap[NodeType comparable](frontier *Frontier[NodeType]) map[NodeType]bool {
	m := make(map[NodeType]bool, frontier.Len())
	for _, node := range frontier.Nodes() {
		m[node] = true
	}
	return m
}

func copyCameFrom[T comparable](m map[T]T) map[T]T {
	if m == nil {
		return nil
	}
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
