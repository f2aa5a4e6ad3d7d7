// Package traverse provides a generic, callback-driven A* traversal engine.
//
// It exposes two main entry points:
//
//   - Traverse: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over node type and owns no graph of its own:
// callers describe theirs through a goal predicate, a neighbor expansion
// function, and optional edge-weight and heuristic functions. The engine
// only keeps the frontier and its cost maps, created fresh per call.
package traverse
