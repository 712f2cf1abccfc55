// Package bfs provides a breadth-first search engine over implicitly defined
// state graphs, returning a shortest transition path from a start state to
// the nearest state that satisfies its goal test.
//
// What
//
//   - Works with any type S implementing state.State[S]: IsGoal, Neighbors, Key.
//   - The graph is never materialised; successors are produced on demand, so
//     the space may be unbounded as long as a goal is reachable.
//   - Returns a Result containing:
//   - Path: start … goal, or nil when no goal is reachable
//   - Found: whether a goal was dequeued
//   - Generated / Unique / Expanded: run counters for this call only
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is first discovered)
//   - OnDequeue (when a state leaves the frontier)
//   - OnVisit   (before the goal test; may abort with an error)
//   - Allows pruning individual transitions via WithFilterNeighbor.
//   - Honors MaxDepth and MaxStates limits (0 means no limit).
//
// Why
//
//   - Every transition costs the same, so the first goal dequeued is at
//     minimum distance from the start.
//   - One engine serves any puzzle: the domain supplies only the state.
//
// Determinism
//
//	States are discovered in the order Neighbors returns them and a
//	predecessor is recorded once, at discovery. Among several shortest paths
//	the one through the earliest-discovered states is returned, and repeated
//	runs on equal inputs return identical paths.
//
// Reentrancy
//
//	Frontier, visited set, predecessor map and counters are owned by a single
//	Solve call. Concurrent or interleaved calls never share bookkeeping.
//
// Complexity (V = reachable states, E = transitions generated)
//
//   - Time:   O(V + E) key computations and map operations
//   - Memory: O(V) for queue, visited set and predecessor map
//
// Usage
//
//	res, err := bfs.Solve(start)
//	if err != nil {
//		// only possible with options: ErrOptionViolation, ErrStateLimit,
//		// context errors, or hook errors
//	}
//	if !res.Found {
//		fmt.Println("No solution")
//	}
//	for i, s := range res.Path {
//		fmt.Printf("Step %d: %v\n", i, s)
//	}
//
//	// The single next move, for hint features:
//	next, ok, err := bfs.Hint(current)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no limits, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             do not discover states deeper than d (>0).
//   - WithMaxStates(n):            abort after n distinct states (>0).
//   - WithFilterNeighbor(fn):      skip transitions for which fn(curr,nbr)==false.
//   - WithOnEnqueue(fn):           hook when a state is discovered.
//   - WithOnDequeue(fn):           hook when a state leaves the frontier.
//   - WithOnVisit(fn):             hook before the goal test; error aborts.
//
// Errors
//
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrStateLimit       if MaxStates distinct states were discovered.
//   - ctx.Err()           if the context is cancelled or times out.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// "No solution" is not an error: it is reported as Result.Found == false.
package bfs
