// Package bfs provides breadth-first search over an implicit state graph,
// returning a shortest transition path to the nearest goal state.
//
// Solve explores states in increasing distance from a start state,
// with optional hooks, depth and state limits, and transition filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/puzzlesolver/state"
)

// queueItem pairs a discovered state with its key and BFS depth.
type queueItem[S any] struct {
	state S
	key   string
	depth int
}

// link is a predecessor entry; key is cached to avoid recomputing it.
type link[S any] struct {
	state S
	key   string
}

// walker encapsulates mutable BFS state for exactly one Solve call.
type walker[S state.State[S]] struct {
	opts    Options
	ctx     context.Context
	queue   []queueItem[S]
	visited map[string]struct{}
	parent  map[string]link[S]
	res     *Result[S]
}

// Solve runs breadth-first search from start, applying any number of
// functional Options.
//
// If start is already a goal the path is [start]. If a goal is reachable the
// path is a shortest [start, ..., goal]; among equally short paths the one
// whose states were discovered first wins. If the frontier empties without a
// goal, Result.Found is false and the error is nil.
//
// With default options Solve never fails. Otherwise it returns
// ErrOptionViolation for bad options, ErrStateLimit when MaxStates is hit,
// the context error on cancellation, or a wrapped OnVisit error. The Result
// is returned alongside traversal errors so the counters remain available.
func Solve[S state.State[S]](start S, opts ...Option) (*Result[S], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[S], 0, 64),
		visited: make(map[string]struct{}, 64),
		parent:  make(map[string]link[S], 64),
		res:     &Result[S]{Generated: 1},
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, start.Key(), 0)

	return w.res, w.loop()
}

// Hint returns the state one transition along a shortest solution from
// current. If current is already solved it is returned unchanged. ok is false
// when no goal is reachable.
func Hint[S state.State[S]](current S, opts ...Option) (next S, ok bool, err error) {
	res, err := Solve(current, opts...)
	if err != nil || !res.Found {
		return next, false, err
	}
	if len(res.Path) == 1 {
		return res.Path[0], true, nil
	}

	return res.Path[1], true, nil
}

// enqueue marks key visited, calls OnEnqueue and appends the state to the queue.
func (w *walker[S]) enqueue(s S, key string, d int) {
	w.visited[key] = struct{}{}
	w.res.Unique = len(w.visited)
	w.opts.OnEnqueue(key, d)
	w.queue = append(w.queue, queueItem[S]{state: s, key: key, depth: d})
}

// loop processes the queue until a goal, exhaustion, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.state.IsGoal() {
			w.res.Path = w.pathTo(item)
			w.res.Found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue[0] = queueItem[S]{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)
	return item
}

// visit counts the expansion and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Expanded++
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// enqueueNeighbors generates the successors of item, applies filtering,
// MaxDepth and MaxStates, and enqueues each unseen one with item as parent.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) error {
	neighbors := item.state.Neighbors()
	w.res.Generated += len(neighbors)

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		key := nbr.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.key, key) {
			continue
		}
		if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d distinct states discovered", ErrStateLimit, len(w.visited))
		}

		// first discovery fixes the predecessor for good
		w.parent[key] = link[S]{state: item.state, key: item.key}
		w.enqueue(nbr, key, nextDepth)
	}
	return nil
}

// pathTo follows predecessor links from item back to the start and returns
// the path in start → item order.
func (w *walker[S]) pathTo(item queueItem[S]) []S {
	path := make([]S, 0, item.depth+1)
	path = append(path, item.state)
	for key := item.key; ; {
		prev, ok := w.parent[key]
		if !ok {
			break
		}
		path = append(path, prev.state)
		key = prev.key
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
