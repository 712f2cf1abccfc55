// Package bfs provides tunable options, error definitions and the result type
// for breadth-first search over an implicit state graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit is returned when the visited set reaches MaxStates
	// before a goal is dequeued.
	ErrStateLimit = errors.New("bfs: state limit reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
// Hooks receive the state key and its depth (transitions from the start).
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a newly discovered state enters the frontier.
	OnEnqueue func(key string, depth int)

	// OnDequeue is called immediately after a state leaves the frontier.
	OnDequeue func(key string, depth int)

	// OnVisit is called before a dequeued state is goal-tested. If it
	// returns an error, the search aborts and propagates that error.
	OnVisit func(key string, depth int) error

	// MaxDepth, if > 0, stops discovering states deeper than this.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, aborts the search with ErrStateLimit once this
	// many distinct states have been discovered.
	MaxStates int

	// FilterNeighbor can skip transitions by returning false.
	// Called for each transition curr→neighbor with their keys.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth or state limit
//   - no filtering (all transitions allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovering states beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxStates bounds the number of distinct states the search may discover.
//
//	n > 0: abort with ErrStateLimit when n states are known
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxStates = n
		}
	}
}

// WithFilterNeighbor skips transitions when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one Solve call:
//   - Path: start → goal along a shortest route, nil when Found is false.
//   - Generated: the start plus every neighbor produced, duplicates included.
//   - Unique: distinct states discovered (size of the visited set).
//   - Expanded: states taken off the frontier.
type Result[S any] struct {
	Path      []S
	Found     bool
	Generated int
	Unique    int
	Expanded  int
}

// Steps returns the number of transitions in Path, or -1 if no goal was found.
func (r *Result[S]) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
