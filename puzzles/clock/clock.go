// Package clock implements the modular clock puzzle: turn the hand of an
// N-hour clock one hour forward or backward per move until it shows the
// goal hour.
package clock

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidClock is returned for a clock size or hour outside its range.
var ErrInvalidClock = errors.New("clock: invalid clock")

// State is one reading of the clock. Hours are numbered 1..Hours.
// The clock size and goal travel with every value.
type State struct {
	hours   int
	current int
	goal    int
}

// New validates the arguments and returns the starting state.
func New(hours, current, goal int) (State, error) {
	if hours < 1 {
		return State{}, fmt.Errorf("%w: hours must be at least 1, got %d", ErrInvalidClock, hours)
	}
	if current < 1 || current > hours {
		return State{}, fmt.Errorf("%w: start %d outside 1..%d", ErrInvalidClock, current, hours)
	}
	if goal < 1 || goal > hours {
		return State{}, fmt.Errorf("%w: end %d outside 1..%d", ErrInvalidClock, goal, hours)
	}
	return State{hours: hours, current: current, goal: goal}, nil
}

// Parse builds a State from the three command-line style arguments
// "hours start end".
func Parse(args []string) (State, error) {
	if len(args) != 3 {
		return State{}, fmt.Errorf("%w: want hours start end, got %d arguments", ErrInvalidClock, len(args))
	}
	var vals [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return State{}, fmt.Errorf("%w: %q is not a number", ErrInvalidClock, a)
		}
		vals[i] = v
	}
	return New(vals[0], vals[1], vals[2])
}

// Hours returns the clock size.
func (s State) Hours() int { return s.hours }

// Current returns the hour the clock shows.
func (s State) Current() int { return s.current }

// Goal returns the hour to reach.
func (s State) Goal() int { return s.goal }

// IsGoal reports whether the clock shows the goal hour.
func (s State) IsGoal() bool { return s.current == s.goal }

// Neighbors returns the clock turned one hour forward, then one hour back.
// On a one-hour clock both moves lead back to the same reading.
func (s State) Neighbors() []State {
	forward := s.current%s.hours + 1
	backward := s.current - 1
	if backward < 1 {
		backward = s.hours
	}
	return []State{
		{hours: s.hours, current: forward, goal: s.goal},
		{hours: s.hours, current: backward, goal: s.goal},
	}
}

// Key identifies the state by the hour shown.
func (s State) Key() string { return strconv.Itoa(s.current) }

// String renders the hour shown.
func (s State) String() string { return strconv.Itoa(s.current) }
