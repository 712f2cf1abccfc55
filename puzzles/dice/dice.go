// Package dice implements the die-rotation puzzle: a row of dice shows one
// face each, and a move rolls a single die to a face adjacent to the one it
// shows. The goal is a given string of faces.
package dice

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/puzzlesolver/internal/puzzlefile"
)

// Sentinel errors for the dice puzzle.
var (
	// ErrDie indicates an invalid die definition.
	ErrDie = errors.New("dice: invalid die")
	// ErrUnknownFace indicates a face that is not on the die it refers to.
	ErrUnknownFace = errors.New("dice: unknown face")
	// ErrLength indicates start, goal and dice counts that do not agree.
	ErrLength = errors.New("dice: face string length does not match dice")
	// ErrMalformed wraps syntax errors in die files.
	ErrMalformed = puzzlefile.ErrMalformed
)

// State is the row of faces currently shown. The dice definitions and the
// goal are carried on every value; they are shared but never mutated.
type State struct {
	dice    []*Die
	current string
	goal    string
}

// New validates start and goal against dice and returns the starting state.
// Character i of start and goal is the face of dice[i].
func New(start, goal string, dice []*Die) (State, error) {
	s, g := []rune(start), []rune(goal)
	if len(dice) == 0 || len(s) != len(dice) || len(g) != len(dice) {
		return State{}, fmt.Errorf("%w: start %q, end %q, %d dice", ErrLength, start, goal, len(dice))
	}
	for i, d := range dice {
		if d == nil {
			return State{}, fmt.Errorf("%w: die %d is nil", ErrDie, i)
		}
		if !d.HasFace(s[i]) {
			return State{}, fmt.Errorf("%w: start face %q on die %s", ErrUnknownFace, s[i], d.Name())
		}
		if !d.HasFace(g[i]) {
			return State{}, fmt.Errorf("%w: end face %q on die %s", ErrUnknownFace, g[i], d.Name())
		}
	}
	return State{dice: append([]*Die(nil), dice...), current: start, goal: goal}, nil
}

// Load reads the named dice from dir (die-<name>.txt each) and builds the
// starting state, as the command-line solver does.
func Load(dir, start, goal string, names []string) (State, []*Die, error) {
	dice := make([]*Die, 0, len(names))
	for _, n := range names {
		d, err := LoadDie(DieFile(dir, n))
		if err != nil {
			return State{}, nil, err
		}
		dice = append(dice, d)
	}
	s, err := New(start, goal, dice)
	if err != nil {
		return State{}, nil, fmt.Errorf("%s: %w", filepath.Clean(dir), err)
	}
	return s, dice, nil
}

// Current returns the faces shown.
func (s State) Current() string { return s.current }

// Goal returns the target faces.
func (s State) Goal() string { return s.goal }

// IsGoal reports whether every die shows its goal face.
func (s State) IsGoal() bool { return s.current == s.goal }

// Neighbors rolls each die in turn to each face adjacent to the one it
// shows, leaving the other dice untouched.
func (s State) Neighbors() []State {
	cur := []rune(s.current)
	var out []State
	for i, d := range s.dice {
		for _, f := range d.Neighbors(cur[i]) {
			next := make([]rune, len(cur))
			copy(next, cur)
			next[i] = f
			out = append(out, State{dice: s.dice, current: string(next), goal: s.goal})
		}
	}
	return out
}

// Key identifies the state by the faces shown.
func (s State) Key() string { return s.current }

// String renders the faces shown.
func (s State) String() string { return s.current }
