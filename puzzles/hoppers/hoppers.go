// Package hoppers implements the frog-jumping board puzzle. Frogs jump over
// an adjacent green frog onto an empty cell, removing the frog they jumped.
// Red frogs can jump but cannot be jumped. The puzzle is solved when no
// green frogs remain.
//
// Board cells:
//
//	G  green frog
//	R  red frog
//	.  empty, usable cell
//	*  unusable cell
//
// A frog on a cell whose row and column are both even may jump in eight
// directions: two cells diagonally or four cells orthogonally. Any other
// frog may only jump two cells diagonally.
package hoppers

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/puzzlesolver/board"
	"github.com/katalvlaran/puzzlesolver/internal/puzzlefile"
)

// Cell values.
const (
	Green   = 'G'
	Red     = 'R'
	Empty   = '.'
	Invalid = '*'
)

// Sentinel errors for the hoppers puzzle.
var (
	// ErrCell indicates a board cell outside {G, R, ., *}.
	ErrCell = errors.New("hoppers: invalid cell")
	// ErrMalformed wraps syntax errors in puzzle files.
	ErrMalformed = puzzlefile.ErrMalformed
)

// Jump is the move that produced a state.
type Jump struct {
	From, Over, To board.Pos
}

// State is one arrangement of frogs. The board carries its own dimensions.
type State struct {
	grid  board.Board
	green int
	last  *Jump
}

// New validates grid and returns the starting state.
func New(grid board.Board) (State, error) {
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			switch v := grid.At(board.Pos{Row: r, Col: c}); v {
			case Green, Red, Empty, Invalid:
			default:
				return State{}, fmt.Errorf("%w: %q at (%d,%d)", ErrCell, v, r, c)
			}
		}
	}
	return State{grid: grid, green: grid.Count(Green)}, nil
}

// Parse reads a puzzle:
//
//	rows cols
//	c c c ...   (rows lines of cols cells)
func Parse(r io.Reader) (State, error) {
	s := puzzlefile.NewScanner(r)
	header, err := s.Require("\"rows cols\" header")
	if err != nil {
		return State{}, err
	}
	rows, cols, err := board.ParseDims(header)
	if err != nil {
		return State{}, s.Wrap(err)
	}

	var lines [][]string
	for i := 0; i < rows; i++ {
		fields, err := s.Require(fmt.Sprintf("board row %d", i))
		if err != nil {
			return State{}, err
		}
		lines = append(lines, fields)
	}
	grid, err := board.ParseGrid(rows, cols, lines)
	if err != nil {
		return State{}, s.Wrap(err)
	}
	st, err := New(grid)
	if err != nil {
		return State{}, s.Wrap(err)
	}
	return st, nil
}

// Load reads a puzzle file.
func Load(path string) (State, error) {
	return puzzlefile.Load(path, Parse)
}

// Board returns the current board.
func (s State) Board() board.Board { return s.grid }

// Green returns the number of green frogs left.
func (s State) Green() int { return s.green }

// LastJump returns the jump that produced this state, if any.
func (s State) LastJump() (Jump, bool) {
	if s.last == nil {
		return Jump{}, false
	}
	return *s.last, true
}

// IsGoal reports whether every green frog has been removed.
func (s State) IsGoal() bool { return s.green == 0 }

// Neighbors returns every state reachable by one jump, scanning frogs in
// row-major order and directions in board order.
func (s State) Neighbors() []State {
	var out []State
	for r := 0; r < s.grid.Rows(); r++ {
		for c := 0; c < s.grid.Cols(); c++ {
			from := board.Pos{Row: r, Col: c}
			if v := s.grid.At(from); v != Green && v != Red {
				continue
			}
			out = s.appendJumps(out, from)
		}
	}
	return out
}

// diagonals is the jump set of frogs off the even/even lattice.
var diagonals = []board.Direction{board.NorthEast, board.NorthWest, board.SouthEast, board.SouthWest}

// appendJumps appends the jumps of the frog at from.
func (s State) appendJumps(out []State, from board.Pos) []State {
	dirs := diagonals
	if from.Row%2 == 0 && from.Col%2 == 0 {
		dirs = board.Directions(board.Conn8)
	}
	for _, d := range dirs {
		dist := 2
		if !d.Diagonal() {
			dist = 4
		}
		to := from.Step(d, dist)
		if !s.grid.InBounds(to) || s.grid.At(to) != Empty {
			continue
		}
		over := from.Midpoint(to)
		if s.grid.At(over) != Green {
			continue
		}
		next, err := s.grid.With(
			board.Cell{Pos: to, Value: s.grid.At(from)},
			board.Cell{Pos: from, Value: Empty},
			board.Cell{Pos: over, Value: Empty},
		)
		if err != nil {
			continue
		}
		out = append(out, State{grid: next, green: s.green - 1, last: &Jump{From: from, Over: over, To: to}})
	}
	return out
}

// Key identifies the state by every cell of the board.
func (s State) Key() string { return s.grid.Key() }

// String renders the board as it appears in puzzle files.
func (s State) String() string { return s.grid.String() }
