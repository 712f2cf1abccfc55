// Package board provides an immutable rectangular grid of single-character
// cells, shared by the grid-based puzzles. Dimensions travel with every
// value, so two boards never depend on shared global state.
package board

import (
	"fmt"
	"strings"
)

// Board is an immutable rows×cols grid of runes stored in row-major order.
// The zero Board has no cells; construct boards with New, Filled or ParseGrid.
type Board struct {
	rows, cols int
	cells      []rune
}

// New constructs a Board from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func New(grid [][]rune) (Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Board{}, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	cells := make([]rune, 0, h*w)
	for _, row := range grid {
		if len(row) != w {
			return Board{}, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return Board{rows: h, cols: w, cells: cells}, nil
}

// Filled returns a rows×cols board with every cell set to fill.
// Returns ErrDimensions unless both sides are positive and the board has at
// most MaxCells cells.
func Filled(rows, cols int, fill rune) (Board, error) {
	if err := checkDims(rows, cols); err != nil {
		return Board{}, err
	}
	cells := make([]rune, rows*cols)
	for i := range cells {
		cells[i] = fill
	}
	return Board{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// InBounds reports whether p lies within the board.
// Complexity: O(1).
func (b Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// index maps p to a row-major index: Row*cols + Col.
func (b Board) index(p Pos) int {
	return p.Row*b.cols + p.Col
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (b Board) Coordinate(idx int) Pos {
	return Pos{Row: idx / b.cols, Col: idx % b.cols}
}

// At returns the cell value at p. It panics if p is out of bounds;
// callers check InBounds first.
func (b Board) At(p Pos) rune {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: At(%d,%d) outside %dx%d", p.Row, p.Col, b.rows, b.cols))
	}
	return b.cells[b.index(p)]
}

// With returns a copy of b with the given cells overwritten; b is unchanged.
// Returns ErrOutOfBounds if any update falls outside the board.
func (b Board) With(updates ...Cell) (Board, error) {
	cells := make([]rune, len(b.cells))
	copy(cells, b.cells)
	for _, u := range updates {
		if !b.InBounds(u.Pos) {
			return Board{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, u.Pos.Row, u.Pos.Col)
		}
		cells[b.index(u.Pos)] = u.Value
	}
	return Board{rows: b.rows, cols: b.cols, cells: cells}, nil
}

// Count returns how many cells hold v.
func (b Board) Count(v rune) int {
	n := 0
	for _, c := range b.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Find returns the positions holding v in row-major order.
func (b Board) Find(v rune) []Pos {
	var out []Pos
	for i, c := range b.cells {
		if c == v {
			out = append(out, b.Coordinate(i))
		}
	}
	return out
}

// Key is the canonical encoding of the board: dimensions and every cell.
// Two boards have equal keys iff every cell matches exactly.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + 8)
	fmt.Fprintf(&sb, "%dx%d:", b.rows, b.cols)
	sb.WriteString(string(b.cells))
	return sb.String()
}

// Equal reports whether b and o have the same dimensions and cells.
func (b Board) Equal(o Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board one row per line with cells separated by
// single spaces, as puzzle files are written.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.cells[r*b.cols+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
