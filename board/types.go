// Package board defines core types, directions, and sentinel errors
// for the board subpackage of github.com/katalvlaran/puzzlesolver.
package board

import (
	"errors"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("board: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrDimensions indicates a malformed or mismatched "rows cols" header.
	ErrDimensions = errors.New("board: invalid dimensions")
	// ErrCell indicates a grid token that is not exactly one character.
	ErrCell = errors.New("board: cell must be a single character")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("board: position out of bounds")
)

// MaxCells bounds rows×cols for every board. Larger headers are rejected
// with ErrDimensions before anything is allocated.
const MaxCells = 1 << 20

// Connectivity selects direction sets: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, E, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: the four above plus NE, NW, SE, SW.
	Conn8
)

// Direction is one of the eight compass directions on a board.
type Direction int

// Compass directions. Orthogonal ones come first, in the order puzzles
// enumerate moves.
const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var directionNames = [...]string{"north", "south", "east", "west", "north-east", "north-west", "south-east", "south-west"}

// offsets[d] is the {row, col} step of direction d.
var offsets = [...][2]int{
	North:     {-1, 0},
	South:     {1, 0},
	East:      {0, 1},
	West:      {0, -1},
	NorthEast: {-1, 1},
	NorthWest: {-1, -1},
	SouthEast: {1, 1},
	SouthWest: {1, -1},
}

// String returns the lower-case compass name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d >= NorthEast
}

// Offset returns the row and column step of d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d]
	return o[0], o[1]
}

// Directions returns the direction set for the given connectivity.
// The returned slice is freshly allocated.
func Directions(conn Connectivity) []Direction {
	if conn == Conn8 {
		return []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	}
	return []Direction{North, South, East, West}
}

// Pos is a zero-based (row, column) coordinate.
type Pos struct {
	Row, Col int
}

// Step returns the position dist cells away from p in direction d.
func (p Pos) Step(d Direction, dist int) Pos {
	dr, dc := d.Offset()
	return Pos{Row: p.Row + dr*dist, Col: p.Col + dc*dist}
}

// Midpoint returns the cell halfway between p and q (integer division).
func (p Pos) Midpoint(q Pos) Pos {
	return Pos{Row: (p.Row + q.Row) / 2, Col: (p.Col + q.Col) / 2}
}

// Cell pairs a position with a value, used to describe board updates.
type Cell struct {
	Pos   Pos
	Value rune
}
