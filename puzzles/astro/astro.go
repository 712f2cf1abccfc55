// Package astro implements the sliding-robot puzzle. An astronaut and a
// number of robots stand on a grid. Any of them may slide north, south,
// east or west until it stops in front of another occupant. The puzzle is
// solved when the astronaut stands on the goal cell.
//
// A slide that meets no occupant would carry the entity off the board and
// is not a move. Neither is a slide against an adjacent occupant, which
// would leave the board unchanged. The goal cell is marked but never blocks.
package astro

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/puzzlesolver/board"
	"github.com/katalvlaran/puzzlesolver/internal/puzzlefile"
)

// Cell markers used when rendering and parsing.
const (
	Empty         = '.'
	GoalMark      = '*'
	AstronautName = 'A'
)

// Sentinel errors for the astro puzzle.
var (
	// ErrEntity indicates an invalid entity: bad name, duplicate name or
	// shared cell, or a missing astronaut.
	ErrEntity = errors.New("astro: invalid entity")
	// ErrOutOfBounds indicates a goal or entity outside the grid.
	ErrOutOfBounds = board.ErrOutOfBounds
	// ErrMalformed wraps syntax errors in puzzle files.
	ErrMalformed = puzzlefile.ErrMalformed
)

// Kind distinguishes the astronaut from robots.
type Kind int

const (
	// Astronaut is the entity that must reach the goal.
	Astronaut Kind = iota
	// Robot is any other entity.
	Robot
)

// String returns "astronaut" or "robot".
func (k Kind) String() string {
	if k == Astronaut {
		return "astronaut"
	}
	return "robot"
}

// Entity is one occupant of the grid.
type Entity struct {
	Kind Kind
	Name rune
	Pos  board.Pos
}

// Move is the slide that produced a state.
type Move struct {
	Name     rune
	Dir      board.Direction
	From, To board.Pos
}

// String renders the move as "A north (2,1)->(0,1)".
func (m Move) String() string {
	return fmt.Sprintf("%c %s (%d,%d)->(%d,%d)", m.Name, m.Dir, m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// State is one placement of every entity. grid holds entity names and
// Empty; the goal is kept apart so that it never blocks a slide.
type State struct {
	grid     board.Board
	goal     board.Pos
	entities []Entity
	astro    int
	last     *Move
}

// New validates a puzzle and returns its starting state. Exactly one entity
// must be the astronaut. Names are single characters distinct from each
// other and from the Empty and GoalMark markers.
func New(rows, cols int, goal board.Pos, entities []Entity) (State, error) {
	grid, err := board.Filled(rows, cols, Empty)
	if err != nil {
		return State{}, err
	}
	if !grid.InBounds(goal) {
		return State{}, fmt.Errorf("%w: goal (%d,%d) on %dx%d grid", ErrOutOfBounds, goal.Row, goal.Col, rows, cols)
	}

	st := State{goal: goal, entities: append([]Entity(nil), entities...), astro: -1}
	names := make(map[rune]struct{}, len(entities))
	for i, e := range entities {
		switch {
		case e.Name == Empty || e.Name == GoalMark:
			return State{}, fmt.Errorf("%w: name %q is reserved", ErrEntity, e.Name)
		case !grid.InBounds(e.Pos):
			return State{}, fmt.Errorf("%w: %c at (%d,%d)", ErrOutOfBounds, e.Name, e.Pos.Row, e.Pos.Col)
		case grid.At(e.Pos) != Empty:
			return State{}, fmt.Errorf("%w: %c and %c share (%d,%d)", ErrEntity, e.Name, grid.At(e.Pos), e.Pos.Row, e.Pos.Col)
		}
		if _, dup := names[e.Name]; dup {
			return State{}, fmt.Errorf("%w: duplicate name %q", ErrEntity, e.Name)
		}
		names[e.Name] = struct{}{}
		if e.Kind == Astronaut {
			if st.astro >= 0 {
				return State{}, fmt.Errorf("%w: more than one astronaut", ErrEntity)
			}
			st.astro = i
		}
		if grid, err = grid.With(board.Cell{Pos: e.Pos, Value: e.Name}); err != nil {
			return State{}, err
		}
	}
	if st.astro < 0 {
		return State{}, fmt.Errorf("%w: no astronaut", ErrEntity)
	}
	st.grid = grid
	return st, nil
}

// Parse reads a puzzle:
//
//	rows cols
//	* row,col          goal
//	A row,col          astronaut
//	n                  robot count
//	name row,col       n robot lines
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

	goalName, goal, err := parseEntityLine(s, "goal")
	if err != nil {
		return State{}, err
	}
	if goalName != GoalMark {
		return State{}, s.Errorf("goal line must start with %q, got %q", GoalMark, goalName)
	}

	astroName, astroPos, err := parseEntityLine(s, "astronaut")
	if err != nil {
		return State{}, err
	}
	if astroName != AstronautName {
		return State{}, s.Errorf("astronaut line must start with %q, got %q", AstronautName, astroName)
	}
	entities := []Entity{{Kind: Astronaut, Name: astroName, Pos: astroPos}}

	count, err := s.Require("robot count")
	if err != nil {
		return State{}, err
	}
	n, err := strconv.Atoi(count[0])
	if err != nil || n < 0 || len(count) != 1 {
		return State{}, s.Errorf("robot count %q is not a non-negative integer", count[0])
	}
	for i := 0; i < n; i++ {
		name, pos, err := parseEntityLine(s, fmt.Sprintf("robot %d", i))
		if err != nil {
			return State{}, err
		}
		entities = append(entities, Entity{Kind: Robot, Name: name, Pos: pos})
	}

	st, err := New(rows, cols, goal, entities)
	if err != nil {
		return State{}, s.Wrap(err)
	}
	return st, nil
}

// parseEntityLine reads "<name> row,col".
func parseEntityLine(s *puzzlefile.Scanner, what string) (rune, board.Pos, error) {
	fields, err := s.Require(what)
	if err != nil {
		return 0, board.Pos{}, err
	}
	if len(fields) != 2 {
		return 0, board.Pos{}, s.Errorf("%s: want \"name row,col\", got %d fields", what, len(fields))
	}
	name, size := utf8.DecodeRuneInString(fields[0])
	if size != len(fields[0]) || name == utf8.RuneError {
		return 0, board.Pos{}, s.Errorf("%s: name %q must be a single character", what, fields[0])
	}
	pos, err := board.ParsePos(fields[1])
	if err != nil {
		return 0, board.Pos{}, s.Wrap(err)
	}
	return name, pos, nil
}

// Load reads a puzzle file.
func Load(path string) (State, error) {
	return puzzlefile.Load(path, Parse)
}

// Rows returns the grid height.
func (s State) Rows() int { return s.grid.Rows() }

// Cols returns the grid width.
func (s State) Cols() int { return s.grid.Cols() }

// Goal returns the goal cell.
func (s State) Goal() board.Pos { return s.goal }

// Astronaut returns the astronaut entity.
func (s State) Astronaut() Entity { return s.entities[s.astro] }

// Entities returns every entity, astronaut and robots, in file order.
func (s State) Entities() []Entity { return append([]Entity(nil), s.entities...) }

// Occupant returns the name at p, or Empty.
func (s State) Occupant(p board.Pos) rune { return s.grid.At(p) }

// LastMove returns the slide that produced this state, if any.
func (s State) LastMove() (Move, bool) {
	if s.last == nil {
		return Move{}, false
	}
	return *s.last, true
}

// IsGoal reports whether the astronaut stands on the goal.
func (s State) IsGoal() bool { return s.entities[s.astro].Pos == s.goal }

// Neighbors slides each entity, in file order, north, south, east and west.
func (s State) Neighbors() []State {
	var out []State
	for i := range s.entities {
		for _, d := range board.Directions(board.Conn4) {
			if next, ok := s.slide(i, d); ok {
				out = append(out, next)
			}
		}
	}
	return out
}

// slide moves entity i in direction d until the cell before the first
// occupant. ok is false when nothing blocks it or it cannot move at all.
func (s State) slide(i int, d board.Direction) (State, bool) {
	e := s.entities[i]
	p := e.Pos.Step(d, 1)
	for s.grid.InBounds(p) && s.grid.At(p) == Empty {
		p = p.Step(d, 1)
	}
	if !s.grid.InBounds(p) {
		return State{}, false
	}
	stop := p.Step(d, -1)
	if stop == e.Pos {
		return State{}, false
	}

	grid, err := s.grid.With(
		board.Cell{Pos: e.Pos, Value: Empty},
		board.Cell{Pos: stop, Value: e.Name},
	)
	if err != nil {
		return State{}, false
	}
	entities := append([]Entity(nil), s.entities...)
	entities[i].Pos = stop
	return State{
		grid:     grid,
		goal:     s.goal,
		entities: entities,
		astro:    s.astro,
		last:     &Move{Name: e.Name, Dir: d, From: e.Pos, To: stop},
	}, true
}

// Key identifies the state by the occupant of every cell.
func (s State) Key() string { return s.grid.Key() }

// String renders the grid, marking an unoccupied goal with GoalMark.
func (s State) String() string {
	if s.grid.At(s.goal) != Empty {
		return s.grid.String()
	}
	g, err := s.grid.With(board.Cell{Pos: s.goal, Value: GoalMark})
	if err != nil {
		return s.grid.String()
	}
	return g.String()
}
