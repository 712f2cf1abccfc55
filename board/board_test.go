package board_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlesolver/board"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]rune
		err  error
	}{
		{"EmptyRows", [][]rune{}, board.ErrEmptyGrid},
		{"EmptyCols", [][]rune{{}}, board.ErrEmptyGrid},
		{"NonRectangular", [][]rune{{'a', 'b'}, {'c'}}, board.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	grid := [][]rune{{'a', 'b'}, {'c', 'd'}}
	b, err := board.New(grid)
	require.NoError(t, err)
	grid[0][0] = 'z'
	require.Equal(t, 'a', b.At(board.Pos{Row: 0, Col: 0}))
}

// TestInBounds checks InBounds on a 2×3 board.
func TestInBounds(t *testing.T) {
	b, err := board.Filled(2, 3, '.')
	require.NoError(t, err)

	for _, p := range []board.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}} {
		if !b.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	for _, p := range []board.Pos{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}} {
		if b.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestFilled_Errors rejects non-positive dimensions.
func TestFilled_Errors(t *testing.T) {
	_, err := board.Filled(0, 3, '.')
	require.ErrorIs(t, err, board.ErrDimensions)

	_, err = board.Filled(board.MaxCells+1, 1, '.')
	require.ErrorIs(t, err, board.ErrDimensions)

	// the product would overflow int
	_, err = board.Filled(math.MaxInt, 2, '.')
	require.ErrorIs(t, err, board.ErrDimensions)

	b, err := board.Filled(1, board.MaxCells, '.')
	require.NoError(t, err)
	require.Equal(t, board.MaxCells, b.Cols())
}

//----------------------------------------------------------------------------//
// Update, identity and rendering
//----------------------------------------------------------------------------//

// TestWith_Immutable verifies With returns a modified copy only.
func TestWith_Immutable(t *testing.T) {
	b, err := board.Filled(2, 2, '.')
	require.NoError(t, err)

	b2, err := b.With(board.Cell{Pos: board.Pos{Row: 1, Col: 0}, Value: 'G'})
	require.NoError(t, err)
	require.Equal(t, '.', b.At(board.Pos{Row: 1, Col: 0}))
	require.Equal(t, 'G', b2.At(board.Pos{Row: 1, Col: 0}))
	require.False(t, b.Equal(b2))
	require.NotEqual(t, b.Key(), b2.Key())

	_, err = b.With(board.Cell{Pos: board.Pos{Row: 2, Col: 0}, Value: 'x'})
	require.ErrorIs(t, err, board.ErrOutOfBounds)
}

// TestKey_Dimensions distinguishes boards with equal cells but different shapes.
func TestKey_Dimensions(t *testing.T) {
	a, _ := board.Filled(1, 4, '.')
	b, _ := board.Filled(2, 2, '.')
	require.NotEqual(t, a.Key(), b.Key())
	require.False(t, a.Equal(b))

	c, _ := board.Filled(2, 2, '.')
	require.Equal(t, b.Key(), c.Key())
	require.True(t, b.Equal(c))
}

// TestCountFindCoordinate covers the lookup helpers.
func TestCountFindCoordinate(t *testing.T) {
	b, err := board.New([][]rune{{'G', '.', 'R'}, {'.', 'G', '.'}})
	require.NoError(t, err)
	require.Equal(t, 2, b.Count('G'))
	require.Equal(t, []board.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, b.Find('G'))
	require.Equal(t, board.Pos{Row: 1, Col: 2}, b.Coordinate(5))
	require.Equal(t, "G . R\n. G .\n", b.String())
}

//----------------------------------------------------------------------------//
// Directions and positions
//----------------------------------------------------------------------------//

// TestDirections verifies the direction sets and their offsets.
func TestDirections(t *testing.T) {
	require.Len(t, board.Directions(board.Conn4), 4)
	require.Len(t, board.Directions(board.Conn8), 8)
	for _, d := range board.Directions(board.Conn4) {
		require.False(t, d.Diagonal(), d.String())
	}

	p := board.Pos{Row: 4, Col: 4}
	require.Equal(t, board.Pos{Row: 2, Col: 6}, p.Step(board.NorthEast, 2))
	require.Equal(t, board.Pos{Row: 4, Col: 0}, p.Step(board.West, 4))
	require.Equal(t, board.Pos{Row: 3, Col: 5}, p.Midpoint(board.Pos{Row: 2, Col: 6}))
	require.Equal(t, "south-west", board.SouthWest.String())
	require.Equal(t, "unknown", board.Direction(42).String())
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestParseDims covers valid and invalid headers.
func TestParseDims(t *testing.T) {
	r, c, err := board.ParseDims([]string{"5", "7"})
	require.NoError(t, err)
	require.Equal(t, 5, r)
	require.Equal(t, 7, c)

	for _, bad := range [][]string{
		{"5"}, {"a", "2"}, {"2", "b"}, {"0", "3"}, {"3", "-1"},
		{"100000000000000", "1"},     // far beyond MaxCells
		{"4000000000", "4000000000"}, // rows*cols overflows
		{"1025", "1024"},             // one row past MaxCells
	} {
		_, _, err := board.ParseDims(bad)
		require.ErrorIs(t, err, board.ErrDimensions, "%v", bad)
	}
}

// TestParsePos covers coordinates.
func TestParsePos(t *testing.T) {
	p, err := board.ParsePos("3,12")
	require.NoError(t, err)
	require.Equal(t, board.Pos{Row: 3, Col: 12}, p)

	for _, bad := range []string{"3", "a,1", "1,b", ""} {
		_, err := board.ParsePos(bad)
		require.Error(t, err, bad)
	}
}

// TestParseGrid covers row/column mismatches and cell tokens.
func TestParseGrid(t *testing.T) {
	split := func(rows ...string) [][]string {
		out := make([][]string, len(rows))
		for i, r := range rows {
			out[i] = strings.Fields(r)
		}
		return out
	}

	b, err := board.ParseGrid(2, 3, split("G . *", ". R ."))
	require.NoError(t, err)
	require.Equal(t, 'R', b.At(board.Pos{Row: 1, Col: 1}))

	_, err = board.ParseGrid(3, 3, split("G . *", ". R ."))
	require.ErrorIs(t, err, board.ErrDimensions)

	_, err = board.ParseGrid(2, 3, split("G . *", ". R"))
	require.ErrorIs(t, err, board.ErrDimensions)

	_, err = board.ParseGrid(1, 2, split("GG ."))
	require.ErrorIs(t, err, board.ErrCell)

	// a lone invalid UTF-8 byte is not a cell
	_, err = board.ParseGrid(1, 2, split("\xff ."))
	require.ErrorIs(t, err, board.ErrCell)
}
