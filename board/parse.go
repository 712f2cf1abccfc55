package board

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ParseDims parses a "rows cols" header already split into fields.
// Both values must be positive integers and rows×cols at most MaxCells.
func ParseDims(fields []string) (rows, cols int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"rows cols\", got %d fields", ErrDimensions, len(fields))
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q: %v", ErrDimensions, fields[0], err)
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cols %q: %v", ErrDimensions, fields[1], err)
	}
	if err := checkDims(rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// checkDims requires positive dimensions whose product fits in MaxCells.
// The division keeps rows*cols from overflowing.
func checkDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > MaxCells/cols {
		return fmt.Errorf("%w: %dx%d (at most %d cells)", ErrDimensions, rows, cols, MaxCells)
	}
	return nil
}

// ParsePos parses a "row,col" coordinate.
func ParsePos(s string) (Pos, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		r, err := strconv.Atoi(s[:i])
		if err != nil {
			return Pos{}, fmt.Errorf("board: row in %q: %w", s, err)
		}
		c, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return Pos{}, fmt.Errorf("board: column in %q: %w", s, err)
		}
		return Pos{Row: r, Col: c}, nil
	}
	return Pos{}, fmt.Errorf("board: coordinate %q is not \"row,col\"", s)
}

// ParseGrid builds a rows×cols board from pre-split rows of single-character
// tokens, e.g. the fields of "G . R". Returns ErrDimensions when the number
// of rows or tokens disagrees with the header and ErrCell for multi-character
// tokens.
func ParseGrid(rows, cols int, lines [][]string) (Board, error) {
	if len(lines) != rows {
		return Board{}, fmt.Errorf("%w: header says %d rows, got %d", ErrDimensions, rows, len(lines))
	}
	grid := make([][]rune, rows)
	for r, fields := range lines {
		if len(fields) != cols {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensions, r, len(fields), cols)
		}
		grid[r] = make([]rune, cols)
		for c, tok := range fields {
			v, size := utf8.DecodeRuneInString(tok)
			if size == 0 || size != len(tok) || v == utf8.RuneError {
				return Board{}, fmt.Errorf("%w: row %d col %d: %q", ErrCell, r, c, tok)
			}
			grid[r][c] = v
		}
	}
	return New(grid)
}
