// Package board models the rectangular game boards of the grid puzzles as
// immutable values.
//
// What:
//
//   - Board wraps a rows×cols grid of runes; every update returns a new Board.
//   - Pos, Direction and Connectivity describe moves: Conn4 for the four
//     orthogonal directions, Conn8 adding the diagonals.
//   - Key gives an exact cell-by-cell identity suitable for state.State.
//   - ParseDims, ParsePos and ParseGrid read the "rows cols" headers,
//     "row,col" coordinates and whitespace-separated rows of puzzle files.
//
// Why:
//
//   - Board dimensions live on the value, so copies of a configuration never
//     share mutable size or goal fields.
//
// Complexity:
//
//   - At, InBounds, Coordinate: O(1).
//   - With, Count, Find, Key, Equal: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensions: bad header, or row/column counts disagree with it.
//   - ErrCell: a cell token is not a single character.
//   - ErrOutOfBounds: an update targets a cell outside the board.
package board
