// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

// Package grid holds the board values and the selection cursor. The cursor
// is the only mutable state in the application: a (row, column) pair that
// wraps around at the board edges on each axis independently.
package grid

// Rows and Cols are the fixed board dimensions.
const (
	Rows = 3
	Cols = 3
)

// Grid is the immutable set of cell values, indexed [row][column].
type Grid [Rows][Cols]string

// New returns the default board with cells labeled "1" through "9".
func New() Grid {
	return Grid{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	}
}

// Value returns the cell value at (row, col). Callers are expected to pass
// in-bounds coordinates; the cursor can never produce anything else.
func (g Grid) Value(row, col int) string {
	return g[row][col]
}

// Cursor is the selection position. Both fields always lie within board
// bounds; there is no unselected state. The zero value selects (0, 0).
type Cursor struct {
	Row int
	Col int
}

// NextRow moves the cursor down one row, wrapping to the top edge.
func (c *Cursor) NextRow() {
	c.Row = (c.Row + 1) % Rows
}

// PrevRow moves the cursor up one row, wrapping to the bottom edge.
func (c *Cursor) PrevRow() {
	c.Row = (c.Row - 1 + Rows) % Rows
}

// NextColumn moves the cursor right one column, wrapping to the left edge.
func (c *Cursor) NextColumn() {
	c.Col = (c.Col + 1) % Cols
}

// PrevColumn moves the cursor left one column, wrapping to the right edge.
func (c *Cursor) PrevColumn() {
	c.Col = (c.Col - 1 + Cols) % Cols
}
