package cursor

import (
	"errors"
	"fmt"
)

// Errors reported by Validate.
var (
	// ErrCursorOutOfBounds indicates the cursor lies outside the document.
	ErrCursorOutOfBounds = errors.New("cursor out of bounds")

	// ErrRowNotVisible indicates the cursor row lies outside the viewport.
	ErrRowNotVisible = errors.New("cursor row not visible")
)

// LineSource is the read-only view of a document the tracker needs.
type LineSource interface {
	// Len returns the number of lines.
	Len() int
	// LineLen returns the number of characters on row.
	LineLen(row int) int
}

// Cursor is a logical position in the document. Both fields are 0-indexed.
type Cursor struct {
	Row int
	Col int
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Row, c.Col)
}

// AtStart returns true at (0, 0).
func (c Cursor) AtStart() bool {
	return c.Row == 0 && c.Col == 0
}

// Clamp returns the cursor moved to the nearest valid position in lines.
func (c Cursor) Clamp(lines LineSource) Cursor {
	last := lines.Len() - 1
	if last < 0 {
		return Cursor{}
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > last {
		c.Row = last
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if n := lines.LineLen(c.Row); c.Col > n {
		c.Col = n
	}
	return c
}

// Validate reports whether cur and vp satisfy the position invariants:
// 0 <= Row < Len, 0 <= Col <= LineLen(Row), Offset <= Row < Offset+Height.
func Validate(lines LineSource, cur Cursor, vp Viewport) error {
	if cur.Row < 0 || cur.Row >= lines.Len() {
		return fmt.Errorf("%w: row %d of %d lines", ErrCursorOutOfBounds, cur.Row, lines.Len())
	}
	if n := lines.LineLen(cur.Row); cur.Col < 0 || cur.Col > n {
		return fmt.Errorf("%w: col %d on line of length %d", ErrCursorOutOfBounds, cur.Col, n)
	}
	if vp.Offset < 0 || !vp.Contains(cur.Row) {
		return fmt.Errorf("%w: row %d, viewport [%d, %d)", ErrRowNotVisible, cur.Row, vp.Offset, vp.Offset+vp.Height)
	}
	return nil
}
