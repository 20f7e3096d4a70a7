// Package cursor tracks the editing position and the visible window of lines.
//
// A Cursor is a (Row, Col) pair where Col may equal the line length
// ("after the last character"). A Viewport is the window of Height lines
// starting at Offset. Move applies one directional input to both, keeping
// the cursor inside the document and the viewport around the cursor row.
//
// Vertical movement resets the column to 0; the column is not sticky
// across rows.
//
// Basic usage:
//
//	cur := cursor.Cursor{}
//	vp := cursor.NewViewport(24)
//	cursor.Move(doc, &cur, &vp, cursor.Down)
//
// Cursor and Viewport are plain values and carry no synchronization.
package cursor
