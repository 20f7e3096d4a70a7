package engine

import (
	"fmt"

	"github.com/dshills/buffalo/internal/engine/cursor"
	"github.com/dshills/buffalo/internal/engine/document"
)

// The functions in this file are the only writers of a Document. Each
// leaves cur inside the document on every return path.

// currentLine returns the line under cur after validating the cursor.
func currentLine(doc *document.Document, cur *cursor.Cursor) (*document.Line, error) {
	line := doc.Line(cur.Row)
	if line == nil || cur.Col < 0 || cur.Col > line.Len() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, *cur)
	}
	return line, nil
}

// InsertChar writes ch at the cursor and advances the column.
func InsertChar(doc *document.Document, cur *cursor.Cursor, ch byte) error {
	if ch == '\n' {
		return ErrLineFeed
	}
	line, err := currentLine(doc, cur)
	if err != nil {
		return err
	}
	if err := line.Insert(cur.Col, ch); err != nil {
		return err
	}
	cur.Col++
	return nil
}

// DeleteCharBefore removes the character before the cursor. At the start
// of a line other than the first, the line is joined onto the previous one.
// At (0, 0) it does nothing.
func DeleteCharBefore(doc *document.Document, cur *cursor.Cursor) error {
	line, err := currentLine(doc, cur)
	if err != nil {
		return err
	}
	switch {
	case cur.Col > 0:
		if err := line.Delete(cur.Col); err != nil {
			return err
		}
		cur.Col--
		return nil
	case cur.Row > 0:
		return joinWithPrevious(doc, cur)
	default:
		return nil
	}
}

// SplitLine breaks the current line at the cursor. At column 0 an empty
// line is inserted above instead. The cursor ends at the start of the
// following line.
func SplitLine(doc *document.Document, cur *cursor.Cursor) error {
	line, err := currentLine(doc, cur)
	if err != nil {
		return err
	}
	if cur.Col == 0 {
		empty, err := doc.NewLine(nil)
		if err != nil {
			return err
		}
		if err := doc.InsertLine(cur.Row, empty); err != nil {
			return err
		}
	} else {
		tail, err := line.Split(cur.Col)
		if err != nil {
			return err
		}
		if err := doc.InsertLine(cur.Row+1, tail); err != nil {
			return err
		}
	}
	cur.Row++
	cur.Col = 0
	return nil
}

// joinWithPrevious appends the current line onto the previous one, removes
// it, and places the cursor at the join point.
func joinWithPrevious(doc *document.Document, cur *cursor.Cursor) error {
	if cur.Row == 0 {
		return nil
	}
	prev := doc.Line(cur.Row - 1)
	line := doc.Line(cur.Row)
	if prev == nil || line == nil {
		return fmt.Errorf("%w: %v", ErrInvalidCursor, *cur)
	}
	col := prev.Len()
	if err := prev.Append(line); err != nil {
		return err
	}
	if _, err := doc.RemoveLine(cur.Row); err != nil {
		return err
	}
	cur.Row--
	cur.Col = col
	return nil
}
