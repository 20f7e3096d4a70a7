// Package document holds the ordered sequence of lines being edited.
//
// Each Line owns one store.Store; the store kind is chosen once per
// Document. A Document always has at least one line: loading empty input
// yields a single empty line.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/buffalo/internal/engine/store"
)

// ErrRowOutOfRange indicates a line index outside the document.
var ErrRowOutOfRange = errors.New("row out of range")

// Line is one line of text without its separator.
type Line struct {
	s store.Store
}

// Len returns the number of characters in the line.
func (l *Line) Len() int {
	return l.s.Len()
}

// Bytes returns a copy of the line's content.
func (l *Line) Bytes() []byte {
	return l.s.Bytes()
}

// String returns the line's content.
func (l *Line) String() string {
	return string(l.s.Bytes())
}

// Store returns the backing store.
func (l *Line) Store() store.Store {
	return l.s
}

// Insert inserts ch before col.
func (l *Line) Insert(col int, ch byte) error {
	return l.s.Insert(col, ch)
}

// Delete removes the character before col.
func (l *Line) Delete(col int) error {
	return l.s.Delete(col)
}

// Split truncates the line at col and returns a new line holding the rest.
func (l *Line) Split(col int) (*Line, error) {
	tail, err := l.s.Split(col)
	if err != nil {
		return nil, err
	}
	return &Line{s: tail}, nil
}

// Append adds other's content to the end of the line.
func (l *Line) Append(other *Line) error {
	return l.s.Append(other.s)
}

// Document is an ordered sequence of lines.
type Document struct {
	kind  store.Kind
	lines []*Line
}

// New creates a document with a single empty line.
func New(kind store.Kind) (*Document, error) {
	return FromLines(kind, nil)
}

// FromLines creates a document holding the given lines.
// An empty slice produces one empty line.
func FromLines(kind store.Kind, lines []string) (*Document, error) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	d := &Document{kind: kind, lines: make([]*Line, 0, len(lines))}
	for _, text := range lines {
		l, err := d.NewLine([]byte(text))
		if err != nil {
			return nil, err
		}
		d.lines = append(d.lines, l)
	}
	return d, nil
}

// Kind returns the store kind used for every line.
func (d *Document) Kind() store.Kind {
	return d.kind
}

// NewLine creates a detached line using the document's store kind.
func (d *Document) NewLine(content []byte) (*Line, error) {
	s, err := store.New(d.kind, content)
	if err != nil {
		return nil, err
	}
	return &Line{s: s}, nil
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the line at row, or nil if row is out of range.
func (d *Document) Line(row int) *Line {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	return d.lines[row]
}

// LineLen returns the length of the line at row, or 0 if out of range.
func (d *Document) LineLen(row int) int {
	if l := d.Line(row); l != nil {
		return l.Len()
	}
	return 0
}

// InsertLine inserts l so that it becomes line row. Requires 0 <= row <= Len().
func (d *Document) InsertLine(row int, l *Line) error {
	if row < 0 || row > len(d.lines) {
		return fmt.Errorf("insert line: %w: %d of %d", ErrRowOutOfRange, row, len(d.lines))
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[row+1:], d.lines[row:])
	d.lines[row] = l
	return nil
}

// RemoveLine removes line row and returns it.
func (d *Document) RemoveLine(row int) (*Line, error) {
	if row < 0 || row >= len(d.lines) {
		return nil, fmt.Errorf("remove line: %w: %d of %d", ErrRowOutOfRange, row, len(d.lines))
	}
	l := d.lines[row]
	copy(d.lines[row:], d.lines[row+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
	return l, nil
}

// Lines returns the content of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}

// String returns the document content joined with line feeds.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// Release drops line storage at session end.
func (d *Document) Release() {
	for i, l := range d.lines {
		if r, ok := l.s.(*store.Rope); ok {
			r.Release()
		}
		d.lines[i] = nil
	}
	d.lines = nil
}
