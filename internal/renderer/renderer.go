package renderer

import (
	"fmt"
	"sync"

	"github.com/dshills/buffalo/internal/engine"
	"github.com/dshills/buffalo/internal/renderer/backend"
)

// Screen layout.
const (
	HeaderHeight = 1
	FooterHeight = 1

	// separators below the header and above the footer
	separatorRows = 2

	// Title is shown centered in the header.
	Title = "buffalo"
)

// EditorHeight returns the number of text rows for a screen height.
// It is never less than 1.
func EditorHeight(screenHeight int) int {
	h := screenHeight - HeaderHeight - FooterHeight - separatorRows
	if h < 1 {
		return 1
	}
	return h
}

// TextTop is the first screen row used for document text.
const TextTop = HeaderHeight + 1

// Renderer draws snapshots onto a backend.
type Renderer struct {
	mu       sync.Mutex
	backend  backend.Backend
	filename string
	frames   uint64
}

// New creates a renderer for the named file.
func New(b backend.Backend, filename string) *Renderer {
	return &Renderer{
		backend:  b,
		filename: filename,
	}
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Render clears the screen and draws the header, the visible text,
// the separators and the footer message, then places the cursor.
func (r *Renderer) Render(snap engine.Snapshot, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}

	r.backend.HideCursor()
	r.backend.Clear()

	r.drawHeader(snap, width)
	r.drawSeparator(HeaderHeight, width)
	r.drawSeparator(height-FooterHeight-1, width)

	bottom := height - FooterHeight - 1
	for i, line := range snap.Lines {
		y := TextTop + i
		if y >= bottom {
			break
		}
		r.drawText(0, y, width, line, backend.AttrNone)
	}

	r.drawText(0, height-1, width, message, backend.AttrNone)

	x, y := CursorPosition(snap)
	if y < bottom && x < width {
		r.backend.ShowCursor(x, y)
	}

	r.backend.Show()
	r.frames++
}

// CursorPosition returns the screen cell of the snapshot's cursor.
func CursorPosition(snap engine.Snapshot) (x, y int) {
	return snap.Cursor.Col, snap.Cursor.Row - snap.Viewport.Offset + TextTop
}

// HeaderText returns the cursor position label shown at the left of the header.
func HeaderText(snap engine.Snapshot) string {
	return fmt.Sprintf("Ln %d, Col %d", snap.Cursor.Row+1, snap.Cursor.Col+1)
}

func (r *Renderer) drawHeader(snap engine.Snapshot, width int) {
	// Right to left, so the position label wins on narrow screens.
	r.drawText(width-len(r.filename), 0, width, r.filename, backend.AttrNone)
	r.drawText((width-len(Title))/2, 0, width, Title, backend.AttrBold)
	r.drawText(0, 0, width, HeaderText(snap), backend.AttrNone)
}

func (r *Renderer) drawSeparator(y, width int) {
	if y <= HeaderHeight-1 {
		return
	}
	for x := 0; x < width; x++ {
		r.backend.SetCell(x, y, backend.NewCell('-'))
	}
}

// drawText writes s starting at x, clipped to [0, width).
func (r *Renderer) drawText(x, y, width int, s string, attr backend.Attr) {
	for i := 0; i < len(s); i++ {
		cx := x + i
		if cx < 0 {
			continue
		}
		if cx >= width {
			return
		}
		r.backend.SetCell(cx, y, backend.Cell{Rune: displayRune(s[i]), Attr: attr})
	}
}

// displayRune maps a document byte to a single screen cell.
func displayRune(b byte) rune {
	switch {
	case b == '\t':
		return ' '
	case b < 0x20 || b >= 0x7f:
		return '?'
	}
	return rune(b)
}
