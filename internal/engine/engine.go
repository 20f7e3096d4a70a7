package engine

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/dshills/buffalo/internal/engine/cursor"
	"github.com/dshills/buffalo/internal/engine/document"
	"github.com/dshills/buffalo/internal/engine/store"
)

// Re-export commonly used types for convenience.
type (
	// Cursor is a (row, col) editing position.
	Cursor = cursor.Cursor

	// Viewport is the window of visible rows.
	Viewport = cursor.Viewport

	// Direction is a directional movement input.
	Direction = cursor.Direction
)

// Re-export constants.
const (
	Up    = cursor.Up
	Down  = cursor.Down
	Left  = cursor.Left
	Right = cursor.Right
)

// Snapshot is a read-only copy of the state needed to paint the screen.
type Snapshot struct {
	// Lines holds the content of the visible rows, starting at Viewport.Offset.
	Lines []string

	// LineCount is the total number of lines in the document.
	LineCount int

	Cursor   Cursor
	Viewport Viewport
	Modified bool
}

// Engine is the editing session: one document, its cursor and viewport.
//
// Engine is the single writer of its document. Every exported method takes
// the engine's lock; methods with a Locked suffix assume it is held. Input
// handling and redraw may run on different goroutines.
type Engine struct {
	mu sync.Mutex

	doc      *document.Document
	cur      cursor.Cursor
	vp       cursor.Viewport
	modified bool

	// Configuration
	kind     store.Kind
	height   int
	readOnly bool

	// Initialization
	initContent string
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		kind:   DefaultStoreKind,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.vp = cursor.NewViewport(e.height)
	return e
}

// New creates an Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	doc, err := document.Read(strings.NewReader(e.initContent), e.kind)
	if err != nil {
		return nil, err
	}
	e.doc = doc
	return e, nil
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	doc, err := document.Read(r, e.kind)
	if err != nil {
		return nil, err
	}
	e.doc = doc
	return e, nil
}

// ============================================================================
// Write Operations
// ============================================================================

// InsertChar inserts ch at the cursor.
func (e *Engine) InsertChar(ch byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editLocked(func() (bool, error) {
		return true, InsertChar(e.doc, &e.cur, ch)
	})
}

// DeleteCharBefore deletes backwards from the cursor, joining lines at column 0.
func (e *Engine) DeleteCharBefore() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editLocked(func() (bool, error) {
		if e.cur.AtStart() {
			return false, nil
		}
		return true, DeleteCharBefore(e.doc, &e.cur)
	})
}

// SplitLine breaks the current line at the cursor.
func (e *Engine) SplitLine() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editLocked(func() (bool, error) {
		return true, SplitLine(e.doc, &e.cur)
	})
}

// editLocked runs fn as a document mutation, marks the document modified
// when fn reports a change, and re-establishes the cursor and viewport.
// A rejected edit still leaves the cursor inside the document.
func (e *Engine) editLocked(fn func() (bool, error)) error {
	if e.doc == nil {
		return ErrClosed
	}
	if e.readOnly {
		return ErrReadOnly
	}
	changed, err := fn()
	if err == nil && changed {
		e.modified = true
	}
	e.cur = e.cur.Clamp(e.doc)
	e.vp.Follow(e.cur.Row)
	return err
}

// ============================================================================
// Cursor and Viewport
// ============================================================================

// Move applies a directional input to the cursor and viewport.
func (e *Engine) Move(dir Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return
	}
	cursor.Move(e.doc, &e.cur, &e.vp, dir)
}

// Resize changes the viewport height, keeping the cursor row visible.
func (e *Engine) Resize(height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vp.Resize(height, e.cur.Row)
}

// Cursor returns the current cursor position.
func (e *Engine) Cursor() Cursor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur
}

// Viewport returns the current viewport.
func (e *Engine) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp
}

// ============================================================================
// Read Operations
// ============================================================================

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return 0
	}
	return e.doc.Len()
}

// LineText returns the content of row, and false if row does not exist.
func (e *Engine) LineText(row int) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return "", false
	}
	l := e.doc.Line(row)
	if l == nil {
		return "", false
	}
	return l.String(), true
}

// Lines returns the content of every line.
// For large documents, prefer Snapshot which only copies visible rows.
func (e *Engine) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return nil
	}
	return e.doc.Lines()
}

// ReadOnly reports whether edits are refused.
func (e *Engine) ReadOnly() bool {
	return e.readOnly
}

// StoreKind returns the backing store kind.
func (e *Engine) StoreKind() store.Kind {
	return e.kind
}

// Modified returns true if the document changed since load or the last save.
func (e *Engine) Modified() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.modified
}

// Snapshot copies the visible rows and the cursor state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Cursor:   e.cur,
		Viewport: e.vp,
		Modified: e.modified,
	}
	if e.doc == nil {
		return snap
	}
	snap.LineCount = e.doc.Len()
	for row := e.vp.Offset; row < e.vp.Bottom() && row < e.doc.Len(); row++ {
		snap.Lines = append(snap.Lines, e.doc.Line(row).String())
	}
	return snap
}

// Save materializes the whole document and passes it to commit, which
// persists it. The modified flag is cleared only when commit succeeds.
// The lock is held until commit returns, so no edit can interleave with a
// save. A read-only engine returns ErrReadOnly without calling commit.
func (e *Engine) Save(commit func(content []byte) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return ErrClosed
	}
	if e.readOnly {
		return ErrReadOnly
	}

	var buf bytes.Buffer
	if _, err := e.doc.WriteTo(&buf); err != nil {
		return err
	}
	if err := commit(buf.Bytes()); err != nil {
		return err
	}
	e.modified = false
	return nil
}

// Close releases the document's storage. Later edits return ErrClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc != nil {
		e.doc.Release()
		e.doc = nil
	}
}
