// Package engine provides the editing core of buffalo.
//
// The engine package combines a document, a cursor and a viewport into a
// single editing session with a small set of operations: insert a
// character, delete backwards, split a line and move the cursor.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - store: pluggable backing storage for a run of text (array, gap buffer, rope)
//   - document: ordered lines, each owning one store, plus load/save
//   - cursor: (row, col) position, viewport and directional movement rules
//
// The edit functions InsertChar, DeleteCharBefore and SplitLine operate on
// an explicit document and cursor and are the only code that mutates a
// document. Engine wraps them with locking, the modified flag and viewport
// maintenance.
//
// # Thread Safety
//
// All Engine methods are safe for concurrent use. One mutex serializes
// edits, movement, snapshots and saves, so a redraw never observes a
// half-applied edit and a save never races an edit.
//
// # Basic Usage
//
//	e, _ := engine.New(engine.WithContent("ab\ncd"), engine.WithHeight(20))
//	e.Move(engine.Down)        // (1,0)
//	_ = e.InsertChar('X')      // "Xcd", cursor (1,1)
//	_ = e.SplitLine()          // "X", "cd", cursor (2,0)
//	snap := e.Snapshot()       // visible rows for rendering
//	_ = e.Save(func(b []byte) error {
//		return os.WriteFile(path, b, 0o644) // "ab\nX\ncd"
//	})
//
// # Store Selection
//
// Every line of a document uses the same store kind:
//
//	e, _ := engine.NewFromReader(f, engine.WithStoreKind(store.KindRope))
package engine
