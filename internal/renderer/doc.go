// Package renderer paints the editor screen from an engine snapshot.
//
// The screen is laid out top to bottom as:
//
//	┌─────────────────────────────────────────┐
//	│ Ln 3, Col 7        buffalo      main.go │  header
//	│-----------------------------------------│
//	│ text rows, Viewport.Height of them      │
//	│-----------------------------------------│
//	│ footer message                          │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, "main.go")
//	r.Render(eng.Snapshot(), "")
package renderer
