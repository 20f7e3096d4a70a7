package cursor

import "fmt"

// Direction is a directional movement input.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", d)
	}
}

// Move applies one directional input to cur and vp.
//
// Up and Down reset the column to 0 and scroll by one line when the new
// row falls just outside the viewport. Right at the end of a line wraps to
// the start of the next one; Left at the start of a line wraps to the end
// of the previous one. Movement past either end of the document is a no-op.
func Move(lines LineSource, cur *Cursor, vp *Viewport, dir Direction) {
	switch dir {
	case Up:
		if cur.Row > 0 {
			cur.Row--
			cur.Col = 0
		}
		if cur.Row == vp.Offset-1 {
			vp.Offset--
		}
	case Down:
		if cur.Row < lines.Len()-1 {
			cur.Row++
			cur.Col = 0
		}
		if cur.Row == vp.Bottom() {
			vp.Offset++
		}
	case Right:
		size := lines.LineLen(cur.Row)
		switch {
		case cur.Col == size && cur.Row == lines.Len()-1:
			return
		case cur.Col == size:
			cur.Row++
			cur.Col = 0
		default:
			cur.Col++
		}
	case Left:
		switch {
		case cur.AtStart():
			return
		case cur.Col == 0:
			cur.Row--
			cur.Col = lines.LineLen(cur.Row)
		default:
			cur.Col--
		}
	}
	vp.Follow(cur.Row)
}
