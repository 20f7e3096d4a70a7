package store

// DefaultGapSize is the initial capacity of an empty gap buffer.
const DefaultGapSize = 16

// Gap is a gap buffer: one array with a movable empty region [left, right).
//
// Live text is data[:left] followed by data[right:]. Edits move the gap to
// the edit point one slot at a time, so consecutive edits at the same place
// cost O(1) and a seek costs O(distance).
type Gap struct {
	data  []byte
	left  int
	right int
}

// NewGap creates a gap buffer holding a copy of content with the gap at the end.
func NewGap(content []byte) *Gap {
	size := DefaultGapSize
	for size <= len(content)+1 {
		size *= 2
	}
	g := &Gap{data: make([]byte, size)}
	copy(g.data, content)
	g.left = len(content)
	g.right = size
	return g
}

// Len returns the number of live bytes.
func (g *Gap) Len() int {
	return g.left + (len(g.data) - g.right)
}

// Cap returns the size of the underlying array, gap included.
func (g *Gap) Cap() int {
	return len(g.data)
}

// Gap returns the current gap bounds.
func (g *Gap) Gap() (left, right int) {
	return g.left, g.right
}

// cursorForward moves the gap one slot right by copying the first byte
// after the gap to its left edge.
func (g *Gap) cursorForward() {
	if g.right < len(g.data) {
		g.data[g.left] = g.data[g.right]
		g.left++
		g.right++
	}
}

// cursorBackward moves the gap one slot left by copying the last byte
// before the gap to its right edge.
func (g *Gap) cursorBackward() {
	if g.left > 0 {
		g.data[g.right-1] = g.data[g.left-1]
		g.left--
		g.right--
	}
}

// Seek moves the gap so that it starts at index.
func (g *Gap) Seek(index int) error {
	if err := checkIndex("seek", index, g.Len()); err != nil {
		return err
	}
	g.moveTo(index)
	return nil
}

func (g *Gap) moveTo(index int) {
	for g.left < index {
		g.cursorForward()
	}
	for g.left > index {
		g.cursorBackward()
	}
}

// expand doubles the array, keeping the left run in place and shifting the
// right run by the size delta so the extra room lands in the gap.
func (g *Gap) expand() {
	size := len(g.data)
	newSize := size * 2
	if newSize == 0 {
		newSize = DefaultGapSize
	}
	delta := newSize - size
	data := make([]byte, newSize)
	copy(data, g.data[:g.left])
	copy(data[g.right+delta:], g.data[g.right:])
	g.data = data
	g.right += delta
}

// Insert inserts ch before index.
func (g *Gap) Insert(index int, ch byte) error {
	if err := checkIndex("insert", index, g.Len()); err != nil {
		return err
	}
	g.moveTo(index)
	g.insertAtGap(ch)
	return nil
}

func (g *Gap) insertAtGap(ch byte) {
	if g.left >= g.right-1 {
		g.expand()
	}
	g.data[g.left] = ch
	g.left++
}

// InsertBytes inserts chars before index.
func (g *Gap) InsertBytes(index int, chars []byte) error {
	if err := checkIndex("insert", index, g.Len()); err != nil {
		return err
	}
	g.moveTo(index)
	for g.right-g.left <= len(chars) {
		g.expand()
	}
	copy(g.data[g.left:], chars)
	g.left += len(chars)
	return nil
}

// Delete removes the byte before index by widening the gap leftwards.
func (g *Gap) Delete(index int) error {
	if err := checkIndex("delete", index, g.Len()); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	g.moveTo(index)
	g.left--
	return nil
}

// ByteAt returns the byte at index without moving the gap.
func (g *Gap) ByteAt(index int) (byte, error) {
	if index < 0 || index >= g.Len() {
		return 0, outOfRange("byte at", index, g.Len())
	}
	if index < g.left {
		return g.data[index], nil
	}
	return g.data[g.right+(index-g.left)], nil
}

// Split truncates to [0, index) and returns the remainder in a new gap buffer.
func (g *Gap) Split(index int) (Store, error) {
	if err := checkIndex("split", index, g.Len()); err != nil {
		return nil, err
	}
	g.moveTo(index)
	tail := NewGap(g.data[g.right:])
	g.right = len(g.data)
	return tail, nil
}

// Append adds other's content at the end.
func (g *Gap) Append(other Store) error {
	if other == nil {
		return nil
	}
	return g.InsertBytes(g.Len(), other.Bytes())
}

// Bytes returns the live text with the gap removed.
func (g *Gap) Bytes() []byte {
	out := make([]byte, 0, g.Len())
	out = append(out, g.data[:g.left]...)
	out = append(out, g.data[g.right:]...)
	return out
}
