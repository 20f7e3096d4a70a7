package store

// Array stores text in a single resizable byte slice.
// Insertion and deletion at index i shift Len()-i bytes.
type Array struct {
	chars []byte
}

// NewArray creates an array store holding a copy of content.
func NewArray(content []byte) *Array {
	a := &Array{}
	if len(content) > 0 {
		a.chars = make([]byte, len(content))
		copy(a.chars, content)
	}
	return a
}

// Len returns the number of bytes held.
func (a *Array) Len() int {
	return len(a.chars)
}

// Seek validates index. Access is already by index, so there is nothing to move.
func (a *Array) Seek(index int) error {
	return checkIndex("seek", index, len(a.chars))
}

// Insert inserts ch before index.
func (a *Array) Insert(index int, ch byte) error {
	if err := checkIndex("insert", index, len(a.chars)); err != nil {
		return err
	}
	a.chars = append(a.chars, 0)
	copy(a.chars[index+1:], a.chars[index:])
	a.chars[index] = ch
	return nil
}

// InsertBytes inserts chars before index.
func (a *Array) InsertBytes(index int, chars []byte) error {
	if err := checkIndex("insert", index, len(a.chars)); err != nil {
		return err
	}
	if len(chars) == 0 {
		return nil
	}
	n := len(chars)
	a.chars = append(a.chars, make([]byte, n)...)
	copy(a.chars[index+n:], a.chars[index:])
	copy(a.chars[index:], chars)
	return nil
}

// Delete removes the byte before index.
func (a *Array) Delete(index int) error {
	if err := checkIndex("delete", index, len(a.chars)); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	copy(a.chars[index-1:], a.chars[index:])
	a.chars = a.chars[:len(a.chars)-1]
	return nil
}

// ByteAt returns the byte at index.
func (a *Array) ByteAt(index int) (byte, error) {
	if index < 0 || index >= len(a.chars) {
		return 0, outOfRange("byte at", index, len(a.chars))
	}
	return a.chars[index], nil
}

// Split truncates to [0, index) and returns the remainder.
func (a *Array) Split(index int) (Store, error) {
	if err := checkIndex("split", index, len(a.chars)); err != nil {
		return nil, err
	}
	tail := NewArray(a.chars[index:])
	a.chars = a.chars[:index]
	return tail, nil
}

// Append adds other's content to the end.
func (a *Array) Append(other Store) error {
	if other == nil {
		return nil
	}
	a.chars = append(a.chars, other.Bytes()...)
	return nil
}

// Bytes returns a copy of the content.
func (a *Array) Bytes() []byte {
	out := make([]byte, len(a.chars))
	copy(out, a.chars)
	return out
}
