package store

import (
	"errors"
	"fmt"
)

// Errors returned by store operations.
var (
	// ErrOutOfRange indicates an index outside the valid range of the store.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnknownKind indicates an unrecognized store kind name.
	ErrUnknownKind = errors.New("unknown store kind")
)

// Store is a mutable run of text addressed by byte index.
type Store interface {
	// Len returns the number of bytes held.
	Len() int

	// Seek repositions the store's internal access point to index.
	// Requires 0 <= index <= Len().
	Seek(index int) error

	// Insert inserts ch before index. Requires 0 <= index <= Len().
	Insert(index int, ch byte) error

	// InsertBytes inserts chars before index. Requires 0 <= index <= Len().
	InsertBytes(index int, chars []byte) error

	// Delete removes the byte immediately before index.
	// Deleting at index 0 is a no-op.
	Delete(index int) error

	// ByteAt returns the byte at index. Requires 0 <= index < Len().
	ByteAt(index int) (byte, error)

	// Split truncates the store to [0, index) and returns a new store of
	// the same kind holding [index, Len()).
	Split(index int) (Store, error)

	// Append adds the content of other to the end of the store.
	// other is left unchanged unless it is the receiver's own kind and
	// the implementation shares structure with it.
	Append(other Store) error

	// Bytes materializes the full content as a new slice.
	Bytes() []byte
}

// Kind identifies a Store implementation.
type Kind uint8

const (
	KindArray Kind = iota // resizable array per line
	KindGap               // gap buffer
	KindRope              // rope of bounded leaves
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindGap:
		return "gap"
	case KindRope:
		return "rope"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// ParseKind parses a configuration name into a Kind.
// The empty string selects KindArray.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "array", "line", "lines":
		return KindArray, nil
	case "gap", "gapbuffer", "gap-buffer":
		return KindGap, nil
	case "rope":
		return KindRope, nil
	default:
		return KindArray, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New creates a store of the given kind holding a copy of content.
func New(kind Kind, content []byte) (Store, error) {
	switch kind {
	case KindArray:
		return NewArray(content), nil
	case KindGap:
		return NewGap(content), nil
	case KindRope:
		return NewRope(content), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// outOfRange builds an error wrapping ErrOutOfRange.
func outOfRange(op string, index, length int) error {
	return fmt.Errorf("%s: %w: index %d, length %d", op, ErrOutOfRange, index, length)
}

// checkIndex validates 0 <= index <= length.
func checkIndex(op string, index, length int) error {
	if index < 0 || index > length {
		return outOfRange(op, index, length)
	}
	return nil
}
