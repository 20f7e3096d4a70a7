package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrLineFeed indicates a line feed was passed to InsertChar; line
	// breaks go through SplitLine.
	ErrLineFeed = errors.New("line feed must be inserted with SplitLine")

	// ErrInvalidCursor indicates the cursor does not address a position in the document.
	ErrInvalidCursor = errors.New("cursor outside document")

	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrClosed indicates the engine's document has been released.
	ErrClosed = errors.New("engine is closed")
)
