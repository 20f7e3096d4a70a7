package engine

import (
	"github.com/dshills/buffalo/internal/engine/store"
)

// Default configuration values.
const (
	DefaultHeight    = 24
	DefaultStoreKind = store.KindArray
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithStoreKind selects the backing store used for every line.
func WithStoreKind(kind store.Kind) Option {
	return func(e *Engine) {
		e.kind = kind
	}
}

// WithHeight sets the initial viewport height.
func WithHeight(height int) Option {
	return func(e *Engine) {
		if height > 0 {
			e.height = height
		}
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
