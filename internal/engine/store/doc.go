// Package store provides the pluggable backing storage for a run of text.
//
// A Store holds one contiguous sequence of bytes (in the editor, the
// characters of a single line) and supports indexed insertion, deletion,
// splitting and joining. Three interchangeable implementations are
// provided:
//
//   - Array: a resizable byte slice; edits shift the tail in place.
//   - Gap: a gap buffer; edits relocate a movable empty region to the
//     edit point so repeated edits at one spot are O(1).
//   - Rope: a binary tree of bounded leaves with left-subtree weights,
//     giving O(log n) indexed access, split and concatenation.
//
// Basic usage:
//
//	s, _ := store.New(store.KindGap, []byte("hello"))
//	_ = s.Insert(5, '!')          // "hello!"
//	_ = s.Delete(1)               // "ello!"
//	tail, _ := s.Split(2)         // s = "el", tail = "lo!"
//	_ = s.Append(tail)            // "ello!"
//
// Stores are not safe for concurrent use; the engine serializes access.
package store
