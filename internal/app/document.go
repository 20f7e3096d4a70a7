package app

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/buffalo/internal/engine"
)

// createTemp makes the file a save is staged in.
var createTemp = os.CreateTemp

// Document is the file being edited together with its editing session.
// The file stays open for the lifetime of the document. Save stages the
// new content in a sibling file and renames it over the original, so a
// failed save leaves the file on disk untouched.
type Document struct {
	// Path is the file path as given on the command line.
	Path string

	// Name is the display name shown in the header.
	Name string

	// Engine is the text buffer and editing engine.
	Engine *engine.Engine

	mu   sync.Mutex
	file *os.File
}

// OpenDocument opens path for reading and writing, creating it if it does
// not exist, and loads its content into a new engine.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fileError("open", path, ErrOpenFailed, err)
	}
	return loadDocument(f, path, opts)
}

// OpenDocumentReadOnly opens an existing file for viewing. Edits and saves
// are refused.
func OpenDocumentReadOnly(path string, opts ...engine.Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileError("open", path, ErrOpenFailed, err)
	}
	return loadDocument(f, path, append(opts, engine.WithReadOnly()))
}

func loadDocument(f *os.File, path string, opts []engine.Option) (*Document, error) {
	eng, err := engine.NewFromReader(bufio.NewReader(f), opts...)
	if err != nil {
		_ = f.Close()
		return nil, fileError("read", path, ErrIOFailed, err)
	}

	return &Document{
		Path:   path,
		Name:   filepath.Base(path),
		Engine: eng,
		file:   f,
	}, nil
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.Engine.Modified()
}

// ReadOnly reports whether the document was opened for viewing only.
func (d *Document) ReadOnly() bool {
	return d.Engine.ReadOnly()
}

// Save replaces the file content with the current lines and flushes it to
// stable storage.
func (d *Document) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return fileError("save", d.Path, ErrIOFailed, os.ErrClosed)
	}
	if d.ReadOnly() {
		return NewOperationError("save", d.Path, engine.ErrReadOnly)
	}
	return d.Engine.Save(d.replace)
}

// replace writes content to a temporary file in the target's directory,
// syncs it and renames it over the target. The document keeps the new
// file open. Symlinks are followed so the link itself survives.
func (d *Document) replace(content []byte) error {
	target, err := filepath.EvalSymlinks(d.Path)
	if err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("resolve")
	}
	info, err := d.file.Stat()
	if err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("stat")
	}

	tmp, err := createTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("create")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("chmod")
	}
	if _, err := tmp.Write(content); err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("write")
	}
	if err := tmp.Sync(); err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("sync")
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fileError("save", d.Path, ErrIOFailed, err).WithContext("rename")
	}

	committed = true
	_ = d.file.Close()
	d.file = tmp
	return nil
}

// Close releases the engine and the file handle. Unsaved changes are
// discarded.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Engine.Close()
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	if err != nil {
		return fileError("close", d.Path, ErrIOFailed, err)
	}
	return nil
}
