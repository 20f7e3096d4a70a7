// Package loader reads settings files and environment variables into
// flat key/value maps.
//
// TOML is the default file format; files ending in .yaml or .yml are
// parsed as YAML.
package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileLoader parses one settings file format.
type FileLoader interface {
	// LoadFrom reads the file at path into a map. It returns nil, nil if
	// the file does not exist.
	LoadFrom(path string) (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// IsYAML reports whether path names a YAML file.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ForPath returns the file loader matching path's extension.
func ForPath(fs FileSystem, path string) FileLoader {
	if IsYAML(path) {
		return NewYAMLLoader(fs)
	}
	return NewTOMLLoader(fs)
}
