package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/buffalo/internal/config/loader"
	"github.com/dshills/buffalo/internal/engine/store"
)

// FileName is the name of the per-user and per-project settings file.
const FileName = ".buffalorc"

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "BUFFALO_"

// Setting keys.
const (
	KeyBuild    = "build"
	KeyTest     = "test"
	KeyStore    = "store"
	KeyLogLevel = "log_level"
)

// Config holds the editor settings.
type Config struct {
	// Build is the shell command run by the build key. Empty means none.
	Build string
	// Test is the shell command run by the test key. Empty means none.
	Test string
	// Store names the line storage kind: array, gap or rope.
	Store string
	// LogLevel is debug, info, warn or error.
	LogLevel string

	// Path is the file the settings were read from, empty if none.
	Path string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:    store.KindArray.String(),
		LogLevel: "info",
	}
}

// StoreKind returns the parsed store kind.
func (c Config) StoreKind() (store.Kind, error) {
	return store.ParseKind(c.Store)
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	if _, err := store.ParseKind(c.Store); err != nil {
		return &ValidationError{Key: KeyStore, Value: c.Store, Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Key: KeyLogLevel, Value: c.LogLevel, Err: ErrInvalidValue}
	}
	return nil
}

// ============================================================================
// Loading
// ============================================================================

// Option configures Load.
type Option func(*options)

type options struct {
	path    string
	dirs    []string
	fs      loader.FileSystem
	env     bool
	environ func(string) (string, bool)
	check   bool
}

// WithPath loads settings from path instead of searching for FileName.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithSearchDirs replaces the directories searched for FileName.
func WithSearchDirs(dirs ...string) Option {
	return func(o *options) {
		o.dirs = dirs
	}
}

// WithFileSystem sets the file system used to read settings files.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithoutEnv disables environment variable overrides.
func WithoutEnv() Option {
	return func(o *options) {
		o.env = false
	}
}

// WithLookupEnv replaces os.LookupEnv for environment overrides.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(o *options) {
		o.environ = fn
	}
}

// WithoutValidation makes Load return the merged settings without checking
// them. Callers that layer their own overrides on top call Validate on the
// result.
func WithoutValidation() Option {
	return func(o *options) {
		o.check = false
	}
}

// SearchDirs returns the default directories searched for FileName:
// the working directory, then the home directory.
func SearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Load reads the settings. A missing file is not an error; the defaults
// and environment overrides still apply.
func Load(opts ...Option) (Config, error) {
	o := options{
		fs:      loader.DefaultFS(),
		env:     true,
		environ: os.LookupEnv,
		check:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dirs == nil {
		o.dirs = SearchDirs()
	}

	cfg := Default()

	path := o.path
	if path == "" {
		path = discover(o.fs, o.dirs)
	}
	if path != "" {
		values, err := loader.ForPath(o.fs, path).LoadFrom(path)
		if err != nil {
			return cfg, err
		}
		if values != nil {
			if err := cfg.apply(values); err != nil {
				return cfg, err
			}
			cfg.Path = path
		}
	}

	if o.env {
		values, err := loader.NewEnvLoader(EnvPrefix, envMapping(), o.environ).Load()
		if err != nil {
			return cfg, err
		}
		if err := cfg.apply(values); err != nil {
			return cfg, err
		}
	}

	if !o.check {
		return cfg, nil
	}
	return cfg, cfg.Validate()
}

// discover returns the first FileName found in dirs, or "".
func discover(fs loader.FileSystem, dirs []string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, FileName)
		if _, err := fs.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func envMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "BUILD":     KeyBuild,
		EnvPrefix + "TEST":      KeyTest,
		EnvPrefix + "STORE":     KeyStore,
		EnvPrefix + "LOG_LEVEL": KeyLogLevel,
	}
}

// apply copies known keys from values. Unknown keys are ignored.
func (c *Config) apply(values map[string]any) error {
	fields := map[string]*string{
		KeyBuild:    &c.Build,
		KeyTest:     &c.Test,
		KeyStore:    &c.Store,
		KeyLogLevel: &c.LogLevel,
	}
	for key, dst := range fields {
		v, ok := values[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return &ValidationError{Key: key, Value: v, Err: ErrTypeMismatch}
		}
		*dst = s
	}
	return nil
}
