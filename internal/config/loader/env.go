package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "BUFFALO_")
	mapping map[string]string // Env var -> config key
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader for the given variable to key mapping that
// reads variables through lookup, or os.LookupEnv when lookup is nil.
// The prefix should include the trailing underscore (e.g., "BUFFALO_").
func NewEnvLoader(prefix string, mapping map[string]string, lookup func(string) (string, bool)) *EnvLoader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		lookup:  lookup,
	}
}

// Load reads the mapped environment variables.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, key := range l.mapping {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}
		if val, ok := l.lookup(env); ok {
			config[key] = val
		}
	}
	return config, nil
}

