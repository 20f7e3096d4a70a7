// Package config loads the editor's settings.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← BUFFALO_BUILD, BUFFALO_TEST, ...
//	├─────────────────────────────┤
//	│  2. .buffalorc              │  ← working directory, then $HOME
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller after Load returns.
//
// # File Formats
//
// A .buffalorc is TOML unless its name ends in .yaml or .yml:
//
//	build = "make"
//	test = "make test"
//	store = "gap"
//	log_level = "info"
//
// # Sub-packages
//
//   - loader: file and environment loading into flat key maps
//   - watcher: fsnotify-based change notification for live reload
//
// # Live Reload
//
// Watch re-reads the file whenever it is written or replaced and passes
// the new Config to a callback. Only the build and test commands are
// meant to change at runtime; the store kind applies at load.
package config
