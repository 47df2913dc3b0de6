// Package config carries the resolved settings for one manifest run.
package config

import "path/filepath"

// ExcludedDirs lists the directory base names that are never descended into.
// The set is fixed; there is deliberately no way to change it at runtime.
var ExcludedDirs = []string{
	".git", "venv", "__pycache__", ".env", ".pytest_cache",
	"env", "node_modules", ".idea", "target", "build", "dist",
}

// Config describes one manifest run. Core packages receive it fully
// resolved; figuring out the root (e.g. from the executable's location) is
// the entry point's job.
type Config struct {
	// Root is the absolute path of the tree to walk.
	Root string

	// DisplayName is the project name shown in the manifest, conventionally
	// the root's base name.
	DisplayName string

	// OutputPath is where the manifest is written. Any existing file there
	// is replaced.
	OutputPath string

	// Excluded holds directory base names that are pruned before descent.
	Excluded map[string]bool

	// SelfNames holds file names belonging to the tool itself, skipped by
	// exact name equality so the manifest never swallows its own artifacts.
	SelfNames map[string]bool
}

// Default returns the configuration for a run rooted at root.
func Default(root string) Config {
	name := filepath.Base(root)
	out := filepath.Join(root, name+".codebase.md")

	cfg := Config{
		Root:        root,
		DisplayName: name,
		OutputPath:  out,
		Excluded:    make(map[string]bool, len(ExcludedDirs)),
		SelfNames:   map[string]bool{filepath.Base(out): true},
	}
	for _, d := range ExcludedDirs {
		cfg.Excluded[d] = true
	}
	return cfg
}

// ExcludeSelf marks name as belonging to the tool itself.
func (c *Config) ExcludeSelf(name string) {
	c.SelfNames[name] = true
}
