// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest loads and validates the book manifest (book.yaml).
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

// ConfigError reports a manifest that is missing, unreadable, malformed,
// or structurally invalid. It is always fatal for the build.
type ConfigError struct {
	// Path is the manifest file path.
	Path string
	// Reason describes what is wrong with the manifest.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("manifest %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("manifest %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads and parses a manifest file, validating its structure.
// All failures are reported as *ConfigError.
func Load(path string) (*types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: "cannot read manifest", Err: err}
	}

	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ConfigError{Path: path, Reason: "malformed manifest", Err: err}
	}

	if err := validate(&m); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	return &m, nil
}

// validate enforces the structural rules: a non-empty ordered parts list,
// every part naming a file, and part paths staying inside the content
// directory.
func validate(m *types.Manifest) error {
	if len(m.Parts) == 0 {
		return fmt.Errorf("parts list is empty")
	}
	for i, p := range m.Parts {
		if p.File == "" {
			return fmt.Errorf("part %d names no file", i+1)
		}
		if filepath.IsAbs(p.File) {
			return fmt.Errorf("part %d: absolute path %q not allowed", i+1, p.File)
		}
		clean := filepath.Clean(p.File)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("part %d: path %q escapes the content directory", i+1, p.File)
		}
	}
	return nil
}
