// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold creates the starter layout for a new manuscript project.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ManifestName is the manifest filename written at the project root.
	ManifestName = "book.yaml"
	contentDir   = "content"
	outputDir    = "output"
)

const manifestTemplate = `title: Untitled Manuscript
author: Unknown Author
parts:
  - file: 01-title.md
    new_page: true
  - file: 02-chapter-one.md
    new_page: true
`

const titleTemplate = `# Untitled Manuscript

by Unknown Author
`

const chapterTemplate = `## Chapter One

It begins here.
`

// Init writes a starter project into dir: book.yaml, a content directory
// with sample parts, and an empty output directory. It refuses to touch a
// directory that already holds a manifest.
func Init(dir string) error {
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists in %s", ManifestName, dir)
	}

	for _, d := range []string{contentDir, outputDir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{manifestPath, manifestTemplate},
		{filepath.Join(dir, contentDir, "01-title.md"), titleTemplate},
		{filepath.Join(dir, contentDir, "02-chapter-one.md"), chapterTemplate},
		{filepath.Join(dir, outputDir, ".gitkeep"), ""},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(f.path), err)
		}
	}
	return nil
}
