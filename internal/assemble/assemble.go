// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble builds the combined manuscript document: part contents
// concatenated in manifest order, with page-break markers inserted where
// the manifest requests them.
package assemble

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

// MissingContentError reports a manifest part whose file does not exist.
// The build aborts before any converter invocation.
type MissingContentError struct {
	// File is the part path as written in the manifest.
	File string
	// Path is the resolved path under the content directory.
	Path string
}

func (e *MissingContentError) Error() string {
	return fmt.Sprintf("content file %s not found (resolved to %s)", e.File, e.Path)
}

// Document is the assembled manuscript for one target format. It is
// transient, owned by the build invocation that produced it.
type Document struct {
	Format  types.Format
	Content []byte
}

// Reader returns a reader over the assembled content.
func (d *Document) Reader() io.Reader {
	return bytes.NewReader(d.Content)
}

// Resolve maps every manifest part to its path under contentDir. It fails
// with *MissingContentError on the first part that does not resolve to an
// existing file, so callers can report missing content before doing any work.
func Resolve(m *types.Manifest, contentDir string) ([]string, error) {
	paths := make([]string, len(m.Parts))
	for i, p := range m.Parts {
		path := filepath.Join(contentDir, p.File)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, &MissingContentError{File: p.File, Path: path}
		}
		paths[i] = path
	}
	return paths, nil
}

// Assemble concatenates the manifest's parts in order into a single
// document for the target format. A page-break marker is inserted
// immediately before each part with new_page set, except the very first
// part. Parts are separated by a blank line; the document ends with a
// single newline so repeated runs are byte-identical.
func Assemble(m *types.Manifest, contentDir string, format types.Format) (*Document, error) {
	paths, err := Resolve(m, contentDir)
	if err != nil {
		return nil, err
	}

	marker := BreakMarker(format)

	var b strings.Builder
	for i, path := range paths {
		if i > 0 {
			b.WriteString("\n\n")
			if m.Parts[i].NewPage && marker != "" {
				b.WriteString(marker)
				b.WriteString("\n\n")
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", m.Parts[i].File, err)
		}
		b.WriteString(strings.TrimRight(string(data), "\n"))
	}
	b.WriteString("\n")

	return &Document{Format: format, Content: []byte(b.String())}, nil
}
