// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures for manuscript projects:
// the book manifest, output formats, and build/converter configuration.
package types

// Part references one content unit (chapter, scene, front matter) of the
// manuscript. Order within Manifest.Parts defines manuscript order.
type Part struct {
	// File is the content file path, relative to the content directory.
	File string `json:"file" yaml:"file"`

	// NewPage requests a page break immediately before this part.
	// The first part of the manuscript never gets a leading break.
	NewPage bool `json:"new_page,omitempty" yaml:"new_page,omitempty"`
}

// Manifest is the declarative description of a manuscript: metadata plus
// the ordered list of content parts. It is parsed once per build and is
// immutable for the run.
type Manifest struct {
	// Title is the manuscript title, passed to the converter as metadata.
	Title string `json:"title" yaml:"title"`

	// Author is the manuscript author, passed to the converter as metadata.
	Author string `json:"author" yaml:"author"`

	// Parts lists the content files in manuscript order. No implicit
	// sorting or deduplication is applied.
	Parts []Part `json:"parts" yaml:"parts"`
}

// Metadata holds the manuscript fields handed to the document converter.
type Metadata struct {
	Title  string
	Author string
}

// Metadata returns the converter metadata for the manifest.
func (m *Manifest) Metadata() Metadata {
	return Metadata{Title: m.Title, Author: m.Author}
}
