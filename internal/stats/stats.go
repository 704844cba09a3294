// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes word counts for the manuscript's parts.
package stats

import (
	"fmt"
	"os"

	"github.com/cmpalmer66/writer-tech-base/internal/assemble"
	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

// PartCount holds the word count for one manifest part.
type PartCount struct {
	// File is the part path as written in the manifest.
	File string
	// Words is the number of whitespace-separated tokens in the part.
	Words int
}

// Count returns per-part word counts in manifest order. A part that does
// not resolve under contentDir fails with *assemble.MissingContentError.
func Count(m *types.Manifest, contentDir string) ([]PartCount, error) {
	paths, err := assemble.Resolve(m, contentDir)
	if err != nil {
		return nil, err
	}

	counts := make([]PartCount, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", m.Parts[i].File, err)
		}
		counts[i] = PartCount{File: m.Parts[i].File, Words: countWords(data)}
	}
	return counts, nil
}

// Total sums the word counts.
func Total(counts []PartCount) int {
	total := 0
	for _, c := range counts {
		total += c.Words
	}
	return total
}

// countWords counts whitespace-separated tokens in data.
func countWords(data []byte) int {
	count := 0
	inWord := false
	for _, b := range data {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}
