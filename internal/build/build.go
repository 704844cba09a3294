// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build orchestrates manuscript builds: assemble the parts for a
// format, hand the document to the converter, and report results. Each
// format is an independent pipeline over the same immutable inputs.
package build

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cmpalmer66/writer-tech-base/internal/assemble"
	"github.com/cmpalmer66/writer-tech-base/internal/pandoc"
	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

const defaultOutputName = "manuscript"

// Result holds the outcome of a multi-format build run.
type Result struct {
	Built  int
	Failed int
}

// Total returns the total number of formats processed.
func (r Result) Total() int {
	return r.Built + r.Failed
}

// HasFailures reports whether any format failed to build.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the deterministic output file path for a format.
func OutputPath(cfg types.BuildConfig, f types.Format) string {
	name := cfg.OutputName
	if name == "" {
		name = defaultOutputName
	}
	return filepath.Join(cfg.OutputDir, name+"."+f.Ext())
}

// Run builds one output format: assemble in manifest order, convert, and
// return the output path. A missing content file aborts before the
// converter is invoked; converter failures leave no file at the target.
func Run(conv pandoc.Converter, m *types.Manifest, cfg types.BuildConfig, f types.Format) (string, error) {
	doc, err := assemble.Assemble(m, cfg.ContentDir, f)
	if err != nil {
		return "", err
	}

	outPath := OutputPath(cfg, f)
	if err := conv.Convert(doc.Reader(), f, m.Metadata(), outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// RunAll builds each requested format in turn, printing per-format status
// to w. A failing format is reported with its format name and does not
// abort the remaining formats.
func RunAll(conv pandoc.Converter, m *types.Manifest, cfg types.BuildConfig, formats []types.Format, w io.Writer) Result {
	var result Result
	for _, f := range formats {
		outPath, err := Run(conv, m, cfg, f)
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", f, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "built:  %s -> %s\n", f, outPath)
		result.Built++
	}
	fmt.Fprintf(w, "\nBuild summary: %d built, %d failed (total: %d)\n",
		result.Built, result.Failed, result.Total())
	return result
}
