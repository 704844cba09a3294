// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc implements document conversion by shelling out to the
// external pandoc tool. The converter is the sole authority on layout and
// styling; this package only builds the invocation and places the output.
package pandoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

const defaultBinary = "pandoc"

// Converter renders an assembled manuscript into a target output format.
// The production implementation shells out to pandoc; tests substitute a
// fake.
type Converter interface {
	// Convert reads the assembled document from doc and writes the
	// rendered result to outPath. On failure no file is left at outPath.
	Convert(doc io.Reader, format types.Format, meta types.Metadata, outPath string) error
}

// ConverterError reports an external converter failure: the tool is
// missing from the environment or exited non-zero. Stderr carries the
// tool's diagnostic output verbatim.
type ConverterError struct {
	// Format is the output format being built, empty for detection failures.
	Format types.Format
	// Stderr is the converter's diagnostic output, unmodified.
	Stderr string
	// Err is the underlying cause.
	Err error
}

func (e *ConverterError) Error() string {
	msg := "converter failed"
	if e.Format != "" {
		msg = fmt.Sprintf("converter failed for %s", e.Format)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg = msg + "\n" + s
	}
	return msg
}

func (e *ConverterError) Unwrap() error { return e.Err }

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec = &osExecutor{}

// Pandoc is the production Converter backed by the pandoc binary.
type Pandoc struct {
	bin  string
	cfg  types.ConverterConfig
	exec executor
}

// Detect verifies that the configured converter binary is on PATH and
// responds to a version query, returning a ready Converter. A missing or
// unresponsive binary is a *ConverterError.
func Detect(cfg types.ConverterConfig) (*Pandoc, error) {
	return detect(cfg, defaultExec)
}

func detect(cfg types.ConverterConfig, exec executor) (*Pandoc, error) {
	bin := cfg.Binary
	if bin == "" {
		bin = defaultBinary
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, &ConverterError{Err: fmt.Errorf("%s not found on PATH: %w", bin, err)}
	}
	if err := exec.RunSilent(bin, "--version"); err != nil {
		return nil, &ConverterError{Err: fmt.Errorf("%s is not operational: %w", bin, err)}
	}
	return &Pandoc{bin: bin, cfg: cfg, exec: exec}, nil
}

// Name returns the converter binary name.
func (p *Pandoc) Name() string { return p.bin }

// Convert pipes the assembled document into pandoc and atomically moves the
// rendered file to outPath. The temp file is removed on any failure so the
// target path never holds a partial output.
func (p *Pandoc) Convert(doc io.Reader, format types.Format, meta types.Metadata, outPath string) error {
	outDir := filepath.Dir(outPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	// The temp name keeps the target extension: pandoc picks the PDF
	// pipeline from the output extension when no writer is given.
	tmp, err := os.CreateTemp(outDir, "."+filepath.Base(outPath)+".*."+format.Ext())
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	args := p.args(format, meta, tmpPath)

	var stderr bytes.Buffer
	if err := p.exec.RunPiped(p.bin, args, doc, &stderr); err != nil {
		os.Remove(tmpPath)
		return &ConverterError{Format: format, Stderr: stderr.String(), Err: err}
	}

	if err := atomic.ReplaceFile(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("placing output %s: %w", outPath, err)
	}
	return nil
}

// args builds the pandoc argument list for one conversion. PDF output has
// no dedicated writer; pandoc infers it from the output extension, optionally
// with an explicit engine.
func (p *Pandoc) args(format types.Format, meta types.Metadata, outPath string) []string {
	args := []string{"-f", "markdown", "--standalone"}

	if format == types.FormatPDF {
		if p.cfg.PDFEngine != "" {
			args = append(args, "--pdf-engine", p.cfg.PDFEngine)
		}
	} else {
		args = append(args, "-t", string(format))
	}

	if meta.Title != "" {
		args = append(args, "--metadata", "title="+meta.Title)
	}
	if meta.Author != "" {
		args = append(args, "--metadata", "author="+meta.Author)
	}

	args = append(args, p.cfg.ExtraArgs[string(format)]...)
	args = append(args, "-o", outPath)
	return args
}
