// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	runPipedFunc  func(name string, args []string, stdin io.Reader, stderr io.Writer) error

	pipedCalls [][]string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunPiped(name string, args []string, stdin io.Reader, stderr io.Writer) error {
	m.pipedCalls = append(m.pipedCalls, append([]string{name}, args...))
	if m.runPipedFunc != nil {
		return m.runPipedFunc(name, args, stdin, stderr)
	}
	return nil
}

// outArg returns the value following "-o" in an argument list.
func outArg(t *testing.T, args []string) string {
	t.Helper()
	for i, a := range args {
		if a == "-o" && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatal("no -o argument in", args)
	return ""
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.ConverterConfig
		exec    *mockExecutor
		wantBin string
		wantErr string
	}{
		{
			name: "pandoc available",
			exec: &mockExecutor{
				availableBins: map[string]bool{"pandoc": true},
				runnableCmds:  map[string]bool{"pandoc --version": true},
			},
			wantBin: "pandoc",
		},
		{
			name: "custom binary from config",
			cfg:  types.ConverterConfig{Binary: "/opt/pandoc/bin/pandoc"},
			exec: &mockExecutor{
				availableBins: map[string]bool{"/opt/pandoc/bin/pandoc": true},
				runnableCmds:  map[string]bool{"/opt/pandoc/bin/pandoc --version": true},
			},
			wantBin: "/opt/pandoc/bin/pandoc",
		},
		{
			name:    "binary missing from PATH",
			exec:    &mockExecutor{},
			wantErr: "not found on PATH",
		},
		{
			name: "binary on PATH but version check fails",
			exec: &mockExecutor{
				availableBins: map[string]bool{"pandoc": true},
			},
			wantErr: "not operational",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := detect(tt.cfg, tt.exec)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var convErr *ConverterError
				if !errors.As(err, &convErr) {
					t.Fatalf("error should be *ConverterError, got %T", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name() != tt.wantBin {
				t.Errorf("binary = %q, want %q", p.Name(), tt.wantBin)
			}
		})
	}
}

func TestConvertWritesOutputAtomically(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pandoc": true},
		runnableCmds:  map[string]bool{"pandoc --version": true},
		runPipedFunc: func(name string, args []string, stdin io.Reader, stderr io.Writer) error {
			// Pretend to be pandoc: consume stdin, write the -o target.
			data, _ := io.ReadAll(stdin)
			out := args[len(args)-1]
			return os.WriteFile(out, append([]byte("rendered: "), data...), 0o644)
		},
	}

	p, err := detect(types.ConverterConfig{}, exec)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "out", "manuscript.html")
	meta := types.Metadata{Title: "My Book", Author: "Jane Writer"}
	err = p.Convert(strings.NewReader("# Hello"), types.FormatHTML, meta, outPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if got := string(data); got != "rendered: # Hello" {
		t.Errorf("output = %q", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(outPath))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir should hold only the result, got %d entries", len(entries))
	}
}

func TestConvertFailureLeavesNoOutput(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pandoc": true},
		runnableCmds:  map[string]bool{"pandoc --version": true},
		runPipedFunc: func(name string, args []string, stdin io.Reader, stderr io.Writer) error {
			io.WriteString(stderr, "pdflatex not found\n")
			return errors.New("exit status 47")
		},
	}

	p, err := detect(types.ConverterConfig{}, exec)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(t.TempDir(), "manuscript.pdf")
	err = p.Convert(strings.NewReader("body"), types.FormatPDF, types.Metadata{}, outPath)
	if err == nil {
		t.Fatal("expected error")
	}

	var convErr *ConverterError
	if !errors.As(err, &convErr) {
		t.Fatalf("error should be *ConverterError, got %T", err)
	}
	if convErr.Format != types.FormatPDF {
		t.Errorf("Format = %q, want pdf", convErr.Format)
	}
	if !strings.Contains(convErr.Stderr, "pdflatex not found") {
		t.Errorf("Stderr should carry the tool diagnostics verbatim, got %q", convErr.Stderr)
	}
	if !strings.Contains(err.Error(), "exit status 47") {
		t.Errorf("error should surface the exit status, got %q", err)
	}

	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("failed conversion must leave no file at the target path")
	}
	entries, _ := os.ReadDir(filepath.Dir(outPath))
	if len(entries) != 0 {
		t.Errorf("failed conversion must clean up temp files, found %d entries", len(entries))
	}
}

func TestConvertArgs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      types.ConverterConfig
		format   types.Format
		meta     types.Metadata
		wantArgs []string
		notArgs  []string
	}{
		{
			name:     "html with metadata",
			format:   types.FormatHTML,
			meta:     types.Metadata{Title: "T", Author: "A"},
			wantArgs: []string{"-t", "html", "--metadata", "title=T", "--metadata", "author=A"},
		},
		{
			name:     "pdf uses engine instead of writer",
			cfg:      types.ConverterConfig{PDFEngine: "xelatex"},
			format:   types.FormatPDF,
			wantArgs: []string{"--pdf-engine", "xelatex"},
			notArgs:  []string{"-t"},
		},
		{
			name: "extra args passed through for matching format",
			cfg: types.ConverterConfig{
				ExtraArgs: map[string][]string{
					"docx": {"--reference-doc", "style.docx"},
					"html": {"--css", "style.css"},
				},
			},
			format:   types.FormatDOCX,
			wantArgs: []string{"--reference-doc", "style.docx"},
			notArgs:  []string{"--css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{
				availableBins: map[string]bool{"pandoc": true},
				runnableCmds:  map[string]bool{"pandoc --version": true},
				runPipedFunc: func(name string, args []string, stdin io.Reader, stderr io.Writer) error {
					return os.WriteFile(args[len(args)-1], []byte("x"), 0o644)
				},
			}
			p, err := detect(tt.cfg, exec)
			if err != nil {
				t.Fatal(err)
			}

			outPath := filepath.Join(t.TempDir(), "m."+tt.format.Ext())
			if err := p.Convert(strings.NewReader(""), tt.format, tt.meta, outPath); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(exec.pipedCalls) != 1 {
				t.Fatalf("expected one converter invocation, got %d", len(exec.pipedCalls))
			}
			call := strings.Join(exec.pipedCalls[0], " ")
			for _, want := range []string{"pandoc", "-f markdown", "--standalone"} {
				if !strings.Contains(call, want) {
					t.Errorf("invocation %q should contain %q", call, want)
				}
			}
			if !strings.Contains(call, strings.Join(tt.wantArgs, " ")) {
				t.Errorf("invocation %q should contain %q", call, strings.Join(tt.wantArgs, " "))
			}
			for _, not := range tt.notArgs {
				if strings.Contains(call, " "+not+" ") {
					t.Errorf("invocation %q should not contain %q", call, not)
				}
			}

			if got := outArg(t, exec.pipedCalls[0]); !strings.HasSuffix(got, "."+tt.format.Ext()) {
				t.Errorf("temp output %q should keep the %s extension", got, tt.format.Ext())
			}
		})
	}
}
