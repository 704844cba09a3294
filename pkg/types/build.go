package types

import "fmt"

// Format selects an output document format.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatRTF  Format = "rtf"
)

// AllFormats returns every supported output format in build order.
func AllFormats() []Format {
	return []Format{FormatHTML, FormatPDF, FormatDOCX, FormatRTF}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatPDF, FormatDOCX, FormatRTF:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported format %q: use html, pdf, docx, or rtf", s)
}

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string {
	return string(f)
}

// BuildConfig holds the per-project build settings.
type BuildConfig struct {
	// ContentDir is the directory containing the part files (default "content").
	ContentDir string `json:"content_dir" yaml:"content_dir"`

	// OutputDir is the directory output files are written to (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OutputName is the base name for output files (default "manuscript");
	// the build for format f writes OutputDir/OutputName.<ext>.
	OutputName string `json:"output_name" yaml:"output_name"`
}

// ConverterConfig holds the settings for the external document converter.
type ConverterConfig struct {
	// Binary is the converter executable name or path (default "pandoc").
	Binary string `json:"binary" yaml:"binary"`

	// PDFEngine selects the engine for PDF output (e.g. "xelatex").
	// Empty leaves the converter's default in place.
	PDFEngine string `json:"pdf_engine" yaml:"pdf_engine"`

	// ExtraArgs maps a format name to additional converter arguments
	// (styling templates, reference docs). Passed through untouched.
	ExtraArgs map[string][]string `json:"extra_args" yaml:"extra_args"`
}
