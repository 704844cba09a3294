// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import "github.com/cmpalmer66/writer-tech-base/pkg/types"

// BreakMarker returns the page-break marker for a target format. Markers
// are written in the converter's Markdown dialect: LaTeX for PDF, a styled
// div for HTML, and raw-attribute blocks for DOCX and RTF so they pass
// through only when the output format matches.
func BreakMarker(f types.Format) string {
	switch f {
	case types.FormatPDF:
		return `\newpage`
	case types.FormatHTML:
		return `<div style="page-break-after: always;"></div>`
	case types.FormatDOCX:
		return "```{=openxml}\n<w:p><w:r><w:br w:type=\"page\"/></w:r></w:p>\n```"
	case types.FormatRTF:
		return "```{=rtf}\n\\page\n```"
	}
	return ""
}
