// Package export writes palettes as CSS custom properties, JSON or a PDF
// swatch sheet.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/colormine/internal/colour"
)

// Format is a palette export format.
type Format string

const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatCSS, FormatJSON, FormatPDF}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSS, FormatJSON, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: css, json, pdf)", s)
	}
}

// DefaultFilename returns the download name used for a format.
func (f Format) DefaultFilename() string {
	return "palette." + string(f)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f, err == nil
}

// CSS renders the palette as a :root block of --color-N custom properties.
func CSS(p *colour.Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range p.All() {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c)
	}
	b.WriteString("}")
	return b.String()
}

// JSON renders the palette as a pretty-printed array of hex strings.
func JSON(p *colour.Palette) (string, error) {
	data, err := p.ToJSON()
	if err != nil {
		return "", fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return string(data), nil
}

// Write renders p in format f to w.
func Write(w io.Writer, p *colour.Palette, f Format) error {
	switch f {
	case FormatCSS:
		_, err := io.WriteString(w, CSS(p))
		return err
	case FormatJSON:
		s, err := JSON(p)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	case FormatPDF:
		return WritePDF(w, p)
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}
}

// WriteFile renders p in format f to path.
func WriteFile(path string, p *colour.Palette, f Format) error {
	file, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, p, f); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s export: %w", f, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
