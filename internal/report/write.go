package report

import (
	"fmt"
	"io"
	"os"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// Formats lists the supported export formats in display order.
func Formats() []string {
	return []string{FormatJSON, FormatCSV, FormatHTML}
}

// Extension returns the file extension for a format, without the dot.
func Extension(format string) string {
	switch format {
	case FormatCSV:
		return "csv"
	case FormatHTML:
		return "html"
	default:
		return "json"
	}
}

// Write renders the report in the requested format to outputPath, or to
// stdout when outputPath is empty.
func Write(rep *Report, format, outputPath string) error {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outputPath, err)
		}
		defer f.Close()
		w = f
	}
	return WriteTo(rep, format, w)
}

// WriteTo renders the report in the requested format to w.
func WriteTo(rep *Report, format string, w io.Writer) error {
	switch format {
	case FormatJSON:
		return rep.WriteJSON(w)
	case FormatCSV:
		return rep.WriteCSV(w)
	case FormatHTML:
		return rep.WriteHTML(w)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}
