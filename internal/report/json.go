package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON renders the report as indented JSON. The assessment block
// round-trips the engine's output contract field for field.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
