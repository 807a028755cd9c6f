package bench

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the full report as one indented JSON document, the
// machine-readable session export consumed by external analysis tooling.
// Field names are stable snake_case; durations serialize as nanoseconds.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadJSON decodes a report previously written by WriteJSON.
func ReadJSON(rd io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(rd).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
