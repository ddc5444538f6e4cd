// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"strconv"

	"dietinterp/internal/medium"
)

// WriteJSON writes a single JSON array of {reaction, flux} objects
// (pretty-indented). precision >= 0 rounds the flux values.
func WriteJSON(w io.Writer, m medium.Medium, precision int) error {
	rows := m.Entries()
	if precision >= 0 {
		for i := range rows {
			rows[i].Flux, _ = strconv.ParseFloat(FormatFlux(rows[i].Flux, precision), 64)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
