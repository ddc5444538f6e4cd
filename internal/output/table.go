// internal/output/table.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"dietinterp/internal/medium"
)

// FormatFlux renders f as a plain decimal. precision < 0 gives the
// shortest string that parses back to the same float64.
func FormatFlux(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// WriteDelimited writes the header and one row per reaction.
func WriteDelimited(w io.Writer, m medium.Medium, comma rune, precision int) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write([]string{ColReaction, ColFlux}); err != nil {
		return err
	}
	for _, e := range m.Entries() {
		if err := cw.Write([]string{e.Reaction, FormatFlux(e.Flux, precision)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes comma-separated output.
func WriteCSV(w io.Writer, m medium.Medium, precision int) error {
	return WriteDelimited(w, m, ',', precision)
}

// WriteTSV writes tab-separated output.
func WriteTSV(w io.Writer, m medium.Medium, precision int) error {
	return WriteDelimited(w, m, '\t', precision)
}
