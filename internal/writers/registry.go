// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"dietinterp/internal/medium"
	"dietinterp/internal/output"
)

// Options tunes rendering.
type Options struct {
	Precision int // digits after the decimal point; -1 = shortest round-trip
}

// WriteFunc renders m to w.
type WriteFunc func(w io.Writer, m medium.Medium, o Options) error

// Writer registry (format → handler). Registered in init(); last wins.
var registry = map[string]WriteFunc{}

func Register(format string, fn WriteFunc) { registry[format] = fn }

func init() {
	Register(output.FormatCSV, func(w io.Writer, m medium.Medium, o Options) error {
		return output.WriteCSV(w, m, o.Precision)
	})
	Register(output.FormatTSV, func(w io.Writer, m medium.Medium, o Options) error {
		return output.WriteTSV(w, m, o.Precision)
	})
	Register(output.FormatJSON, func(w io.Writer, m medium.Medium, o Options) error {
		return output.WriteJSON(w, m, o.Precision)
	})
	Register(output.FormatXLSX, func(w io.Writer, m medium.Medium, o Options) error {
		return output.WriteXLSX(w, m, o.Precision)
	})
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := registry[format]
	return ok
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, m medium.Medium, o Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, m, o)
}

// FormatForPath infers a format from the output file extension, falling
// back to csv.
func FormatForPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "tab", "txt":
		return output.FormatTSV
	}
	if Known(ext) {
		return ext
	}
	return output.FormatCSV
}
