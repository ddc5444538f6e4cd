// internal/loader/loader.go
package loader

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"dietinterp/internal/domain"
	"dietinterp/internal/logging"
	"dietinterp/internal/medium"
	"dietinterp/internal/qiime"
)

// Format names an input container.
type Format string

const (
	FormatQZA       Format = "qza"
	FormatXLSX      Format = "xlsx"
	FormatDelimited Format = "delimited"
)

// Loader turns a medium file into a medium.Medium.
type Loader struct {
	Log *slog.Logger
}

// New returns a Loader that reports through log (nil = discard).
func New(log *slog.Logger) Loader {
	if log == nil {
		log = logging.Discard()
	}
	return Loader{Log: log}
}

// Load is Loader.Load with a silent logger.
func Load(path string) (medium.Medium, error) { return New(nil).Load(path) }

// Detect decides how to read path: by extension first, then by sniffing
// for a zip header (an extensionless zip is taken to be an artifact).
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".qza":
		return FormatQZA
	case ".xlsx":
		return FormatXLSX
	case ".csv", ".tsv", ".tab", ".txt", ".gz":
		return FormatDelimited
	}
	if path != "-" && sniffZip(path) {
		return FormatQZA
	}
	return FormatDelimited
}

// Load reads path and builds a medium. Every failure is a KindLoad OpError.
// Duplicate reactions keep their first value; the rest are logged and dropped.
func (l Loader) Load(path string) (medium.Medium, error) {
	format := Detect(path)
	rows, err := l.rows(path, format)
	if err != nil {
		return medium.Medium{}, domain.LoadFailure("loader.load", path, err)
	}
	m, dropped := medium.FromRows(rows)
	for _, d := range dropped {
		l.Log.Debug("duplicate reaction dropped", "path", path, "reaction", d.Reaction, "flux", d.Flux)
	}
	if len(dropped) > 0 {
		l.Log.Warn("duplicate reactions dropped, first occurrence kept", "path", path, "count", len(dropped))
	}
	l.Log.Debug("medium loaded", "path", path, "format", string(format), "reactions", m.Len())
	return m, nil
}

func (l Loader) rows(path string, format Format) ([]medium.Entry, error) {
	switch format {
	case FormatQZA:
		a, err := qiime.Open(path)
		if err != nil {
			return nil, err
		}
		l.Log.Debug("artifact opened", "path", path, "uuid", a.UUID.String(), "type", a.Metadata.Type)
		name := fmt.Sprintf("%s!%s", path, a.DataName)
		recs, err := readDelimited(name, bytes.NewReader(a.Data))
		if err != nil {
			return nil, err
		}
		return rowsFromRecords(name, recs)

	case FormatXLSX:
		recs, err := readWorkbook(path)
		if err != nil {
			return nil, err
		}
		return rowsFromRecords(path, recs)

	default:
		rc, err := openText(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		recs, err := readDelimited(path, rc)
		if err != nil {
			return nil, err
		}
		return rowsFromRecords(path, recs)
	}
}
