// internal/loader/table.go
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dietinterp/internal/medium"
)

// Column names accepted for the reaction identifier, in priority order.
// An empty header cell is what a pandas index column looks like on disk.
var reactionColumns = []string{"reaction", "reaction_id", "rxn", "id", ""}

const fluxColumn = "flux"

// record is one table row and the physical line (or sheet row) it starts on.
type record struct {
	line   int
	fields []string
}

// delimiterFor picks the field separator from the file name, falling back
// to sniffing the first non-comment line.
func delimiterFor(name string, head []byte) rune {
	lower := strings.ToLower(strings.TrimSuffix(name, ".gz"))
	switch {
	case strings.HasSuffix(lower, ".tsv"), strings.HasSuffix(lower, ".tab"):
		return '\t'
	case strings.HasSuffix(lower, ".csv"):
		return ','
	}
	for _, line := range bytes.Split(head, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Count(line, []byte{'\t'}) > bytes.Count(line, []byte{','}) {
			return '\t'
		}
		return ','
	}
	return ','
}

// readDelimited parses a delimited table into raw records. name is only
// used to choose the separator and in error messages.
func readDelimited(name string, r io.Reader) ([]record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiterFor(name, data)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var recs []record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%s:%d %v", name, pe.Line, pe.Err)
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		recs = append(recs, record{line: line, fields: fields})
	}
}

// columns locates the reaction and flux columns in a header row.
func columns(header []string) (rxn, flux int, err error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	flux = -1
	for i, h := range norm {
		if h == fluxColumn {
			flux = i
			break
		}
	}
	if flux < 0 {
		return 0, 0, fmt.Errorf("header has no %q column: %v", fluxColumn, header)
	}
	for _, want := range reactionColumns {
		for i, h := range norm {
			if i != flux && h == want {
				return i, flux, nil
			}
		}
	}
	if flux != 0 {
		return 0, flux, nil
	}
	return 0, 0, fmt.Errorf("header has no reaction column: %v", header)
}

// rowsFromRecords converts a header + data records into medium rows.
// The first non-blank record is the header.
func rowsFromRecords(name string, recs []record) ([]medium.Entry, error) {
	for len(recs) > 0 && blank(recs[0].fields) {
		recs = recs[1:]
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: empty table", name)
	}
	rxnCol, fluxCol, err := columns(recs[0].fields)
	if err != nil {
		return nil, fmt.Errorf("%s:%d %v", name, recs[0].line, err)
	}
	rows := make([]medium.Entry, 0, len(recs)-1)
	for _, r := range recs[1:] {
		ln, rec := r.line, r.fields
		if blank(rec) {
			continue
		}
		if rxnCol >= len(rec) || fluxCol >= len(rec) {
			return nil, fmt.Errorf("%s:%d bad field count", name, ln)
		}
		id := strings.TrimSpace(rec[rxnCol])
		if id == "" {
			return nil, fmt.Errorf("%s:%d empty reaction id", name, ln)
		}
		raw := strings.TrimSpace(rec[fluxCol])
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad flux %q for %s", name, ln, raw, id)
		}
		rows = append(rows, medium.Entry{Reaction: id, Flux: f})
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
