package loader

import (
	"strings"
	"testing"
)

func TestDelimiterFor(t *testing.T) {
	cases := []struct {
		name string
		head string
		want rune
	}{
		{"a.tsv", "reaction,flux", '\t'},
		{"a.tsv.gz", "", '\t'},
		{"a.csv", "reaction\tflux", ','},
		{"a.txt", "# comment, with comma\nreaction\tflux\n", '\t'},
		{"a", "reaction,flux\n", ','},
		{"a", "", ','},
	}
	for _, c := range cases {
		if got := delimiterFor(c.name, []byte(c.head)); got != c.want {
			t.Errorf("delimiterFor(%q, %q) = %q, want %q", c.name, c.head, got, c.want)
		}
	}
}

func TestColumns(t *testing.T) {
	cases := []struct {
		header   []string
		rxn, flx int
		wantErr  bool
	}{
		{[]string{"reaction", "flux"}, 0, 1, false},
		{[]string{"metabolite", "flux", "Reaction"}, 2, 1, false},
		{[]string{"", "flux"}, 0, 1, false},
		{[]string{"\ufeffreaction", " FLUX "}, 0, 1, false},
		{[]string{"name", "flux"}, 0, 1, false},
		{[]string{"flux"}, 0, 0, true},
		{[]string{"reaction", "rate"}, 0, 0, true},
	}
	for _, c := range cases {
		rxn, flx, err := columns(c.header)
		if c.wantErr {
			if err == nil {
				t.Errorf("columns(%q): expected error", c.header)
			}
			continue
		}
		if err != nil || rxn != c.rxn || flx != c.flx {
			t.Errorf("columns(%q) = %d,%d,%v want %d,%d", c.header, rxn, flx, err, c.rxn, c.flx)
		}
	}
}

func TestRowsFromRecordsSkipsBlankRows(t *testing.T) {
	recs := []record{
		{line: 1, fields: []string{"reaction", "flux"}},
		{line: 2, fields: []string{"", ""}},
		{line: 3, fields: []string{"r1", "1"}},
	}
	rows, err := rowsFromRecords("x.csv", recs)
	if err != nil || len(rows) != 1 || rows[0].Reaction != "r1" {
		t.Fatalf("got %+v %v", rows, err)
	}
}

func TestReadDelimitedTracksPhysicalLines(t *testing.T) {
	in := "# comment\nreaction,flux\n\nrxn1,1\nrxn2,x\n"
	recs, err := readDelimited("m.csv", strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	var lines []int
	for _, r := range recs {
		lines = append(lines, r.line)
	}
	if len(lines) != 3 || lines[0] != 2 || lines[1] != 4 || lines[2] != 5 {
		t.Fatalf("record lines = %v, want [2 4 5]", lines)
	}

	_, err = rowsFromRecords("m.csv", recs)
	if err == nil || !strings.Contains(err.Error(), "m.csv:5 bad flux") {
		t.Fatalf("err = %v, want m.csv:5 bad flux", err)
	}
}
