package loader

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dietinterp/internal/domain"
	"dietinterp/internal/logging"
	"dietinterp/internal/qiime"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "m.csv", []byte("reaction,flux,metabolite\nEX_glc_D_m,0.5,glc_D\nEX_fru_m,1.25,fru\n"))
	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"EX_glc_D_m": 0.5, "EX_fru_m": 1.25}, m.Map())
}

func TestLoadPandasIndexColumn(t *testing.T) {
	// pandas to_csv of a Series indexed by reaction writes an empty first header cell.
	p := writeFile(t, "m.csv", []byte(",flux\nrxn1,2\nrxn2,3\n"))
	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rxn1": 2, "rxn2": 3}, m.Map())
}

func TestLoadTSVByContent(t *testing.T) {
	p := writeFile(t, "m.txt", []byte("# diet\nflux\treaction\n-1e-3\tEX_o2_m\n"))
	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, -0.001, m.FluxOrZero("EX_o2_m"))
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("reaction\tflux\nrxn1\t7\n"))
	require.NoError(t, zw.Close())
	p := writeFile(t, "m.tsv.gz", buf.Bytes())

	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 7.0, m.FluxOrZero("rxn1"))
}

func TestLoadKeepsFirstDuplicateAndWarns(t *testing.T) {
	p := writeFile(t, "m.csv", []byte("reaction,flux\nrxn1,2.0\nrxn1,5.0\n"))
	var logs bytes.Buffer
	m, err := New(logging.New(logging.Config{Out: &logs})).Load(p)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2.0, m.FluxOrZero("rxn1"))
	assert.Contains(t, logs.String(), "duplicate reactions dropped")
	assert.Contains(t, logs.String(), "count=1")
}

func TestLoadQZA(t *testing.T) {
	b, err := qiime.Build("0b8a1f5e-6a57-4d3e-b1f8-3f2a9d7c4e21", "MicomMedium[Global]", "medium.csv",
		[]byte("reaction,flux,global_id\nEX_glc_D_m,10,EX_glc_D(e)\nEX_lac_D_m,4,EX_lac_D(e)\n"))
	require.NoError(t, err)
	p := writeFile(t, "western.qza", b)

	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"EX_glc_D_m": 10, "EX_lac_D_m": 4}, m.Map())

	// Same bytes without an extension are still recognised as an artifact.
	bare := writeFile(t, "western", b)
	assert.Equal(t, FormatQZA, Detect(bare))
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"reaction", "flux"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"rxn1", 1.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"rxn2", -2}))
	p := filepath.Join(t.TempDir(), "m.xlsx")
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rxn1": 1.5, "rxn2": -2}, m.Map())
}

func TestLoadXLSXIgnoresNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"reaction", "flux"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"rxn1", 0.12345678901234568}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"rxn2", 0.001}))
	twoDecimals, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B3", twoDecimals))
	p := filepath.Join(t.TempDir(), "styled.xlsx")
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	m, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rxn1": 0.12345678901234568, "rxn2": 0.001}, m.Map())
}

func TestLoadFailuresAreLoadKind(t *testing.T) {
	cases := map[string][]byte{
		"noflux.csv":  []byte("reaction,value\nrxn1,1\n"),
		"badflux.csv": []byte("reaction,flux\nrxn1,abc\n"),
		"emptyid.csv": []byte("reaction,flux\n,1\n"),
		"empty.csv":   nil,
		"bad.qza":     []byte("not a zip"),
	}
	for name, data := range cases {
		p := writeFile(t, name, data)
		_, err := Load(p)
		require.Error(t, err, name)
		assert.True(t, domain.IsKind(err, domain.KindLoad), "%s: %v", name, err)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.qza"))
	assert.True(t, domain.IsKind(err, domain.KindLoad))
}

func TestBadFluxReportsLine(t *testing.T) {
	p := writeFile(t, "m.csv", []byte("reaction,flux\nrxn1,1\nrxn2,x\n"))
	_, err := Load(p)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "m.csv:3"), err.Error())
}
