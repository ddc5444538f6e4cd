package output

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dietinterp/internal/medium"
)

// WriteXLSX writes a workbook with one sheet holding the result table.
// Fluxes are stored as numbers; precision only affects rounding.
func WriteXLSX(w io.Writer, m medium.Medium, precision int) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{ColReaction, ColFlux}); err != nil {
		return err
	}
	for i, e := range m.Entries() {
		flux := e.Flux
		if precision >= 0 {
			flux, _ = strconv.ParseFloat(FormatFlux(flux, precision), 64)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{e.Reaction, flux}); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
