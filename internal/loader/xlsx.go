package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook returns the rows of the first sheet in the workbook at path.
// Cells are read as stored, ignoring number formats.
func readWorkbook(path string) ([]record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheets[0], err)
	}
	recs := make([]record, 0, len(rows))
	for i, row := range rows {
		recs = append(recs, record{line: i + 1, fields: row})
	}
	return recs, nil
}
