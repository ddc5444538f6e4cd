package output

// Output format names.
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Column names of the result table. Keep this as the single source of
// truth; every renderer writes them in this order.
const (
	ColReaction = "reaction"
	ColFlux     = "flux"
)

// Header is the CSV header row.
const Header = ColReaction + "," + ColFlux

// SheetName is the worksheet used for xlsx output.
const SheetName = "medium"
