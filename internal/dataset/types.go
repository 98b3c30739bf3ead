package dataset

// Required column names in the source file. The schema check matches them
// exactly, including case.
const (
	AltitudeColumn = "Altitude_m_MSL"
	OzoneColumn    = "Ozone_ppbv"
)

// Table is a raw tabular dataset: a header row plus string cells. Sentinel
// fill values are already blanked by the loader, so an empty cell means
// "missing". Cells rows are padded or truncated to the header width.
type Table struct {
	Path    string
	Columns []string
	Cells   [][]string
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	return len(t.Cells)
}
