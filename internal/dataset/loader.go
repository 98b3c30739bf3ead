package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fill sentinels used by the instrument export. Cells equal to any of these,
// in integer or real spelling, are blanked at load time so they can never
// survive coercion as measurements.
var fillSentinels = []float64{-9999, -8888, -7777}

// Load reads a delimited text file (or an .xlsx workbook, first sheet) into a
// Table. The first row is the header. Any failure is reported as a *LoadError.
func Load(path string) (*Table, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = readWorkbook(path)
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("file contains no rows")}
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	cells := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		for i := range header {
			if i < len(rec) {
				row[i] = blankSentinel(strings.TrimSpace(rec[i]))
			}
		}
		cells = append(cells, row)
	}

	return &Table{Path: path, Columns: header, Cells: cells}, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are padded later
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	return records, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// blankSentinel replaces an agreed fill value with the empty cell. The
// comparison is numeric so "-9999", "-9999.0" and "-9.999e3" all match.
func blankSentinel(cell string) string {
	if cell == "" {
		return ""
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return cell
	}
	for _, s := range fillSentinels {
		if v == s {
			return ""
		}
	}
	return cell
}
