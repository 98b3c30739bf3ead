package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// LoadError reports a file that could not be read or parsed as tabular data.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFound reports whether the load failed because the file does not exist.
func (e *LoadError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// SchemaError reports required columns absent from the loaded table. Found
// lists the columns actually present so the message is actionable.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset missing required column(s) %s; found columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// EmptyDatasetError reports that cleaning removed every row. This is distinct
// from a load or schema failure: the file was structurally fine but held no
// usable measurement.
type EmptyDatasetError struct {
	Total int // rows before cleaning
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no valid rows after cleaning (%d raw rows, all dropped)", e.Total)
}
