package dataset

// ValidateSchema checks that every required column is present in the table.
// It must run before any numeric coercion so a malformed export fails with a
// column-level message instead of a wall of parse errors.
func ValidateSchema(t *Table, required ...string) error {
	if len(required) == 0 {
		required = []string{AltitudeColumn, OzoneColumn}
	}

	var missing []string
	for _, name := range required {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		found := make([]string, len(t.Columns))
		copy(found, t.Columns)
		return &SchemaError{Missing: missing, Found: found}
	}
	return nil
}
