// Package dataset loads and cleans the raw ozone/altitude tables the profile
// pipeline consumes. It owns the three terminal error types of the pipeline:
// LoadError (file missing, unreadable, or unparsable), SchemaError (required
// column absent), and EmptyDatasetError (no rows survive cleaning).
//
// Loading and cleaning are separate stages on purpose: the loader only turns a
// file into a Table of string cells, blanking the agreed fill sentinels
// (-9999, -8888, -7777); schema validation then runs before any numeric
// coercion; the cleaner coerces, drops non-physical ozone, and drops rows with
// missing values. A Cache memoizes loaded tables by absolute path, keyed on
// file modification time and size so a changed file is reloaded rather than
// served stale.
package dataset
