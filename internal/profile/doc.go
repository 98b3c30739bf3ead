// Package profile computes the smoothed vertical ozone profile from a cleaned
// dataset: nearest-bin altitude grouping, per-bin summary statistics, standard
// error of the mean, a centered rolling mean across bins, and a ~95%
// confidence band. Undefined statistics are carried as NaN internally and
// surface as nil pointers in the domain contracts.
//
// Builder ties the stages to the dataset package as one pure
// Build(ctx, params) call: every invocation revalidates its parameters and
// recomputes the profile from scratch, so the same entry point serves the
// dashboard, the batch CLI, and tests.
package profile
