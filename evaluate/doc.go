// SPDX-License-Identifier: MIT

// Package evaluate runs the boundary classifier over batches of independent
// requests with bounded concurrency and flattens every result into a record
// of selected fields.
//
// Scheduling:
//
//   - Requests are admitted in batches of Options.BatchSize (default 256).
//     Each batch runs on an errgroup limited to Options.Workers goroutines
//     and completes before the next one is admitted.
//   - Cancellation is checked before each batch and before each request.
//     A cancelled run returns the records of the batches that completed.
//   - Every task builds its own characterize.Config (the point group comes
//     from the request); symmetry tables are shared read-only.
//   - Results are written into slots addressed by request index, so output
//     order never depends on completion order.
//
// A request that fails (unknown point group, invalid orientation, panic
// inside the classifier) yields a record with Err set; it is logged and the
// run continues.
//
// Field order and header labels follow the tabular layout used by
// downstream tools (Left_phi1 … DisorAngl). Angles are rounded to 4
// decimal digits, areas to 8.
package evaluate
