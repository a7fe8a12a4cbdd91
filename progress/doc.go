// Package progress provides a small segmented console progress bar for
// long-running, countable work such as manoeuvre-graph construction.
//
// The bar redraws only when a segment threshold is crossed, so wiring it
// to a hot loop costs one comparison per increment. Output goes to an
// injected io.Writer; Increment is safe for concurrent use.
package progress
