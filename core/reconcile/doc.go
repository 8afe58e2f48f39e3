// Package reconcile is the segment reconciliation engine.
//
// It joins two segment inventories (a hierarchical folder tree and a flat
// overflow location) with a metadata index, all keyed by keys.Key, and works
// out which pages of each document are not covered by any segment file.
//
// # Pipeline
//
// For every key present in either scan:
//
//  1. Merge: concatenate both origins, stable-sort by start page, drop exact
//     (start, end) duplicates keeping the hierarchical copy.
//  2. StandardSize: the most frequent segment page count (smallest on ties,
//     DefaultSegmentSize when nothing is observable).
//  3. FindGaps: leading gap from page 1, interior gaps between segments,
//     trailing gap up to the documented total when it is known.
//  4. SplitGap: chop each gap into StandardSize chunks for reporting.
//  5. PlanRelocations: flat-origin segments are suggested for moving into
//     the document folder, flagged when the folder already has the range.
//
// Everything in this package is pure: no filesystem access, no logging,
// no package-level state. Cache is the only stateful type and belongs to
// the caller that creates it.
//
// # Usage
//
//	results := reconcile.ReconcileAll(index, inventory, reconcile.DefaultSegmentSize)
//	for _, r := range results {
//	    if r.NeedsAttention() {
//	        fmt.Println(r.Key, r.Missing)
//	    }
//	}
package reconcile
