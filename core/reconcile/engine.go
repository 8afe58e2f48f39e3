package reconcile

import (
	"sort"

	"segment-audit/core/keys"
)

// ReconcileAll reconciles every key present in either scan.
// Keys without any segment are skipped. Results are sorted by key for
// deterministic output.
func ReconcileAll(index map[keys.Key]Record, inv *Inventory, defaultSize int) []Result {
	unionKeys := buildUnion(inv)

	results := make([]Result, 0, len(unionKeys))
	for _, key := range unionKeys {
		record, inMetadata := index[key]
		result, ok := ReconcileKey(key, record, inMetadata, inv.Folders[key], inv.Hierarchical[key], inv.Flat[key], defaultSize)
		if !ok {
			continue
		}
		results = append(results, result)
	}

	return results
}

// ReconcileKey builds the Result for a single key.
// It returns false when both origins are empty, since there is nothing to reconcile.
func ReconcileKey(key keys.Key, record Record, inMetadata bool, folder Folder, hierarchical, flat []Segment, defaultSize int) (Result, bool) {
	segments := Merge(hierarchical, flat)
	if len(segments) == 0 {
		return Result{}, false
	}

	size := StandardSize(segments, defaultSize)
	gaps := FindGaps(segments, record.TotalPages)

	result := Result{
		Key:                      key,
		Title:                    record.Title,
		Folder:                   folder,
		InMetadata:               inMetadata,
		TotalPages:               record.TotalPages,
		TotalKnown:               record.TotalPages > 0,
		Incomplete:               record.IsIncomplete(),
		LastSuccessfulSegmentEnd: record.LastSuccessfulSegmentEnd,
		HierarchicalCount:        len(hierarchical),
		FlatCount:                len(flat),
		Segments:                 segments,
		StandardSize:             size,
		Gaps:                     gaps,
		Missing:                  SplitGaps(gaps, size),
		Relocations:              PlanRelocations(folder, hierarchical, flat),
	}

	return result, true
}

// Merge concatenates both origins, sorts by start page and drops exact
// (start, end) duplicates. Hierarchical segments win ties because they
// come first and the sort is stable.
func Merge(hierarchical, flat []Segment) []Segment {
	all := make([]Segment, 0, len(hierarchical)+len(flat))
	all = append(all, hierarchical...)
	all = append(all, flat...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start < all[j].Start
	})

	type pageRange struct{ start, end int }
	seen := make(map[pageRange]struct{}, len(all))
	unique := make([]Segment, 0, len(all))
	for _, seg := range all {
		r := pageRange{seg.Start, seg.End}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		unique = append(unique, seg)
	}

	return unique
}

// buildUnion returns the sorted union of keys across folders and both origins.
func buildUnion(inv *Inventory) []keys.Key {
	union := make(map[keys.Key]struct{})

	for key := range inv.Folders {
		union[key] = struct{}{}
	}
	for key := range inv.Hierarchical {
		union[key] = struct{}{}
	}
	for key := range inv.Flat {
		union[key] = struct{}{}
	}

	sorted := make([]keys.Key, 0, len(union))
	for key := range union {
		sorted = append(sorted, key)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	return sorted
}
