package reconcile

import "path/filepath"

// PlanRelocations suggests moving each flat-origin segment into the key's
// folder. A segment is already present when the folder holds the same page
// range. Nothing here touches the filesystem.
func PlanRelocations(folder Folder, hierarchical, flat []Segment) []Relocation {
	if len(flat) == 0 {
		return nil
	}

	type pageRange struct{ start, end int }
	inFolder := make(map[pageRange]struct{}, len(hierarchical))
	for _, seg := range hierarchical {
		inFolder[pageRange{seg.Start, seg.End}] = struct{}{}
	}

	relocations := make([]Relocation, 0, len(flat))
	for _, seg := range flat {
		_, present := inFolder[pageRange{seg.Start, seg.End}]

		var destination string
		if folder.Path != "" {
			destination = filepath.Join(folder.Path, filepath.Base(seg.Path))
		}

		relocations = append(relocations, Relocation{
			Segment:        seg,
			Destination:    destination,
			AlreadyPresent: present,
		})
	}

	return relocations
}

// Summarize aggregates counts over results.
func Summarize(results []Result) Summary {
	summary := Summary{Documents: len(results)}

	for _, r := range results {
		if r.NeedsAttention() {
			summary.Flagged++
		}
		if len(r.Gaps) > 0 {
			summary.WithGaps++
		}
		for _, gap := range r.Gaps {
			summary.MissingPages += gap.Pages()
		}
		summary.Relocations += len(r.Relocations)
		if !r.TotalKnown {
			summary.UnknownTotals++
		}
		summary.PageMismatches += len(r.PageMismatches)
	}

	return summary
}
