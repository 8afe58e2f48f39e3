package reconcile

import "sort"

// StandardSize returns the most frequent page count across segments.
// Ties resolve to the smallest size. An empty set yields fallback, or
// DefaultSegmentSize when fallback is not positive.
func StandardSize(segments []Segment, fallback int) int {
	if fallback <= 0 {
		fallback = DefaultSegmentSize
	}
	if len(segments) == 0 {
		return fallback
	}

	counts := make(map[int]int)
	for _, seg := range segments {
		counts[seg.Pages()]++
	}

	sizes := make([]int, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	best, bestCount := fallback, 0
	for _, size := range sizes {
		if counts[size] > bestCount {
			best, bestCount = size, counts[size]
		}
	}

	if best <= 0 {
		return fallback
	}
	return best
}

// FindGaps returns uncovered ranges of a start-sorted, deduplicated segment set.
// The trailing gap is only reported when totalPages is known (positive).
//
// Interior gaps are measured against the highest end page seen so far, so a
// long segment that swallows shorter ones never produces a gap over covered pages.
func FindGaps(segments []Segment, totalPages int) []Gap {
	if len(segments) == 0 {
		return nil
	}

	var gaps []Gap

	if first := segments[0].Start; first > 1 {
		gaps = append(gaps, Gap{Start: 1, End: first - 1, Kind: GapLeading})
	}

	covered := segments[0].End
	for _, next := range segments[1:] {
		if next.Start > covered+1 {
			gaps = append(gaps, Gap{Start: covered + 1, End: next.Start - 1, Kind: GapInterior})
		}
		if next.End > covered {
			covered = next.End
		}
	}

	if totalPages > 0 && totalPages > covered {
		gaps = append(gaps, Gap{Start: covered + 1, End: totalPages, Kind: GapTrailing})
	}

	return gaps
}

// SplitGap partitions a gap into consecutive ranges of size pages; the last
// range is truncated to the gap end. A non-positive size falls back to
// DefaultSegmentSize.
func SplitGap(gap Gap, size int) []Gap {
	if size <= 0 {
		size = DefaultSegmentSize
	}

	var parts []Gap
	for current := gap.Start; current <= gap.End; {
		end := min(current+size-1, gap.End)
		parts = append(parts, Gap{Start: current, End: end, Kind: gap.Kind})
		current = end + 1
	}

	return parts
}

// SplitGaps applies SplitGap to every gap, preserving order.
func SplitGaps(gaps []Gap, size int) []Gap {
	var parts []Gap
	for _, gap := range gaps {
		parts = append(parts, SplitGap(gap, size)...)
	}
	return parts
}
