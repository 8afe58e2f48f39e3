package reconcile

import (
	"time"

	"segment-audit/core/keys"
)

// DefaultSegmentSize is the page count assumed when no segment sizes can be observed.
const DefaultSegmentSize = 49

// Origin tells which scan location a segment was found in.
type Origin string

const (
	// OriginHierarchical marks segments found inside a per-document folder.
	OriginHierarchical Origin = "hierarchical"
	// OriginFlat marks segments found in the flat overflow location.
	OriginFlat Origin = "flat"
)

// Segment is one file covering an inclusive page range of a document.
type Segment struct {
	// Start is the first page covered.
	Start int `json:"start" yaml:"start"`
	// End is the last page covered (inclusive).
	End int `json:"end" yaml:"end"`
	// Path is the file location on disk.
	Path string `json:"path" yaml:"path"`
	// Origin is the scan location the file came from.
	Origin Origin `json:"origin" yaml:"origin"`
}

// Pages returns the number of pages the segment claims to cover.
func (s Segment) Pages() int {
	return s.End - s.Start + 1
}

// Record holds the metadata known about a document.
type Record struct {
	// Key is the normalized document key.
	Key keys.Key `json:"key" yaml:"key"`
	// Title is the human-readable title.
	Title string `json:"title" yaml:"title"`
	// TotalPages is the expected page count; zero means unknown.
	TotalPages int `json:"total_pages" yaml:"total_pages"`
	// LastSuccessfulSegmentEnd is the high-water mark from the downloader.
	LastSuccessfulSegmentEnd int `json:"last_successful_segment_end" yaml:"last_successful_segment_end"`
	// CompletedAt is the completion timestamp, empty while incomplete.
	CompletedAt string `json:"completed_at" yaml:"completed_at"`
}

// IsIncomplete reports whether no completion timestamp was recorded.
func (r Record) IsIncomplete() bool {
	return r.CompletedAt == ""
}

// Folder describes the hierarchical folder a key was derived from.
type Folder struct {
	// Name is the base name of the folder.
	Name string `json:"name" yaml:"name"`
	// Path is the full folder path.
	Path string `json:"path" yaml:"path"`
}

// Inventory is the combined output of both scans, grouped by key.
type Inventory struct {
	// Folders maps each key to the first folder it was derived from.
	Folders map[keys.Key]Folder
	// Hierarchical holds segments found inside per-document folders.
	Hierarchical map[keys.Key][]Segment
	// Flat holds segments found in the flat overflow location.
	Flat map[keys.Key][]Segment
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		Folders:      make(map[keys.Key]Folder),
		Hierarchical: make(map[keys.Key][]Segment),
		Flat:         make(map[keys.Key][]Segment),
	}
}

// FlatCount returns the total number of flat-origin segments.
func (inv *Inventory) FlatCount() int {
	n := 0
	for _, segs := range inv.Flat {
		n += len(segs)
	}
	return n
}

// GapKind classifies where a gap sits relative to the covered pages.
type GapKind string

const (
	GapLeading  GapKind = "leading"
	GapInterior GapKind = "interior"
	GapTrailing GapKind = "trailing"
)

// Gap is an inclusive page range known to be uncovered.
type Gap struct {
	Start int     `json:"start" yaml:"start"`
	End   int     `json:"end" yaml:"end"`
	Kind  GapKind `json:"kind" yaml:"kind"`
}

// Pages returns the number of pages in the gap.
func (g Gap) Pages() int {
	return g.End - g.Start + 1
}

// Relocation suggests moving a flat-origin segment into its document folder.
// Suggestions are never executed.
type Relocation struct {
	// Segment is the misplaced file.
	Segment Segment `json:"segment" yaml:"segment"`
	// Destination is the suggested path, empty when the key has no folder.
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
	// AlreadyPresent is true when the folder already holds the same page range.
	AlreadyPresent bool `json:"already_present" yaml:"already_present"`
}

// PageMismatch records a segment whose PDF page count differs from its filename range.
type PageMismatch struct {
	Segment  Segment `json:"segment" yaml:"segment"`
	Declared int     `json:"declared" yaml:"declared"`
	Actual   int     `json:"actual" yaml:"actual"`
}

// Result is the reconciliation output for a single key.
type Result struct {
	// Key is the normalized document key.
	Key keys.Key `json:"key" yaml:"key"`
	// Title comes from metadata when available.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Folder is the hierarchical folder, zero when only flat segments exist.
	Folder Folder `json:"folder" yaml:"folder"`
	// InMetadata tells whether a metadata record was found for the key.
	InMetadata bool `json:"in_metadata" yaml:"in_metadata"`
	// TotalPages is the expected page count, valid only when TotalKnown.
	TotalPages int `json:"total_pages" yaml:"total_pages"`
	// TotalKnown is false when the trailing coverage could not be checked.
	TotalKnown bool `json:"total_known" yaml:"total_known"`
	// Incomplete mirrors Record.IsIncomplete.
	Incomplete bool `json:"incomplete" yaml:"incomplete"`
	// LastSuccessfulSegmentEnd mirrors the metadata high-water mark.
	LastSuccessfulSegmentEnd int `json:"last_successful_segment_end" yaml:"last_successful_segment_end"`
	// HierarchicalCount and FlatCount count raw segments per origin, before dedup.
	HierarchicalCount int `json:"hierarchical_count" yaml:"hierarchical_count"`
	FlatCount         int `json:"flat_count" yaml:"flat_count"`
	// Segments is the deduplicated, start-sorted segment set.
	Segments []Segment `json:"segments" yaml:"segments"`
	// StandardSize is the most frequent segment page count.
	StandardSize int `json:"standard_size" yaml:"standard_size"`
	// Gaps lists uncovered ranges in leading, interior, trailing order.
	Gaps []Gap `json:"gaps" yaml:"gaps"`
	// Missing is Gaps split into StandardSize chunks for reporting.
	Missing []Gap `json:"missing" yaml:"missing"`
	// Relocations lists flat-origin segments that belong in the folder.
	Relocations []Relocation `json:"relocations" yaml:"relocations"`
	// PageMismatches is filled only when page verification is enabled.
	PageMismatches []PageMismatch `json:"page_mismatches,omitempty" yaml:"page_mismatches,omitempty"`
}

// NeedsAttention reports whether the key has gaps or misplaced segments.
func (r Result) NeedsAttention() bool {
	return len(r.Gaps) > 0 || r.FlatCount > 0 || len(r.PageMismatches) > 0
}

// First returns the first segment of the reconciled set.
func (r Result) First() Segment {
	if len(r.Segments) == 0 {
		return Segment{}
	}
	return r.Segments[0]
}

// Last returns the last segment of the reconciled set.
func (r Result) Last() Segment {
	if len(r.Segments) == 0 {
		return Segment{}
	}
	return r.Segments[len(r.Segments)-1]
}

// Summary provides aggregate counts over a set of results.
type Summary struct {
	// Documents is the number of reconciled keys.
	Documents int `json:"documents" yaml:"documents"`
	// Flagged counts keys that need attention.
	Flagged int `json:"flagged" yaml:"flagged"`
	// WithGaps counts keys with at least one gap.
	WithGaps int `json:"with_gaps" yaml:"with_gaps"`
	// MissingPages sums the pages of every gap.
	MissingPages int `json:"missing_pages" yaml:"missing_pages"`
	// Relocations counts flat-origin segments to move.
	Relocations int `json:"relocations" yaml:"relocations"`
	// UnknownTotals counts keys whose trailing coverage is unknown.
	UnknownTotals int `json:"unknown_totals" yaml:"unknown_totals"`
	// PageMismatches counts segments failing page verification.
	PageMismatches int `json:"page_mismatches" yaml:"page_mismatches"`
}

// Snapshot is a complete audit run, as cached by the HTTP surface.
type Snapshot struct {
	// Results holds every reconciled key in key order.
	Results []Result `json:"results" yaml:"results"`
	// Summary aggregates Results.
	Summary Summary `json:"summary" yaml:"summary"`
	// MetadataEntries is the number of indexed metadata records.
	MetadataEntries int `json:"metadata_entries" yaml:"metadata_entries"`
	// FlatSegments is the number of segments found in the flat location.
	FlatSegments int `json:"flat_segments" yaml:"flat_segments"`
	// Built is when the snapshot was produced.
	Built time.Time `json:"built" yaml:"built"`
	// TTL is how long the snapshot stays fresh in a Cache.
	TTL time.Duration `json:"-" yaml:"-"`
}

// IsExpired returns true if the snapshot is older than its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true // No caching
	}
	return time.Since(s.Built) > s.TTL
}

// Flagged returns the results that need attention.
func (s *Snapshot) Flagged() []Result {
	var flagged []Result
	for _, r := range s.Results {
		if r.NeedsAttention() {
			flagged = append(flagged, r)
		}
	}
	return flagged
}

// Find returns the result for key.
func (s *Snapshot) Find(key keys.Key) (Result, bool) {
	for _, r := range s.Results {
		if r.Key == key {
			return r, true
		}
	}
	return Result{}, false
}
