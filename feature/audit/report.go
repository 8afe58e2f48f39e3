package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"segment-audit/core/reconcile"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the serializable view of a snapshot.
type Report struct {
	Built           time.Time          `json:"built" yaml:"built"`
	MetadataEntries int                `json:"metadata_entries" yaml:"metadata_entries"`
	FlatSegments    int                `json:"flat_segments" yaml:"flat_segments"`
	Summary         reconcile.Summary  `json:"summary" yaml:"summary"`
	Results         []reconcile.Result `json:"results" yaml:"results"`
}

// NewReport selects the results to present: every reconciled key when all is
// set, otherwise only the ones that need attention.
func NewReport(snap *reconcile.Snapshot, all bool) Report {
	results := snap.Results
	if !all {
		results = snap.Flagged()
	}
	if results == nil {
		results = []reconcile.Result{}
	}

	return Report{
		Built:           snap.Built,
		MetadataEntries: snap.MetadataEntries,
		FlatSegments:    snap.FlatSegments,
		Summary:         snap.Summary,
		Results:         results,
	}
}

// Render writes the snapshot in the requested format.
func Render(w io.Writer, snap *reconcile.Snapshot, format string, all bool) error {
	switch format {
	case FormatText, "":
		return RenderText(w, snap, all)
	case FormatJSON:
		return RenderJSON(w, snap, all)
	case FormatYAML:
		return RenderYAML(w, snap, all)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, snap *reconcile.Snapshot, all bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(snap, all))
}

// RenderYAML writes the report as YAML.
func RenderYAML(w io.Writer, snap *reconcile.Snapshot, all bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(snap, all)); err != nil {
		return err
	}
	return enc.Close()
}

var rule = strings.Repeat("=", 80)

// RenderText writes the human-readable report.
func RenderText(w io.Writer, snap *reconcile.Snapshot, all bool) error {
	bw := bufio.NewWriter(w)
	report := NewReport(snap, all)

	fmt.Fprintf(bw, "Loaded %d metadata entries\n", report.MetadataEntries)
	if report.FlatSegments > 0 {
		fmt.Fprintf(bw, "Found %d segments in the flat location\n\n", report.FlatSegments)
	} else {
		fmt.Fprint(bw, "No segments found in the flat location\n\n")
	}

	for _, r := range report.Results {
		writeResult(bw, r)
	}

	s := report.Summary
	fmt.Fprintf(bw, "Documents: %d, flagged: %d, with gaps: %d, missing pages: %d, relocations: %d, unknown totals: %d",
		s.Documents, s.Flagged, s.WithGaps, s.MissingPages, s.Relocations, s.UnknownTotals)
	if s.PageMismatches > 0 {
		fmt.Fprintf(bw, ", page mismatches: %d", s.PageMismatches)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

func writeResult(w io.Writer, r reconcile.Result) {
	fmt.Fprintln(w, rule)
	if r.Folder.Name != "" {
		fmt.Fprintf(w, "Folder: %s\n", r.Folder.Name)
	} else {
		fmt.Fprintf(w, "Folder: [missing folder for %s]\n", r.Key)
	}
	fmt.Fprintf(w, "Key: %s\n", r.Key)

	if r.TotalKnown {
		fmt.Fprintf(w, "Total pages: %d\n", r.TotalPages)
	} else {
		fmt.Fprintln(w, "Total pages: unknown")
	}

	if r.Incomplete {
		fmt.Fprintln(w, "Incomplete: no completion timestamp")
		if r.LastSuccessfulSegmentEnd > 0 {
			fmt.Fprintf(w, "   Last successful segment end: %d\n", r.LastSuccessfulSegmentEnd)
		}
	}

	fmt.Fprintln(w, "Segments:")
	fmt.Fprintf(w, "   - in folder: %d\n", r.HierarchicalCount)
	fmt.Fprintf(w, "   - in flat location: %d\n", r.FlatCount)
	fmt.Fprintf(w, "   - unique: %d\n", len(r.Segments))
	if len(r.Segments) > 0 {
		first, last := r.First(), r.Last()
		fmt.Fprintf(w, "   First segment: pages %d-%d\n", first.Start, first.End)
		fmt.Fprintf(w, "   Last segment: pages %d-%d\n", last.Start, last.End)
	}
	fmt.Fprintf(w, "   Standard segment size: %d pages\n", r.StandardSize)
	fmt.Fprintln(w, rule)

	if len(r.Relocations) > 0 {
		fmt.Fprintln(w, "\nSegments in the flat location that belong in the folder:")
		for _, rel := range r.Relocations {
			status := "[missing from folder]"
			if rel.AlreadyPresent {
				status = "[already in folder]"
			}
			fmt.Fprintf(w, "   %s %s\n", status, filepath.Base(rel.Segment.Path))
			fmt.Fprintf(w, "      From: %s\n", rel.Segment.Path)
			if rel.Destination != "" {
				fmt.Fprintf(w, "      To: %s\n", rel.Destination)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Missing) > 0 {
		fmt.Fprintln(w, "Gaps in sequence:")
		for _, m := range r.Missing {
			fmt.Fprintf(w, "   Missing: pages %d-%d\n", m.Start, m.End)
		}
		fmt.Fprintln(w)
	}

	if len(r.PageMismatches) > 0 {
		fmt.Fprintln(w, "Page count mismatches:")
		for _, pm := range r.PageMismatches {
			fmt.Fprintf(w, "   %s: declares %d pages, contains %d\n", filepath.Base(pm.Segment.Path), pm.Declared, pm.Actual)
		}
		fmt.Fprintln(w)
	}
}
