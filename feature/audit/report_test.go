package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"segment-audit/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixtureSnapshot(t *testing.T) *reconcile.Snapshot {
	fx := newFixture(t)
	snap, err := newTestService(fx.cfg).Audit(context.Background())
	require.NoError(t, err)
	return snap
}

func TestRenderText(t *testing.T) {
	snap := fixtureSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, snap, false))
	out := buf.String()

	assert.Contains(t, out, "Loaded 2 metadata entries")
	assert.Contains(t, out, "Found 1 segments in the flat location")
	assert.Contains(t, out, "Folder: Energetica, 1969")
	assert.Contains(t, out, "Key: Energetica_1969")
	assert.Contains(t, out, "Total pages: 200")
	assert.Contains(t, out, "Incomplete: no completion timestamp")
	assert.Contains(t, out, "Last successful segment end: 147")
	assert.Contains(t, out, "First segment: pages 1-49")
	assert.Contains(t, out, "Last segment: pages 99-147")
	assert.Contains(t, out, "Standard segment size: 49 pages")
	assert.Contains(t, out, "[missing from folder] Energetica_1969__pages50-98.pdf")
	assert.Contains(t, out, "Missing: pages 148-196")
	assert.Contains(t, out, "Missing: pages 197-200")
	assert.NotContains(t, out, "Key: Flacara_1950")
	assert.Contains(t, out, "Documents: 2, flagged: 1")
}

func TestRenderText_All(t *testing.T) {
	snap := fixtureSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, snap, true))
	assert.Contains(t, buf.String(), "Key: Flacara_1950")
}

func TestRenderText_FlatOnlyKey(t *testing.T) {
	snap := &reconcile.Snapshot{
		Results: []reconcile.Result{{
			Key:          "Orphan_1901",
			FlatCount:    1,
			Segments:     []reconcile.Segment{{Start: 1, End: 49, Path: "/flat/Orphan_1901__pages1-49.pdf", Origin: reconcile.OriginFlat}},
			StandardSize: 49,
			Relocations: []reconcile.Relocation{{
				Segment: reconcile.Segment{Start: 1, End: 49, Path: "/flat/Orphan_1901__pages1-49.pdf", Origin: reconcile.OriginFlat},
			}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, snap, false))
	out := buf.String()

	assert.Contains(t, out, "No segments found in the flat location")
	assert.Contains(t, out, "Folder: [missing folder for Orphan_1901]")
	assert.Contains(t, out, "Total pages: unknown")
	assert.Contains(t, out, "From: /flat/Orphan_1901__pages1-49.pdf")
	assert.NotContains(t, out, "To:")
}

func TestRenderJSON(t *testing.T) {
	snap := fixtureSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, snap, false))

	var report Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 2, report.MetadataEntries)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "Energetica_1969", report.Results[0].Key.String())
}

func TestRenderYAML(t *testing.T) {
	snap := fixtureSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, RenderYAML(&buf, snap, true))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["metadata_entries"])
	assert.Len(t, decoded["results"], 2)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, &reconcile.Snapshot{}, "xml", false)
	assert.EqualError(t, err, "unknown output format: xml")
}

func TestNewReport_EmptyResults(t *testing.T) {
	report := NewReport(&reconcile.Snapshot{}, false)
	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
}
