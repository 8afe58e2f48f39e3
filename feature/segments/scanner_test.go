package segments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"segment-audit/core/keys"
	"segment-audit/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func ranges(segments []reconcile.Segment) [][2]int {
	out := make([][2]int, 0, len(segments))
	for _, s := range segments {
		out = append(out, [2]int{s.Start, s.End})
	}
	return out
}

func TestScanHierarchical(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "Energetica, 1969 (Anul 17, nr. 2-8)")
	touch(t, filepath.Join(folder, "Energetica_1969-1627417979__pages1-49.pdf"))
	touch(t, filepath.Join(folder, "Energetica_1969-1627417979__pages50-98.pdf"))
	touch(t, filepath.Join(folder, "notes.txt"))
	touch(t, filepath.Join(folder, "cover.pdf"))

	// Nested keyed folder below an unkeyed one is still visited
	nested := filepath.Join(root, "Reviste", "Știința și Tehnica, 1964")
	touch(t, filepath.Join(nested, "StiintaSiTehnica_1964-1__pages1-49.pdf"))

	// Files directly in the root are not part of any folder
	touch(t, filepath.Join(root, "Energetica_1969-1627417979__pages99-147.pdf"))

	scanner := NewScanner(zap.NewNop())
	inv := reconcile.NewInventory()
	require.NoError(t, scanner.ScanHierarchical(context.Background(), root, inv))

	energetica := keys.Key("Energetica_1969")
	assert.Equal(t, [][2]int{{1, 49}, {50, 98}}, ranges(inv.Hierarchical[energetica]))
	assert.Equal(t, reconcile.Folder{Name: "Energetica, 1969 (Anul 17, nr. 2-8)", Path: folder}, inv.Folders[energetica])
	for _, seg := range inv.Hierarchical[energetica] {
		assert.Equal(t, reconcile.OriginHierarchical, seg.Origin)
		assert.Equal(t, folder, filepath.Dir(seg.Path))
	}

	stiinta := keys.Key("StiintasiTehnica_1964")
	assert.Equal(t, [][2]int{{1, 49}}, ranges(inv.Hierarchical[stiinta]))

	assert.Empty(t, inv.Flat)
	assert.Len(t, inv.Folders, 2)
}

func TestScanHierarchical_SharedKey(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "Energetica, 1969 (nr. 1)")
	second := filepath.Join(root, "Energetica, 1969 (nr. 2)")
	touch(t, filepath.Join(first, "Energetica_1969-1__pages1-49.pdf"))
	touch(t, filepath.Join(second, "Energetica_1969-2__pages50-98.pdf"))

	core, logs := observer.New(zapcore.WarnLevel)
	scanner := NewScanner(zap.New(core))
	inv := reconcile.NewInventory()
	require.NoError(t, scanner.ScanHierarchical(context.Background(), root, inv))

	key := keys.Key("Energetica_1969")
	assert.Equal(t, first, inv.Folders[key].Path)
	assert.Len(t, inv.Hierarchical[key], 2)
	assert.Equal(t, 1, logs.FilterMessage("Multiple folders share a key").Len())
}

func TestScanFlat(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Energetica_1969-1627417979__pages400-449.pdf"))
	touch(t, filepath.Join(root, "Energetica_1969-1627417979__pages450-498.pdf"))
	touch(t, filepath.Join(root, "NoYear__pages1-49.pdf"))
	touch(t, filepath.Join(root, "Energetica_1969-1627417979.pdf"))
	// Subfolders of the flat root are not descended into
	touch(t, filepath.Join(root, "sub", "Energetica_1969-1627417979__pages1-49.pdf"))

	scanner := NewScanner(zap.NewNop())
	inv := reconcile.NewInventory()
	require.NoError(t, scanner.ScanFlat(context.Background(), root, inv))

	require.Len(t, inv.Flat, 1)
	segs := inv.Flat["Energetica_1969"]
	assert.Equal(t, [][2]int{{400, 449}, {450, 498}}, ranges(segs))
	assert.Equal(t, filepath.Join(root, "Energetica_1969-1627417979__pages400-449.pdf"), segs[0].Path)
	assert.Equal(t, reconcile.OriginFlat, segs[0].Origin)
	assert.Equal(t, 2, inv.FlatCount())
}

func TestScan_MissingRoots(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	scanner := NewScanner(zap.New(core))

	missing := filepath.Join(t.TempDir(), "absent")
	inv, err := scanner.Scan(context.Background(), missing, missing)
	require.NoError(t, err)

	assert.Empty(t, inv.Folders)
	assert.Empty(t, inv.Hierarchical)
	assert.Empty(t, inv.Flat)
	assert.Equal(t, 2, logs.FilterMessage("Scan root does not exist").Len())
}

func TestScan_RootIsFile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	scanner := NewScanner(zap.New(core))

	file := filepath.Join(t.TempDir(), "state.json")
	touch(t, file)

	inv := reconcile.NewInventory()
	require.NoError(t, scanner.ScanFlat(context.Background(), file, inv))
	assert.Empty(t, inv.Flat)
	assert.Equal(t, 1, logs.FilterMessage("Scan root is not a directory").Len())
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Energetica, 1969", "Energetica_1969-1__pages1-49.pdf"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(zap.NewNop()).Scan(ctx, root, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerifyPages(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "X_1900__pages1-3.pdf")
	short := filepath.Join(dir, "X_1900__pages4-8.pdf")
	broken := filepath.Join(dir, "X_1900__pages9-9.pdf")
	writePDF(t, good, 3)
	writePDF(t, short, 2)
	require.NoError(t, os.WriteFile(broken, []byte("garbage"), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	scanner := NewScanner(zap.New(core))

	mismatches := scanner.VerifyPages(context.Background(), []reconcile.Segment{
		{Start: 1, End: 3, Path: good},
		{Start: 4, End: 8, Path: short},
		{Start: 9, End: 9, Path: broken},
	})

	require.Len(t, mismatches, 1)
	assert.Equal(t, short, mismatches[0].Segment.Path)
	assert.Equal(t, 5, mismatches[0].Declared)
	assert.Equal(t, 2, mismatches[0].Actual)
	assert.Equal(t, 1, logs.FilterMessage("Failed to count PDF pages").Len())
}
