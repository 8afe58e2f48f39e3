package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Temporare", cfg.Audit.HierarchicalRoot)
	assert.Equal(t, ".", cfg.Audit.FlatRoot)
	assert.Equal(t, SourceFile, cfg.Audit.MetadataSource)
	assert.Equal(t, "state.json", cfg.Audit.MetadataPath)
	assert.Equal(t, 49, cfg.Audit.DefaultSegmentSize)
	assert.False(t, cfg.Audit.VerifyPages)
	assert.Equal(t, 60, cfg.Audit.CacheTTLSeconds)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "scans", cfg.Storage.Bucket)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("AUDIT_FLAT_ROOT", "/mnt/g")
	t.Setenv("AUDIT_DEFAULT_SEGMENT_SIZE", "50")
	t.Setenv("AUDIT_VERIFY_PAGES", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/mnt/g", cfg.Audit.FlatRoot)
	assert.Equal(t, 50, cfg.Audit.DefaultSegmentSize)
	assert.True(t, cfg.Audit.VerifyPages)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	// Registered so the overloaded value is cleared after the test
	t.Setenv("AUDIT_HIERARCHICAL_ROOT", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AUDIT_HIERARCHICAL_ROOT=/mnt/g/Temporare\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/mnt/g/Temporare", cfg.Audit.HierarchicalRoot)
}

func TestAuditConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{SourceFile, true},
		{SourceStorage, true},
		{SourceDatabase, true},
		{"mongo", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, AuditConfig{MetadataSource: tt.source}.IsValidSource())
		})
	}
}
