package config

import (
	"reflect"
	"strings"

	"segment-audit/core/database"
	"segment-audit/core/logger"
	"segment-audit/core/server"
	"segment-audit/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Metadata source kinds.
const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// AuditConfig holds the locations and tuning of an audit run.
type AuditConfig struct {
	// HierarchicalRoot is walked recursively; each subfolder is one document.
	HierarchicalRoot string `mapstructure:"hierarchical_root" default:"Temporare"`
	// FlatRoot is listed non-recursively for misplaced segments.
	FlatRoot string `mapstructure:"flat_root" default:"."`
	// MetadataSource selects where records come from (file, storage, database).
	MetadataSource string `mapstructure:"metadata_source" default:"file"`
	// MetadataPath is the local state file, used with the file source.
	MetadataPath string `mapstructure:"metadata_path" default:"state.json"`
	// MetadataObject is the object name in the bucket, used with the storage source.
	MetadataObject string `mapstructure:"metadata_object" default:"state.json"`
	// MetadataTable is the records table, used with the database source.
	MetadataTable string `mapstructure:"metadata_table" default:"documents"`
	// DefaultSegmentSize is assumed when no segment sizes can be observed.
	DefaultSegmentSize int `mapstructure:"default_segment_size" default:"49"`
	// VerifyPages opens every segment PDF and compares its page count.
	VerifyPages bool `mapstructure:"verify_pages" default:"false"`
	// CacheTTLSeconds is how long the HTTP surface reuses a snapshot.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// IsValidSource checks if the configured metadata source is supported.
func (c AuditConfig) IsValidSource() bool {
	switch c.MetadataSource {
	case SourceFile, SourceStorage, SourceDatabase:
		return true
	default:
		return false
	}
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Audit holds the scan roots and metadata source.
	Audit AuditConfig `mapstructure:"audit"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. AUDIT_FLAT_ROOT -> audit.flat_root)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
