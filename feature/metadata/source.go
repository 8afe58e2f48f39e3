package metadata

import (
	"context"
	"fmt"
	"io"
	"os"

	"segment-audit/core/database"
	"segment-audit/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// FileSource reads the state document from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the state file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) Entries(ctx context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	return Decode(data)
}

// StorageSource reads the state document from an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageSource creates a source for bucket/object.
func NewStorageSource(client storage.Client, bucket, object string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object}
}

func (s *StorageSource) Name() string {
	return s.bucket + "/" + s.object
}

func (s *StorageSource) Entries(ctx context.Context) ([]Entry, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata object: %w", err)
	}
	return Decode(data)
}

// RequiredColumns lists the columns a records table must have.
var RequiredColumns = []string{"url"}

// DatabaseSource reads records from a table, one row per document.
type DatabaseSource struct {
	db    *gorm.DB
	table string
}

// NewDatabaseSource creates a source for the given table.
func NewDatabaseSource(db *gorm.DB, table string) *DatabaseSource {
	return &DatabaseSource{db: db, table: table}
}

func (s *DatabaseSource) Name() string {
	return "table " + s.table
}

func (s *DatabaseSource) Entries(ctx context.Context) ([]Entry, error) {
	missing, err := database.MissingColumns(s.db, s.table, RequiredColumns)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: table %s lacks columns %v", ErrMalformed, s.table, missing)
	}

	var rows []map[string]any
	if err := s.db.WithContext(ctx).Table(s.table).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry(row))
	}
	return entries, nil
}
