// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the metadata state file can be read from an
// S3-compatible bucket instead of the local disk. Only read operations are
// exposed; the audit never writes to storage.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "scans")
package storage
