// Package metadata builds the key -> record index from the downloader's state.
//
// The state is a JSON document that is either a list of records or an object
// whose first list-valued entry holds the records. Each record carries a url
// from which the key is derived, plus optional total_pages (legacy: pages),
// title, last_successful_segment_end and completed_at.
//
// Records can be read from three sources:
//
//   - FileSource: a local state.json.
//   - StorageSource: a state.json object in an S3/MinIO bucket.
//   - DatabaseSource: rows of a documents table.
//
// A missing source is an error. A source that exists but cannot be parsed, or
// has an unexpected shape, degrades to an empty index with a warning.
package metadata
