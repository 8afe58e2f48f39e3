// Package audit runs a full segment audit and presents its results.
//
// An audit checks its required inputs, loads the metadata index, scans the
// hierarchical and flat locations, reconciles every key and, when enabled,
// verifies PDF page counts. The resulting snapshot is rendered as text, JSON
// or YAML by the CLI, or served over HTTP by the Handler with a short-lived
// cache in front of it.
//
// The audit is read-only: relocations are suggestions and nothing is moved,
// renamed or downloaded.
package audit
