// Package utils provides common utility functions for the segment audit.
// It includes helpers for converting loosely typed metadata values (decoded
// JSON, database rows) into the concrete types the engine works with.
package utils
